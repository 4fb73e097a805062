package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// LogClose closes the stream and logs the error, if any. Streams which report themselves as closed are skipped.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	log.Tracef("%v closed", closer)
	return nil
}

// nopWriteCloser keeps the standard output open when the wrapping writer is closed.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

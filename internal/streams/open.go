package streams

import (
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
)

const (
	// StandardStream is the file name which selects stdin / stdout instead of a file
	StandardStream = "-"
)

// OpenInput opens the named file for reading. An empty name or StandardStream selects `stdin`, which is
// not closed when the returned reader is closed.
func OpenInput(name string, stdin io.Reader) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(ioutil.NopCloser(stdin), "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %s", name)
	}
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file for writing. An empty name or StandardStream selects
// `stdout`, which is not closed when the returned writer is closed.
func OpenOutput(name string, stdout io.Writer) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(nopWriteCloser{stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create %s", name)
	}
	return NewNamedWriter(f, name), nil
}

package codec

import (
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/logging"
	"github.com/bokysan/base64ace/internal/streams"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
)

// transform is the part that differs between encoding and decoding. Items are either the positional
// arguments or, without arguments, a single item holding the whole input.
type transform func(e enc.Encoder, out io.Writer, items []string, fromInput bool) error

// run sets up logging, resolves the encoder, reads the input, opens the output and hands over to the transform.
func run(opts args.Codec, stdin io.Reader, stdout io.Writer, items []string, fn transform) (err error) {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	e, err := enc.FindEncoder(opts.Encoding)
	if err != nil {
		return err
	}
	log.Debugf("Using %v encoding", enc.Describe(e))

	// The input is read in full before the output is opened: both may name the same file,
	// and a failed read must not leave a truncated output behind.
	fromInput := len(items) == 0
	if fromInput {
		data, err := readInput(opts.Input, stdin)
		if err != nil {
			return err
		}
		items = []string{data}
	}

	out, err := streams.OpenOutput(opts.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()

	return fn(e, out, items, fromInput)
}

func readInput(name string, stdin io.Reader) (string, error) {
	in, err := streams.OpenInput(name, stdin)
	if err != nil {
		return "", err
	}
	defer streams.LogClose(in)

	data, err := ioutil.ReadAll(in)
	if err != nil {
		return "", errors.Wrapf(err, "Could not read from %v", in)
	}
	log.Debugf("Read %d bytes from %v", len(data), in)
	return string(data), nil
}

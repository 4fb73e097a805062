package codec

import (
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// DecodeCommand decodes every argument and writes each result on its own line. Without arguments
// the whole input is decoded, ignoring line breaks and other whitespace, and written as-is.
// Arguments which cannot be decoded are reported together, after all others have been written.
type DecodeCommand struct {
	args.Codec `yaml:",inline"`

	stdin  io.Reader
	stdout io.Writer
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (c *DecodeCommand) String() string {
	return "Decode"
}

func (c *DecodeCommand) Execute(items []string) error {
	return run(c.Codec, c.stdin, c.stdout, items, decodeItems)
}

func decodeItems(e enc.Encoder, out io.Writer, items []string, fromInput bool) error {
	var errs error
	for i, item := range items {
		if fromInput {
			item = strings.Join(strings.Fields(item), "")
		}

		decoded, err := e.Decode(item)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode item %d", i+1))
			continue
		}
		log.Debugf("Decoded %d characters into %d bytes", len(item), len(decoded))

		if !fromInput {
			decoded = append(decoded, '\n')
		}
		if _, err := out.Write(decoded); err != nil {
			return multierror.Append(errs, errors.Wrapf(err, "Could not write to %v", out))
		}
	}
	return errs
}

package codec

import (
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// EncodeCommand encodes every argument (or the whole input) and writes one encoded line per item.
type EncodeCommand struct {
	args.Codec `yaml:",inline"`

	stdin  io.Reader
	stdout io.Writer
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (c *EncodeCommand) String() string {
	return "Encode"
}

func (c *EncodeCommand) Execute(items []string) error {
	return run(c.Codec, c.stdin, c.stdout, items, encodeItems)
}

func encodeItems(e enc.Encoder, out io.Writer, items []string, _ bool) error {
	for _, item := range items {
		encoded := e.Encode([]byte(item))
		log.Debugf("Encoded %d bytes into %d characters", len(item), len(encoded))
		if _, err := io.WriteString(out, encoded+"\n"); err != nil {
			return errors.Wrapf(err, "Could not write to %v", out)
		}
	}
	return nil
}

package enc

import (
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := base32.StdEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) BlocksizeRaw() int {
	return 5
}

func (b *Base32Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		cb32,
	}
}

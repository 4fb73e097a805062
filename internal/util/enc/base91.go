package enc

import (
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91Encoder converts each group of 13 bits into 2 radix-91 digits.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) string {
	return base91Encoding.EncodeToString(data)
}

func (b *Base91Encoder) Decode(data string) ([]byte, error) {
	res, err := base91Encoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

// BlocksizeRaw is approximate: basE91 works on a bit stream, 13 bytes fit into 16 characters in the worst case.
func (b *Base91Encoder) BlocksizeRaw() int {
	return 13
}

func (b *Base91Encoder) BlocksizeEncoded() int {
	return 16
}

func (b *Base91Encoder) TestPatterns() []string {
	return []string{
		cb91,
	}
}

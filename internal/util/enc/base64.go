package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Base64Pad is the padding character. Depending on the Padding mode it is either appended to the
	// input bytes or to the encoded text.
	Base64Pad = '='

	invalidCode = 0xFF
)

// cb64Invert maps a character back to its 6-bit code. Characters outside of the alphabet map to invalidCode.
var cb64Invert = invert64(cb64)

func invert64(alphabet string) [256]byte {
	var res [256]byte
	for i := range res {
		res[i] = invalidCode
	}
	for i, v := range []byte(alphabet) {
		res[v] = byte(i)
	}
	return res
}

// Padding selects how Base64Encoder brings the input up to a whole number of 3-byte blocks.
type Padding int

const (
	// PadInput appends Base64Pad bytes to the input until its length is divisible by three. The encoded
	// text never contains the padding character, and decoding returns the padding bytes as part of the data.
	PadInput Padding = iota
	// PadOutput is the RFC 4648 behaviour: the last group is zero-filled and Base64Pad characters are
	// appended to the encoded text. Decode strips them again.
	PadOutput
)

func (p Padding) String() string {
	switch p {
	case PadInput:
		return "input"
	case PadOutput:
		return "output"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard (A-Z a-z 0-9 + /) alphabet.
type Base64Encoder struct {
	Padding Padding
}

func (b *Base64Encoder) Name() string {
	if b.Padding == PadOutput {
		return "Base64Std"
	}
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	if b.Padding == PadOutput {
		return 'B'
	}
	return 'S'
}

// Encode regroups the bits of the (padded) input into 6-bit codes and maps every code through the alphabet.
func (b *Base64Encoder) Encode(data []byte) string {
	src := data
	if b.Padding == PadInput {
		src = padInput(data)
	}

	bits := BytesToBits(src)
	if rem := len(bits) % 6; rem != 0 {
		bits = append(bits, make(Bits, 6-rem)...)
	}

	res := make([]byte, 0, len(bits)/6+2)
	for i := 0; i < len(bits); i += 6 {
		res = append(res, cb64[bits[i:i+6].Uint()])
	}

	if b.Padding == PadOutput {
		for len(res)%4 != 0 {
			res = append(res, Base64Pad)
		}
	}
	return string(res)
}

// Decode maps every character back to its code and regroups the bits into bytes. Bits which do not
// fill a whole byte at the end of the input are dropped.
func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	if b.Padding == PadOutput {
		data = trimPadding(data)
	}

	bits := make(Bits, 0, len(data)*6)
	for i := 0; i < len(data); i++ {
		code := cb64Invert[data[i]]
		if code == invalidCode {
			return nil, errors.WithStack(&InvalidCharacterError{
				Char:     data[i],
				Position: i,
			})
		}
		bits = append(bits, SextetToBits(code)...)
	}

	res := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		res = append(res, byte(bits[i:i+8].Uint()))
	}
	return res, nil
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		cb64,
		"TWFu",
	}
}

// padInput returns a copy of data extended with Base64Pad bytes to a multiple of three bytes.
func padInput(data []byte) []byte {
	res := make([]byte, len(data), len(data)+2)
	copy(res, data)
	for len(res)%3 != 0 {
		res = append(res, Base64Pad)
	}
	return res
}

// trimPadding removes up to two trailing padding characters. Padding anywhere else is left in place
// and will be reported as an invalid character.
func trimPadding(data string) string {
	for i := 0; i < 2 && len(data) > 0 && data[len(data)-1] == Base64Pad; i++ {
		data = data[:len(data)-1]
	}
	return data
}

package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

var (
	// Base64Encoding pads the input bytes with '=' before encoding. This is the default encoding.
	Base64Encoding = &Base64Encoder{Padding: PadInput}
	// Base64StdEncoding is the RFC 4648 base64 with '=' padding on the encoded text.
	Base64StdEncoding = &Base64Encoder{Padding: PadOutput}
	Base32Encoding    = &Base32Encoder{}
	Base85Encoding    = &Base85Encoder{}
	Base91Encoding    = &Base91Encoder{}
)

// Encoders lists all available encoders, default first.
var Encoders = []Encoder{
	Base64Encoding,
	Base64StdEncoding,
	Base32Encoding,
	Base85Encoding,
	Base91Encoding,
}

// FindEncoder returns the encoder with the given name (case-insensitive) or one-letter code.
func FindEncoder(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Base64Encoding, nil
	}

	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		for _, e := range Encoders {
			if e.Code() == name[0] {
				return e, nil
			}
		}
	}

	descriptions := make([]string, 0, len(Encoders))
	for _, e := range Encoders {
		descriptions = append(descriptions, Describe(e))
	}
	return nil, errors.Errorf("Unknown encoding '%s'. Valid encodings are: %s", name, strings.Join(descriptions, ", "))
}

// Describe returns the encoder name, its one-letter code and how many bytes go into how many characters,
// e.g. "Base64(S, 3->4)".
func Describe(e Encoder) string {
	return fmt.Sprintf("%v(%v, %d->%d)", e.Name(), string(e.Code()), e.BlocksizeRaw(), e.BlocksizeEncoded())
}


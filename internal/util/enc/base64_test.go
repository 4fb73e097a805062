package enc

import (
	"bytes"
	"encoding/base64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Base64Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoder := Base64Encoder{}
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, "=")
		require.Len(t, encoded, (len(encoderTest)+inputPadding(encoderTest))/3*4)

		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)

		expected := append([]byte{}, encoderTest...)
		expected = append(expected, bytes.Repeat([]byte{Base64Pad}, inputPadding(encoderTest))...)
		require.Equal(t, expected, decoded)
	}
}

func Test_Base64EncoderKnownValues(t *testing.T) {
	encoder := Base64Encoding

	require.Equal(t, "TWFu", encoder.Encode([]byte("Man")))
	require.Equal(t, "TWE9", encoder.Encode([]byte("Ma")))
	require.Equal(t, encoder.Encode([]byte("Ma=")), encoder.Encode([]byte("Ma")))
	require.Equal(t, "TT09", encoder.Encode([]byte("M")))

	decoded, err := encoder.Decode(encoder.Encode([]byte("Ma")))
	require.NoError(t, err)
	require.Equal(t, []byte("Ma="), decoded)
}

func Test_Base64EncoderEmpty(t *testing.T) {
	for _, encoder := range []*Base64Encoder{Base64Encoding, Base64StdEncoding} {
		require.Equal(t, "", encoder.Encode(nil))
		require.Equal(t, "", encoder.Encode([]byte{}))

		decoded, err := encoder.Decode("")
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}

func Test_Base64EncoderDoesNotModifyInput(t *testing.T) {
	data := make([]byte, 2, 16)
	copy(data, "Ma")
	Base64Encoding.Encode(data)
	require.Equal(t, []byte("Ma"), data)
	require.Equal(t, byte(0), data[:3][2])
}

func Test_Base64EncoderAlphabet(t *testing.T) {
	require.Len(t, cb64, 64)
	for i := 0; i < len(cb64); i++ {
		require.Equal(t, byte(i), cb64Invert[cb64[i]])
	}
	require.Equal(t, byte(invalidCode), cb64Invert[Base64Pad])

	for _, encoderTest := range encoderTests {
		for _, c := range []byte(Base64Encoding.Encode(encoderTest)) {
			require.Contains(t, cb64, string(c))
		}
	}
}

func Test_Base64EncoderTestPatterns(t *testing.T) {
	for _, encoder := range []*Base64Encoder{Base64Encoding, Base64StdEncoding} {
		for _, pat := range encoder.TestPatterns() {
			decoded, err := encoder.Decode(pat)
			require.NoError(t, err)
			require.Len(t, decoded, len(pat)/4*3)
			require.Equal(t, pat, encoder.Encode(decoded))
		}
	}
}

func Test_Base64EncoderInvalidCharacter(t *testing.T) {
	for _, test := range []struct {
		encoder  *Base64Encoder
		input    string
		char     byte
		position int
	}{
		{Base64Encoding, "TW=u", '=', 2},
		{Base64Encoding, "TWE=", '=', 3},
		{Base64Encoding, "TWF\xff", 0xff, 3},
		{Base64Encoding, "TW Fu", ' ', 2},
		{Base64StdEncoding, "T=Wu", '=', 1},
		{Base64StdEncoding, "TQ===", '=', 2},
		{Base64StdEncoding, "-WFu", '-', 0},
	} {
		decoded, err := test.encoder.Decode(test.input)
		require.Error(t, err, "Expected error for %q", test.input)
		require.Nil(t, decoded)

		var charErr *InvalidCharacterError
		require.True(t, errors.As(err, &charErr), "Expected InvalidCharacterError, got %v", err)
		require.Equal(t, test.char, charErr.Char)
		require.Equal(t, test.position, charErr.Position)
	}
}

func Test_InvalidCharacterErrorMessage(t *testing.T) {
	err := &InvalidCharacterError{Char: '=', Position: 2}
	require.Equal(t, "invalid character '=' (0x3d) at position 2", err.Error())
}

// The default encoder pads the input bytes, the standard one pads the encoded text. Both agree
// whenever the input length is a multiple of three.
func Test_Base64PaddingCompatibility(t *testing.T) {
	for _, encoderTest := range encoderTests {
		std := Base64StdEncoding.Encode(encoderTest)
		require.Equal(t, base64.StdEncoding.EncodeToString(encoderTest), std)

		decoded, err := Base64StdEncoding.Decode(std)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)

		legacy := Base64Encoding.Encode(encoderTest)
		if len(encoderTest)%3 == 0 {
			require.Equal(t, std, legacy)
		} else {
			require.NotEqual(t, std, legacy)
			require.True(t, strings.HasSuffix(std, "="))
			require.Equal(t, len(std), len(legacy))
		}
	}

	require.Equal(t, "TWE=", Base64StdEncoding.Encode([]byte("Ma")))
	require.Equal(t, "TQ==", Base64StdEncoding.Encode([]byte("M")))
}

func Test_Base64EncoderNames(t *testing.T) {
	require.Equal(t, "Base64(S)", Base64Encoding.String())
	require.Equal(t, "Base64Std(B)", Base64StdEncoding.String())
	require.Equal(t, "input", PadInput.String())
	require.Equal(t, "output", PadOutput.String())
	require.Equal(t, "Padding(7)", Padding(7).String())
}

func inputPadding(data []byte) int {
	return (3 - len(data)%3) % 3
}

func Test_Base64EncoderConcurrent(t *testing.T) {
	for _, encoder := range []*Base64Encoder{Base64Encoding, Base64StdEncoding} {
		encoder := encoder
		t.Run(encoder.Name(), func(t *testing.T) {
			for i := 0; i < 8; i++ {
				t.Run("worker", func(t *testing.T) {
					t.Parallel()
					for _, encoderTest := range encoderTests {
						decoded, err := encoder.Decode(encoder.Encode(encoderTest))
						require.NoError(t, err)
						require.True(t, bytes.HasPrefix(decoded, encoderTest))
					}
				})
			}
		})
	}
}

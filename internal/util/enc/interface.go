package enc

// Encoder transforms binary data into printable text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of characters) output by this encoder for every input block
	BlocksizeEncoded() int

	// TestPatterns returns a list of valid encoded strings which exercise the whole alphabet
	TestPatterns() []string
}

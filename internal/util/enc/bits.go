package enc

// Bits is a sequence of binary digits, most significant bit first. Every element is either 0 or 1.
type Bits []uint8

// ByteToBits expands a byte into its eight binary digits.
func ByteToBits(in byte) Bits {
	bits := make(Bits, 8)
	for i := range bits {
		bits[i] = (in >> uint(7-i)) & 1
	}
	return bits
}

// SextetToBits expands a 6-bit code. The code is expanded to the full eight bits first and the two
// highest bits are dropped: they are always zero and would break the alignment of the following codes.
func SextetToBits(code byte) Bits {
	return ByteToBits(code)[2:]
}

// BytesToBits concatenates the expansion of every byte in the slice.
func BytesToBits(data []byte) Bits {
	bits := make(Bits, 0, len(data)*8)
	for _, b := range data {
		bits = append(bits, ByteToBits(b)...)
	}
	return bits
}

// Uint interprets the sequence as an unsigned integer. Bit at offset k contributes 2^(len-1-k).
func (b Bits) Uint() uint {
	var v uint
	for _, bit := range b {
		v = v<<1 | uint(bit&1)
	}
	return v
}

package streams

import (
	"fmt"
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

// String returns the name of this reader, followed by the name of the first named stream it wraps.
func (ns *NamedReader) String() string {
	result := ns.name

	var s io.ReadCloser = ns.ReadCloserClosed
	for {
		t, ok := s.(UnwrappedReadCloser)
		if !ok {
			break
		}
		u := t.Unwrap()
		if v, ok := u.(fmt.Stringer); ok {
			result += "->" + v.String()
			break
		}
		s = u
	}

	return result
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloserClosed
}

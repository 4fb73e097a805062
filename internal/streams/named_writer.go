package streams

import (
	"fmt"
	"io"
)

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. See NamedReader.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) String() string {
	result := ns.name

	var s io.WriteCloser = ns.WriteCloserClosed
	for {
		t, ok := s.(UnwrappedWriteCloser)
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

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloserClosed
}

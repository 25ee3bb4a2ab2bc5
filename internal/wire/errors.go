package wire

import "errors"

var (
	// ErrDatagramOverflow reports an append that would push the buffer past
	// the 65535-byte cap. The buffer is left untouched.
	ErrDatagramOverflow = errors.New("wire: datagram overflow")

	// ErrDatagramEOF reports a read or skip that would run past the end of
	// the buffer. The read cursor is left untouched.
	ErrDatagramEOF = errors.New("wire: datagram iterator EOF")
)

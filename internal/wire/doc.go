// Package wire implements the bounded binary datagram buffer and its
// sequential reader. All multi-byte integers travel little-endian regardless
// of host byte order; every append and read is bounds-checked against the
// 65535-byte datagram cap before touching the buffer.
package wire

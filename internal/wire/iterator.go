package wire

import (
	"encoding/binary"
	"math"

	"github.com/dcnet-server/dcnet/internal/protocol"
)

// Iterator walks a datagram value by value. It holds its own read cursor,
// advanced by every read; a failed read leaves the cursor where it was.
// An iterator is single-owner and must not be shared across goroutines.
type Iterator struct {
	dg    *Datagram
	index int
}

// NewIterator returns an iterator positioned at the start of dg.
func NewIterator(dg *Datagram) *Iterator {
	return &Iterator{dg: dg}
}

// checkReadLength verifies that n more bytes are available at the cursor.
func (dgi *Iterator) checkReadLength(n int) error {
	if dgi.index+n > len(dgi.dg.buf) {
		return ErrDatagramEOF
	}
	return nil
}

// Tell reports the current cursor position in bytes.
func (dgi *Iterator) Tell() protocol.DgSize {
	return protocol.DgSize(dgi.index)
}

// Seek moves the cursor to an absolute byte offset.
func (dgi *Iterator) Seek(to protocol.DgSize) {
	dgi.index = int(to)
}

// Skip advances the cursor by n bytes without reading them.
func (dgi *Iterator) Skip(n protocol.DgSize) error {
	if err := dgi.checkReadLength(int(n)); err != nil {
		return err
	}
	dgi.index += int(n)
	return nil
}

// Remaining reports the number of unread bytes left in the datagram. A
// cursor placed past the end by Seek leaves nothing to read.
func (dgi *Iterator) Remaining() protocol.DgSize {
	if dgi.index >= len(dgi.dg.buf) {
		return 0
	}
	return protocol.DgSize(len(dgi.dg.buf) - dgi.index)
}

// ReadData reads the next n raw bytes.
func (dgi *Iterator) ReadData(n protocol.DgSize) ([]byte, error) {
	if err := dgi.checkReadLength(int(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, dgi.dg.buf[dgi.index:])
	dgi.index += int(n)
	return out, nil
}

// ReadBool reads a single byte and reports whether it equals 0x01.
func (dgi *Iterator) ReadBool() (bool, error) {
	v, err := dgi.ReadUint8()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (dgi *Iterator) ReadUint8() (uint8, error) {
	if err := dgi.checkReadLength(1); err != nil {
		return 0, err
	}
	v := dgi.dg.buf[dgi.index]
	dgi.index++
	return v, nil
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func (dgi *Iterator) ReadUint16() (uint16, error) {
	if err := dgi.checkReadLength(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(dgi.dg.buf[dgi.index:])
	dgi.index += 2
	return v, nil
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (dgi *Iterator) ReadUint32() (uint32, error) {
	if err := dgi.checkReadLength(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(dgi.dg.buf[dgi.index:])
	dgi.index += 4
	return v, nil
}

// ReadUint64 reads a little-endian unsigned 64-bit integer.
func (dgi *Iterator) ReadUint64() (uint64, error) {
	if err := dgi.checkReadLength(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(dgi.dg.buf[dgi.index:])
	dgi.index += 8
	return v, nil
}

// Signed integer aliases, same byte layout.

func (dgi *Iterator) ReadInt8() (int8, error) {
	v, err := dgi.ReadUint8()
	return int8(v), err
}

func (dgi *Iterator) ReadInt16() (int16, error) {
	v, err := dgi.ReadUint16()
	return int16(v), err
}

func (dgi *Iterator) ReadInt32() (int32, error) {
	v, err := dgi.ReadUint32()
	return int32(v), err
}

func (dgi *Iterator) ReadInt64() (int64, error) {
	v, err := dgi.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a 32-bit IEEE 754 float from its little-endian bit pattern.
func (dgi *Iterator) ReadFloat32() (float32, error) {
	v, err := dgi.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a 64-bit IEEE 754 float from its little-endian bit pattern.
func (dgi *Iterator) ReadFloat64() (float64, error) {
	v, err := dgi.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadSize reads a datagram/field length tag.
func (dgi *Iterator) ReadSize() (protocol.DgSize, error) {
	v, err := dgi.ReadUint16()
	return protocol.DgSize(v), err
}

// ReadChannel reads a 64-bit channel id.
func (dgi *Iterator) ReadChannel() (protocol.Channel, error) {
	v, err := dgi.ReadUint64()
	return protocol.Channel(v), err
}

// ReadDoID reads a 32-bit distributed object id.
func (dgi *Iterator) ReadDoID() (protocol.DoID, error) {
	v, err := dgi.ReadUint32()
	return protocol.DoID(v), err
}

// ReadZone reads a 32-bit zone id.
func (dgi *Iterator) ReadZone() (protocol.Zone, error) {
	v, err := dgi.ReadUint32()
	return protocol.Zone(v), err
}

// ReadString reads a 16-bit length tag followed by that many UTF-8 bytes.
func (dgi *Iterator) ReadString() (string, error) {
	start := dgi.index
	n, err := dgi.ReadSize()
	if err != nil {
		return "", err
	}
	data, err := dgi.ReadData(n)
	if err != nil {
		dgi.index = start
		return "", err
	}
	return string(data), nil
}

// ReadBlob reads a 16-bit length tag followed by that many raw bytes.
func (dgi *Iterator) ReadBlob() ([]byte, error) {
	start := dgi.index
	n, err := dgi.ReadSize()
	if err != nil {
		return nil, err
	}
	data, err := dgi.ReadData(n)
	if err != nil {
		dgi.index = start
		return nil, err
	}
	return data, nil
}

// ReadRecipientCount reads the envelope's recipient count without moving
// the cursor.
func (dgi *Iterator) ReadRecipientCount() (uint8, error) {
	if len(dgi.dg.buf) == 0 {
		return 0, ErrDatagramEOF
	}
	start := dgi.index
	dgi.index = 0
	count, err := dgi.ReadUint8()
	dgi.index = start
	return count, err
}

// ReadMessageType resolves the envelope's message type without moving the
// cursor, so a dispatcher can classify a message before committing to a full
// decode. The code sits past the recipient list and the sender channel, at
// offset 1 + count*8 + 8.
func (dgi *Iterator) ReadMessageType() (protocol.Message, error) {
	count, err := dgi.ReadRecipientCount()
	if err != nil {
		return 0, err
	}
	start := dgi.index
	dgi.index = 1 + int(count)*protocol.ChannelSize + protocol.ChannelSize
	code, err := dgi.ReadUint16()
	dgi.index = start
	if err != nil {
		return 0, err
	}
	return protocol.MessageFromCode(code)
}

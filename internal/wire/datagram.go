package wire

import (
	"encoding/binary"
	"math"

	"github.com/dcnet-server/dcnet/internal/protocol"
)

// Datagram is an append-only byte buffer capped at protocol.DgSizeMax bytes,
// the largest length the wire format's 16-bit size tags can describe. One
// goroutine builds a datagram through a sequence of appends, then hands the
// finished buffer off; it must never be mutated while shared.
type Datagram struct {
	buf []byte
}

// NewDatagram returns an empty datagram.
func NewDatagram() *Datagram {
	return &Datagram{}
}

// checkAddLength verifies that appending n more bytes stays under the cap.
func (dg *Datagram) checkAddLength(n int) error {
	if len(dg.buf)+n > int(protocol.DgSizeMax) {
		return ErrDatagramOverflow
	}
	return nil
}

// AddBool appends a boolean as a single byte, 0x00 or 0x01.
func (dg *Datagram) AddBool(v bool) error {
	if v {
		return dg.AddUint8(1)
	}
	return dg.AddUint8(0)
}

// AddUint8 appends an unsigned 8-bit integer.
func (dg *Datagram) AddUint8(v uint8) error {
	if err := dg.checkAddLength(1); err != nil {
		return err
	}
	dg.buf = append(dg.buf, v)
	return nil
}

// AddUint16 appends an unsigned 16-bit integer in little-endian byte order.
func (dg *Datagram) AddUint16(v uint16) error {
	if err := dg.checkAddLength(2); err != nil {
		return err
	}
	dg.buf = binary.LittleEndian.AppendUint16(dg.buf, v)
	return nil
}

// AddUint32 appends an unsigned 32-bit integer in little-endian byte order.
func (dg *Datagram) AddUint32(v uint32) error {
	if err := dg.checkAddLength(4); err != nil {
		return err
	}
	dg.buf = binary.LittleEndian.AppendUint32(dg.buf, v)
	return nil
}

// AddUint64 appends an unsigned 64-bit integer in little-endian byte order.
func (dg *Datagram) AddUint64(v uint64) error {
	if err := dg.checkAddLength(8); err != nil {
		return err
	}
	dg.buf = binary.LittleEndian.AppendUint64(dg.buf, v)
	return nil
}

// Signed integer aliases, same byte layout.

func (dg *Datagram) AddInt8(v int8) error   { return dg.AddUint8(uint8(v)) }
func (dg *Datagram) AddInt16(v int16) error { return dg.AddUint16(uint16(v)) }
func (dg *Datagram) AddInt32(v int32) error { return dg.AddUint32(uint32(v)) }
func (dg *Datagram) AddInt64(v int64) error { return dg.AddUint64(uint64(v)) }

// AddFloat32 appends a 32-bit IEEE 754 float as its little-endian bit pattern.
func (dg *Datagram) AddFloat32(v float32) error {
	return dg.AddUint32(math.Float32bits(v))
}

// AddFloat64 appends a 64-bit IEEE 754 float as its little-endian bit pattern.
func (dg *Datagram) AddFloat64(v float64) error {
	return dg.AddUint64(math.Float64bits(v))
}

// AddSize appends a datagram/field length tag.
func (dg *Datagram) AddSize(v protocol.DgSize) error {
	return dg.AddUint16(uint16(v))
}

// AddChannel appends a 64-bit channel id.
func (dg *Datagram) AddChannel(v protocol.Channel) error {
	return dg.AddUint64(uint64(v))
}

// AddDoID appends a 32-bit distributed object id.
func (dg *Datagram) AddDoID(v protocol.DoID) error {
	return dg.AddUint32(uint32(v))
}

// AddZone appends a 32-bit zone id.
func (dg *Datagram) AddZone(v protocol.Zone) error {
	return dg.AddUint32(uint32(v))
}

// AddLocation appends a parent object id followed by a zone id.
func (dg *Datagram) AddLocation(parent protocol.DoID, zone protocol.Zone) error {
	if err := dg.AddDoID(parent); err != nil {
		return err
	}
	return dg.AddZone(zone)
}

// AddData appends raw bytes with no length prefix.
func (dg *Datagram) AddData(v []byte) error {
	if err := dg.checkAddLength(len(v)); err != nil {
		return err
	}
	dg.buf = append(dg.buf, v...)
	return nil
}

// AddDatagram appends another datagram's bytes with no length prefix.
func (dg *Datagram) AddDatagram(other *Datagram) error {
	return dg.AddData(other.buf)
}

// AddString appends a 16-bit length tag followed by the string's UTF-8 bytes.
func (dg *Datagram) AddString(v string) error {
	if len(v) > int(protocol.DgSizeMax) {
		// too big to describe with a 16-bit length tag
		return ErrDatagramOverflow
	}
	if err := dg.checkAddLength(2 + len(v)); err != nil {
		return err
	}
	dg.buf = binary.LittleEndian.AppendUint16(dg.buf, uint16(len(v)))
	dg.buf = append(dg.buf, v...)
	return nil
}

// AddBlob appends a 16-bit length tag followed by the blob's bytes.
func (dg *Datagram) AddBlob(v []byte) error {
	if len(v) > int(protocol.DgSizeMax) {
		return ErrDatagramOverflow
	}
	if err := dg.checkAddLength(2 + len(v)); err != nil {
		return err
	}
	dg.buf = binary.LittleEndian.AppendUint16(dg.buf, uint16(len(v)))
	dg.buf = append(dg.buf, v...)
	return nil
}

// AddBuffer reserves n zeroed bytes and returns the offset where the
// reservation starts, for patching once the final value is known.
func (dg *Datagram) AddBuffer(n protocol.DgSize) (protocol.DgSize, error) {
	if err := dg.checkAddLength(int(n)); err != nil {
		return 0, err
	}
	start := protocol.DgSize(len(dg.buf))
	dg.buf = append(dg.buf, make([]byte, n)...)
	return start, nil
}

// AddServerHeader appends the routing envelope for messages addressed to one
// or more role instances within the cluster:
//
//	u8 recipient count | count x u64 channel | u64 sender | u16 message type
func (dg *Datagram) AddServerHeader(to []protocol.Channel, from protocol.Channel, msgType protocol.Message) error {
	if len(to) > math.MaxUint8 {
		// the envelope's recipient count is a single byte
		return ErrDatagramOverflow
	}
	// check the whole envelope up front so a failure never leaves a
	// partial header behind
	if err := dg.checkAddLength(1 + (len(to)+1)*protocol.ChannelSize + 2); err != nil {
		return err
	}
	if err := dg.AddUint8(uint8(len(to))); err != nil {
		return err
	}
	for _, recipient := range to {
		if err := dg.AddChannel(recipient); err != nil {
			return err
		}
	}
	if err := dg.AddChannel(from); err != nil {
		return err
	}
	return dg.AddUint16(uint16(msgType))
}

// AddControlHeader appends the envelope for control messages, which always
// have the reserved control channel as their single recipient and no sender.
func (dg *Datagram) AddControlHeader(msgType protocol.Message) error {
	if err := dg.checkAddLength(1 + protocol.ChannelSize + 2); err != nil {
		return err
	}
	if err := dg.AddUint8(1); err != nil {
		return err
	}
	if err := dg.AddChannel(protocol.ControlChannel); err != nil {
		return err
	}
	return dg.AddUint16(uint16(msgType))
}

// Size reports the current buffer length.
func (dg *Datagram) Size() protocol.DgSize {
	return protocol.DgSize(len(dg.buf))
}

// Bytes returns an independent copy of the buffer contents.
func (dg *Datagram) Bytes() []byte {
	out := make([]byte, len(dg.buf))
	copy(out, dg.buf)
	return out
}

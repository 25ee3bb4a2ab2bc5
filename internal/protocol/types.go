package protocol

import "math"

// Channel is a 64-bit routing channel id within the server cluster.
type Channel uint64

// DoID is a 32-bit distributed object id.
type DoID uint32

// Zone is a 32-bit zone id.
type Zone uint32

// DgSize is the 16-bit length tag used throughout the wire format.
type DgSize uint16

// DgSizeMax is the largest datagram length representable by a DgSize tag.
const DgSizeMax DgSize = math.MaxUint16

// ControlChannel is the reserved channel every control message is routed to.
const ControlChannel Channel = 1

// ChannelSize is the wire size of a Channel in bytes.
const ChannelSize = 8

package table

import (
	"encoding/binary"
	"errors"
	"fmt"
	"mca_go/util"
)

const (
	locationTableOffset  = 0
	timestampTableOffset = util.SectorSize
	entrySize            = 4
)

var ErrTruncatedHeader = errors.New("corruption: region is smaller than its header")

// Location packs a 24-bit sector offset and an 8-bit sector count.
// The zero Location marks an absent chunk.
type Location uint32

func NewLocation(offset uint32, count uint8) Location {
	return Location(offset<<8 | uint32(count))
}

func (l Location) Offset() uint32 {
	return uint32(l) >> 8
}

func (l Location) Count() uint8 {
	return uint8(l)
}

func (l Location) Empty() bool {
	return l == 0
}

// Malformed reports an entry where exactly one of offset and count is zero.
func (l Location) Malformed() bool {
	return (l.Offset() == 0) != (l.Count() == 0)
}

func (l Location) String() string {
	return fmt.Sprintf("sector %d+%d", l.Offset(), l.Count())
}

type Header struct {
	Locations  [util.Entries]Location
	Timestamps [util.Entries]uint32
}

// Decode reinterprets the first HeaderSize bytes of buf. Entries are not
// checked against each other or against len(buf).
func Decode(buf []byte) (*Header, error) {
	if len(buf) < util.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(buf))
	}
	h := &Header{}
	locations := buf[locationTableOffset : locationTableOffset+util.SectorSize]
	timestamps := buf[timestampTableOffset : timestampTableOffset+util.SectorSize]
	for i := 0; i < util.Entries; i++ {
		h.Locations[i] = Location(binary.BigEndian.Uint32(locations[i*entrySize:]))
		h.Timestamps[i] = binary.BigEndian.Uint32(timestamps[i*entrySize:])
	}
	return h, nil
}

func (h *Header) Encode() []byte {
	buf := make([]byte, util.HeaderSize)
	h.EncodeTo(buf)
	return buf
}

// EncodeTo writes both tables into dst, which must hold at least HeaderSize bytes.
func (h *Header) EncodeTo(dst []byte) {
	_ = dst[util.HeaderSize-1]
	for i := 0; i < util.Entries; i++ {
		binary.BigEndian.PutUint32(dst[locationTableOffset+i*entrySize:], uint32(h.Locations[i]))
		binary.BigEndian.PutUint32(dst[timestampTableOffset+i*entrySize:], h.Timestamps[i])
	}
}

func (h *Header) Location(c util.Coord) (Location, error) {
	if err := c.Check(); err != nil {
		return 0, err
	}
	return h.Locations[c.Index()], nil
}

func (h *Header) Timestamp(c util.Coord) (uint32, error) {
	if err := c.Check(); err != nil {
		return 0, err
	}
	return h.Timestamps[c.Index()], nil
}

func (h *Header) Set(c util.Coord, loc Location, timestamp uint32) error {
	if err := c.Check(); err != nil {
		return err
	}
	h.Locations[c.Index()] = loc
	h.Timestamps[c.Index()] = timestamp
	return nil
}

// Present counts the non-empty location entries.
func (h *Header) Present() int {
	n := 0
	for _, loc := range h.Locations {
		if !loc.Empty() {
			n++
		}
	}
	return n
}

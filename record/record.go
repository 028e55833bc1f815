package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"io"
	"math"
	"mca_go/util"
)

const (
	lengthSize = 4
	// PrefixSize is the length field plus the scheme tag.
	PrefixSize = lengthSize + 1

	MaxPayload = util.MaxSectorCount*util.SectorSize - PrefixSize
)

var (
	ErrInvalidBounds  = errors.New("corruption: invalid chunk bounds")
	ErrChunkTooLarge  = errors.New("chunk too large")
	ErrOutputTooLarge = errors.New("region too large")
)

var zeroSector [util.SectorSize]byte

// Sectors returns how many sectors a record holding payloadLen bytes occupies.
func Sectors(payloadLen int) (uint8, error) {
	if payloadLen < 0 || uint64(payloadLen)+1 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s payload overflows the length field",
			ErrChunkTooLarge, humanize.IBytes(uint64(payloadLen)))
	}
	n := util.SectorsFor(uint64(payloadLen) + PrefixSize)
	if n > util.MaxSectorCount {
		return 0, fmt.Errorf("%w: %s payload needs %d sectors, at most %d fit (%s)",
			ErrChunkTooLarge, humanize.IBytes(uint64(payloadLen)), n, util.MaxSectorCount,
			humanize.IBytes(MaxPayload))
	}
	return uint8(n), nil
}

// Writer appends sector aligned records. It does not write the header; the
// first record lands at the sector given to NewWriter.
type Writer struct {
	w      io.Writer
	sector uint64
	offset uint64
	prefix [PrefixSize]byte
}

func NewWriter(w io.Writer, firstSector uint32) *Writer {
	return &Writer{
		w:      w,
		sector: uint64(firstSector),
	}
}

// Append writes the length, tag, payload and zero padding of one record and
// returns the sector it starts at along with its sector count.
func (w *Writer) Append(tag byte, payload []byte) (uint32, uint8, error) {
	count, err := Sectors(len(payload))
	if err != nil {
		return 0, 0, err
	}
	if w.sector+uint64(count) > util.MaxSectorOffset {
		return 0, 0, fmt.Errorf("%w: %d sectors exceed the 24-bit offset range",
			ErrOutputTooLarge, w.sector+uint64(count))
	}

	binary.BigEndian.PutUint32(w.prefix[:lengthSize], uint32(len(payload)+1))
	w.prefix[lengthSize] = tag
	if err := w.write(w.prefix[:]); err != nil {
		return 0, 0, err
	}
	if err := w.write(payload); err != nil {
		return 0, 0, err
	}
	padding := int(count)*util.SectorSize - PrefixSize - len(payload)
	if err := w.write(zeroSector[:padding]); err != nil {
		return 0, 0, err
	}

	start := w.sector
	w.sector += uint64(count)
	return uint32(start), count, nil
}

func (w *Writer) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.w.Write(p)
	w.offset += uint64(n)
	return err
}

// Sector is the next free sector.
func (w *Writer) Sector() uint64 {
	return w.sector
}

// Offset is the number of bytes written so far.
func (w *Writer) Offset() uint64 {
	return w.offset
}

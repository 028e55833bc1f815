package region

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"io"
	"mca_go/compression"
	"mca_go/record"
	"mca_go/table"
	"mca_go/util"
)

type entry struct {
	payload   []byte
	scheme    compression.Scheme
	timestamp uint32
}

// Writer collects chunks and serializes them into a new region. Records are
// laid out in ascending slot index order starting right after the header,
// whatever order they were pushed in. A Writer must not be used concurrently.
type Writer struct {
	entries [util.Entries]*entry
	n       int
	opt     Opt
	codec   *compression.Codec
	log     zerolog.Logger
}

func NewWriter(opt Opt) *Writer {
	return &Writer{
		opt:   opt,
		codec: opt.codec(),
		log:   opt.logger(),
	}
}

// Push compresses data with scheme and stores it at x, z, replacing any chunk
// already pushed there.
func (w *Writer) Push(data []byte, x, z int, scheme compression.Scheme) error {
	i, err := util.IndexOf(x, z)
	if err != nil {
		return err
	}
	payload, err := w.codec.Encode(scheme, data)
	if err != nil {
		return fmt.Errorf("chunk %v: %w", util.CoordAt(i), err)
	}
	return w.put(i, payload, scheme, w.opt.now())
}

// PushEncoded stores a copy of an already encoded payload at x, z.
func (w *Writer) PushEncoded(payload []byte, x, z int, scheme compression.Scheme) error {
	i, err := util.IndexOf(x, z)
	if err != nil {
		return err
	}
	if !scheme.Valid() {
		return fmt.Errorf("chunk %v: %w: %d", util.CoordAt(i), compression.ErrUnsupportedScheme, byte(scheme))
	}
	return w.put(i, append([]byte{}, payload...), scheme, w.opt.now())
}

// PushChunk stores a chunk read from a Region unchanged, keeping its
// coordinate, scheme and timestamp.
func (w *Writer) PushChunk(c *Chunk) error {
	i, err := util.IndexOf(c.coord.X, c.coord.Z)
	if err != nil {
		return err
	}
	return w.put(i, append([]byte{}, c.payload...), c.scheme, c.timestamp)
}

func (w *Writer) put(i int, payload []byte, scheme compression.Scheme, timestamp uint32) error {
	if _, err := record.Sectors(len(payload)); err != nil {
		return fmt.Errorf("chunk %v: %w", util.CoordAt(i), err)
	}
	if w.entries[i] == nil {
		w.n++
	}
	w.entries[i] = &entry{
		payload:   payload,
		scheme:    scheme,
		timestamp: timestamp,
	}
	return nil
}

// SetTimestamp overrides the timestamp of the chunk pending at x, z.
func (w *Writer) SetTimestamp(x, z int, timestamp uint32) error {
	i, err := util.IndexOf(x, z)
	if err != nil {
		return err
	}
	if w.entries[i] == nil {
		return fmt.Errorf("%w at %v", ErrNoChunk, util.CoordAt(i))
	}
	w.entries[i].timestamp = timestamp
	return nil
}

func (w *Writer) Remove(x, z int) error {
	i, err := util.IndexOf(x, z)
	if err != nil {
		return err
	}
	if w.entries[i] != nil {
		w.entries[i] = nil
		w.n--
	}
	return nil
}

func (w *Writer) Len() int {
	return w.n
}

// Size is the exact number of bytes the encoded region occupies.
func (w *Writer) Size() (int, error) {
	sectors := uint64(util.HeaderSectors)
	for _, e := range w.entries {
		if e == nil {
			continue
		}
		n, err := record.Sectors(len(e.payload))
		if err != nil {
			return 0, err
		}
		sectors += uint64(n)
	}
	if sectors > util.MaxSectorOffset {
		return 0, fmt.Errorf("%w: %d sectors", ErrOutputTooLarge, sectors)
	}
	return int(sectors * util.SectorSize), nil
}

// WriteInto encodes the region into dst and returns the number of bytes used.
// dst must hold at least Size bytes; bytes past that are left untouched.
func (w *Writer) WriteInto(dst []byte) (int, error) {
	size, err := w.Size()
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		return 0, fmt.Errorf("%w: need %s, have %s", ErrShortBuffer,
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(len(dst))))
	}
	out := dst[:size]

	// Records go after the reserved header sectors; the header is encoded
	// once every location is known.
	records := record.NewWriter(newByteWriter(out[util.HeaderSize:]), util.HeaderSectors)
	header := &table.Header{}
	for i, e := range w.entries {
		if e == nil {
			continue
		}
		offset, count, err := records.Append(byte(e.scheme), e.payload)
		if err != nil {
			return 0, fmt.Errorf("chunk %v: %w", util.CoordAt(i), err)
		}
		header.Locations[i] = table.NewLocation(offset, count)
		header.Timestamps[i] = e.timestamp
		w.log.Debug().
			Stringer("coord", util.CoordAt(i)).
			Stringer("scheme", e.scheme).
			Uint32("sector", offset).
			Uint8("sectors", count).
			Msg("laid out chunk")
	}
	header.EncodeTo(out[:util.HeaderSize])

	w.log.Debug().Int("chunks", w.n).Int("size", size).Msg("wrote region")
	return size, nil
}

func (w *Writer) Bytes() ([]byte, error) {
	size, err := w.Size()
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	if _, err := w.WriteInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	out, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(out)
	return int64(n), err
}

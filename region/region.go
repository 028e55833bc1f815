// Package region reads and writes region containers: 1024 sector aligned,
// independently compressed chunks behind a location table and a timestamp
// table.
package region

import (
	"fmt"
	"github.com/rs/zerolog"
	"mca_go/compression"
	"mca_go/record"
	"mca_go/table"
	"mca_go/util"
)

// Region is a read-only view over an encoded region. It slices into the
// caller's buffer, which must not be modified while the Region is in use.
// A Region is safe for concurrent use.
type Region struct {
	data   []byte
	header *table.Header
	codec  *compression.Codec
	log    zerolog.Logger
}

func New(data []byte) (*Region, error) {
	return Open(data, Opt{})
}

// Open decodes the header tables of data. Location entries are only
// validated when the chunk they describe is looked up, so one corrupt entry
// does not hide the others.
func Open(data []byte, opt Opt) (*Region, error) {
	header, err := table.Decode(data)
	if err != nil {
		return nil, err
	}
	r := &Region{
		data:   data,
		header: header,
		codec:  opt.codec(),
		log:    opt.logger(),
	}
	r.log.Debug().
		Int("size", len(data)).
		Int("chunks", header.Present()).
		Bool("unchecked", record.Unchecked).
		Msg("opened region")
	return r, nil
}

func (r *Region) Bytes() []byte {
	return r.data
}

// Len counts the chunks with a non-empty location entry.
func (r *Region) Len() int {
	return r.header.Present()
}

func (r *Region) Location(x, z int) (table.Location, error) {
	return r.header.Location(util.Coord{X: x, Z: z})
}

func (r *Region) Timestamp(x, z int) (uint32, error) {
	return r.header.Timestamp(util.Coord{X: x, Z: z})
}

// Chunk returns the record stored at x, z, or nil if the chunk is absent.
func (r *Region) Chunk(x, z int) (*Chunk, error) {
	i, err := util.IndexOf(x, z)
	if err != nil {
		return nil, err
	}
	return r.chunkAt(i)
}

func (r *Region) chunkAt(i int) (*Chunk, error) {
	loc := r.header.Locations[i]
	if loc.Empty() {
		return nil, nil
	}
	coord := util.CoordAt(i)
	tag, payload, err := record.Extract(r.data, loc.Offset(), loc.Count())
	if err != nil {
		return nil, fmt.Errorf("chunk %v at %v: %w", coord, loc, err)
	}
	return &Chunk{
		coord:     coord,
		scheme:    compression.Scheme(tag),
		payload:   payload,
		timestamp: r.header.Timestamps[i],
		codec:     r.codec,
	}, nil
}

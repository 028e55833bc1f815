package region

import (
	"io"
	"mca_go/util"
)

// Iterator walks the chunk slots of a Region in index order.
type Iterator struct {
	r     *Region
	index int
	chunk *Chunk
}

func (r *Region) Iterator() *Iterator {
	return &Iterator{
		r:     r,
		index: -1,
	}
}

// Next moves to the next present chunk and returns io.EOF after the last one.
// A corrupt chunk is returned as an error; the following call to Next
// continues with the slot after it.
func (i *Iterator) Next() error {
	i.chunk = nil
	for i.index+1 < util.Entries {
		i.index++
		chunk, err := i.r.chunkAt(i.index)
		if err != nil {
			i.r.log.Warn().Err(err).Stringer("coord", util.CoordAt(i.index)).Msg("corrupt chunk")
			return err
		}
		if chunk != nil {
			i.chunk = chunk
			return nil
		}
	}
	return io.EOF
}

func (i *Iterator) Chunk() *Chunk {
	return i.chunk
}

// Coord is the slot Next last stopped at, including corrupt ones.
func (i *Iterator) Coord() util.Coord {
	if i.index < 0 {
		return util.Coord{}
	}
	return util.CoordAt(i.index)
}

package util

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCoordIndex(t *testing.T) {
	assert.Equal(t, 0, Coord{0, 0}.Index())
	assert.Equal(t, 31, Coord{31, 0}.Index())
	assert.Equal(t, 32, Coord{0, 1}.Index())
	assert.Equal(t, 1023, Coord{31, 31}.Index())

	for i := 0; i < Entries; i++ {
		assert.Equal(t, i, CoordAt(i).Index())
	}
}

func TestCoordOutOfRange(t *testing.T) {
	bad := []Coord{{-1, 0}, {0, -1}, {32, 0}, {0, 32}, {100, 100}, {-32, 5}}
	for _, c := range bad {
		assert.False(t, c.Valid(), c.String())
		assert.True(t, errors.Is(c.Check(), ErrCoordinateOutOfRange))
		_, err := IndexOf(c.X, c.Z)
		assert.ErrorIs(t, err, ErrCoordinateOutOfRange)
	}

	i, err := IndexOf(4, 6)
	assert.Nil(t, err)
	assert.Equal(t, 6*32+4, i)
}

func TestSectorsFor(t *testing.T) {
	assert.Equal(t, uint64(0), SectorsFor(0))
	assert.Equal(t, uint64(1), SectorsFor(1))
	assert.Equal(t, uint64(1), SectorsFor(SectorSize))
	assert.Equal(t, uint64(2), SectorsFor(SectorSize+1))
}

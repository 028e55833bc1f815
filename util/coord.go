package util

import (
	"errors"
	"fmt"
)

const (
	GridSize = 32
	Entries  = GridSize * GridSize
)

var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Coord is a chunk position inside a region, each axis in [0, GridSize).
type Coord struct {
	X int
	Z int
}

func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < GridSize && c.Z >= 0 && c.Z < GridSize
}

func (c Coord) Check() error {
	if !c.Valid() {
		return fmt.Errorf("%w: (%d, %d)", ErrCoordinateOutOfRange, c.X, c.Z)
	}
	return nil
}

// Index is the position of c in any of the 1024-entry header tables.
// Callers must Check the coordinate first.
func (c Coord) Index() int {
	return c.Z*GridSize + c.X
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

func CoordAt(index int) Coord {
	return Coord{
		X: index % GridSize,
		Z: index / GridSize,
	}
}

// IndexOf validates x, z and returns the flat table index.
func IndexOf(x, z int) (int, error) {
	c := Coord{X: x, Z: z}
	if err := c.Check(); err != nil {
		return 0, err
	}
	return c.Index(), nil
}

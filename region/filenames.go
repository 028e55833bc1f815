package region

import (
	"errors"
	"fmt"
	"mca_go/util"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrBadFilename = errors.New("not a region filename")

// Filename is the conventional name of the region file at region
// coordinates rx, rz.
func Filename(rx, rz int) string {
	return fmt.Sprintf("r.%d.%d.mca", rx, rz)
}

// ExternalFilename names the sibling file holding the payload of a chunk
// stored with compression.External, given its world chunk coordinates.
func ExternalFilename(cx, cz int) string {
	return fmt.Sprintf("c.%d.%d.mcc", cx, cz)
}

func ParseFilename(name string) (int, int, error) {
	parts := strings.Split(filepath.Base(name), ".")
	if len(parts) != 4 || parts[0] != "r" || parts[3] != "mca" {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFilename, name)
	}
	rx, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFilename, name)
	}
	rz, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadFilename, name)
	}
	return rx, rz, nil
}

// WorldCoord converts a slot of region rx, rz to world chunk coordinates.
func WorldCoord(rx, rz int, c util.Coord) (int, int) {
	return rx*util.GridSize + c.X, rz*util.GridSize + c.Z
}

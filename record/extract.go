package record

import (
	"encoding/binary"
	"fmt"
	"mca_go/util"
)

// Extract locates the record described by a non-empty location entry and
// returns its scheme tag and payload, both slicing data.
//
// Builds tagged mcaunchecked use a variant that skips the slice bounds checks
// already implied by the location validation. Both variants validate every
// offset read from data.
func Extract(data []byte, offset uint32, count uint8) (byte, []byte, error) {
	return extract(data, offset, count)
}

// bounds validates a location against a buffer of n bytes. On success
// start+span <= n.
func bounds(n int, offset uint32, count uint8) (uint64, uint64, error) {
	if offset == 0 || count == 0 {
		return 0, 0, fmt.Errorf("%w: malformed location %d+%d", ErrInvalidBounds, offset, count)
	}
	if offset < util.HeaderSectors {
		return 0, 0, fmt.Errorf("%w: sector %d overlaps the header", ErrInvalidBounds, offset)
	}
	start := uint64(offset) * util.SectorSize
	span := uint64(count) * util.SectorSize
	if span < PrefixSize {
		return 0, 0, fmt.Errorf("%w: span of %d bytes", ErrInvalidBounds, span)
	}
	if start+span > uint64(n) {
		return 0, 0, fmt.Errorf("%w: bytes %d..%d past end of %d byte region",
			ErrInvalidBounds, start, start+span, n)
	}
	return start, span, nil
}

func checkLength(length, span uint64) error {
	if length == 0 {
		return fmt.Errorf("%w: zero record length", ErrInvalidBounds)
	}
	if length > span-lengthSize {
		return fmt.Errorf("%w: record length %d exceeds span of %d bytes",
			ErrInvalidBounds, length, span)
	}
	return nil
}

func extractChecked(data []byte, offset uint32, count uint8) (byte, []byte, error) {
	start, span, err := bounds(len(data), offset, count)
	if err != nil {
		return 0, nil, err
	}
	rec := data[start : start+span]
	length := uint64(binary.BigEndian.Uint32(rec[:lengthSize]))
	if err := checkLength(length, span); err != nil {
		return 0, nil, err
	}
	end := lengthSize + length
	return rec[lengthSize], rec[PrefixSize:end:end], nil
}

//go:build mcaunchecked

package record

import (
	"encoding/binary"
	"unsafe"
)

const Unchecked = true

var extract = extractUnchecked

func extractUnchecked(data []byte, offset uint32, count uint8) (byte, []byte, error) {
	start, span, err := bounds(len(data), offset, count)
	if err != nil {
		return 0, nil, err
	}
	// start+span <= len(data) and span >= PrefixSize from here on.
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), uintptr(start))
	prefix := (*[PrefixSize]byte)(p)
	length := uint64(binary.BigEndian.Uint32(prefix[:lengthSize]))
	if err := checkLength(length, span); err != nil {
		return 0, nil, err
	}
	payload := unsafe.Slice((*byte)(unsafe.Add(p, PrefixSize)), int(length-1))
	return prefix[lengthSize], payload, nil
}

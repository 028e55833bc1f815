package compression

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// BlockCodec is a self-delimiting block format used for the LZ4 tag.
type BlockCodec interface {
	Name() string
	Encode(raw []byte) ([]byte, error)
	Decode(payload []byte) ([]byte, error)
}

var (
	// LZ4Block stores a 4-byte little-endian uncompressed length followed by
	// a raw LZ4 block.
	LZ4Block BlockCodec = lz4Block{}
	// SnappyBlock stores a snappy block, which carries its own length.
	SnappyBlock BlockCodec = snappyBlock{}
)

const (
	lz4SizeLen = 4
	// maxLZ4Expansion bounds how many output bytes one input byte can yield.
	maxLZ4Expansion = 256
)

var errLZ4Size = errors.New("declared size does not match block")

type lz4Block struct{}

func (lz4Block) Name() string { return "lz4" }

func (lz4Block) Encode(raw []byte) ([]byte, error) {
	dst := make([]byte, lz4SizeLen+lz4.CompressBlockBound(len(raw)))
	binary.LittleEndian.PutUint32(dst, uint32(len(raw)))
	if len(raw) == 0 {
		return literalBlock(dst[:lz4SizeLen], raw), nil
	}
	n, err := lz4.CompressBlock(raw, dst[lz4SizeLen:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 {
		// CompressBlock gives up on input without matches.
		return literalBlock(dst[:lz4SizeLen], raw), nil
	}
	return dst[:lz4SizeLen+n], nil
}

func (lz4Block) Decode(payload []byte) ([]byte, error) {
	if len(payload) < lz4SizeLen {
		return nil, fmt.Errorf("lz4 block of %d bytes has no size prefix", len(payload))
	}
	size := binary.LittleEndian.Uint32(payload)
	block := payload[lz4SizeLen:]
	if size == 0 {
		return []byte{}, nil
	}
	if uint64(size) > uint64(len(block))*maxLZ4Expansion {
		return nil, fmt.Errorf("%w: %d bytes from a %d byte block", errLZ4Size, size, len(block))
	}
	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(block, dst)
	if err != nil {
		return nil, err
	}
	if n != int(size) {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", errLZ4Size, n, size)
	}
	return dst, nil
}

// literalBlock appends src to dst as one literal-only LZ4 sequence.
func literalBlock(dst, src []byte) []byte {
	n := len(src)
	if n < 15 {
		dst = append(dst, byte(n<<4))
	} else {
		dst = append(dst, 0xf0)
		for n -= 15; n >= 255; n -= 255 {
			dst = append(dst, 255)
		}
		dst = append(dst, byte(n))
	}
	return append(dst, src...)
}

type snappyBlock struct{}

func (snappyBlock) Name() string { return "snappy" }

func (snappyBlock) Encode(raw []byte) ([]byte, error) {
	return snappy.Encode(nil, raw), nil
}

func (snappyBlock) Decode(payload []byte) ([]byte, error) {
	return snappy.Decode(nil, payload)
}

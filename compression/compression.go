package compression

import (
	"errors"
	"fmt"
)

// Scheme is the 1-byte tag stored in front of every chunk payload.
type Scheme byte

const (
	GZip         Scheme = 1
	Zlib         Scheme = 2
	Uncompressed Scheme = 3
	// LZ4 is the fast block codec slot. Codec.Block decides the actual
	// block format and defaults to LZ4Block.
	LZ4 Scheme = 4
	// External marks a chunk whose payload lives in a sibling file. It is
	// recognized but never decoded here.
	External Scheme = 127

	DefaultScheme = Zlib
)

var (
	ErrUnsupportedScheme = errors.New("unsupported compression scheme")
	ErrCorruptPayload    = errors.New("corruption: payload rejected by decompressor")
	ErrExternalChunk     = errors.New("chunk payload is stored in an external file")
)

func (s Scheme) Valid() bool {
	switch s {
	case GZip, Zlib, Uncompressed, LZ4, External:
		return true
	}
	return false
}

func (s Scheme) String() string {
	switch s {
	case GZip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Uncompressed:
		return "none"
	case LZ4:
		return "lz4"
	case External:
		return "external"
	default:
		return fmt.Sprintf("unknown(%d)", byte(s))
	}
}

func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "gzip":
		return GZip, nil
	case "zlib":
		return Zlib, nil
	case "none", "uncompressed":
		return Uncompressed, nil
	case "lz4":
		return LZ4, nil
	case "external":
		return External, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
	}
}

// Decode decompresses payload with the default codec.
func Decode(s Scheme, payload []byte) ([]byte, error) {
	return Default.Decode(s, payload)
}

// Encode compresses raw with the default codec.
func Encode(s Scheme, raw []byte) ([]byte, error) {
	return Default.Encode(s, raw)
}

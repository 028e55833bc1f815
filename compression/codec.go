package compression

import (
	"bytes"
	"fmt"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"io"
)

// Codec maps scheme tags to compressors. The zero value is ready to use.
//
// Decoding has no output quota. Callers reading untrusted containers must
// bound decompressed sizes themselves.
type Codec struct {
	// Level is the deflate level for GZip and Zlib; zero selects the default.
	Level int
	// Block handles the LZ4 tag; nil selects LZ4Block.
	Block BlockCodec
}

var Default = &Codec{}

func (c *Codec) Decode(s Scheme, payload []byte) ([]byte, error) {
	var data []byte
	var err error
	switch s {
	case GZip:
		data, err = inflate(payload, func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		})
	case Zlib:
		data, err = inflate(payload, zlib.NewReader)
	case Uncompressed:
		return append([]byte{}, payload...), nil
	case LZ4:
		data, err = c.block().Decode(payload)
	case External:
		return nil, ErrExternalChunk
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedScheme, byte(s))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptPayload, s, err)
	}
	return data, nil
}

func (c *Codec) Encode(s Scheme, raw []byte) ([]byte, error) {
	switch s {
	case GZip:
		return deflate(raw, func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, c.level())
		})
	case Zlib:
		return deflate(raw, func(w io.Writer) (io.WriteCloser, error) {
			return zlib.NewWriterLevel(w, c.level())
		})
	case Uncompressed:
		return append([]byte{}, raw...), nil
	case LZ4:
		return c.block().Encode(raw)
	case External:
		return nil, ErrExternalChunk
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedScheme, byte(s))
	}
}

func (c *Codec) level() int {
	if c.Level == 0 {
		return zlib.DefaultCompression
	}
	return c.Level
}

func (c *Codec) block() BlockCodec {
	if c.Block == nil {
		return LZ4Block
	}
	return c.Block
}

func inflate(payload []byte, open func(io.Reader) (io.ReadCloser, error)) ([]byte, error) {
	r, err := open(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func deflate(raw []byte, open func(io.Writer) (io.WriteCloser, error)) ([]byte, error) {
	var buf bytes.Buffer
	w, err := open(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

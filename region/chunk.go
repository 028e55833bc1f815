package region

import (
	"fmt"
	"mca_go/compression"
	"mca_go/util"
)

// Chunk is a raw record read from a Region. Its payload aliases the region
// buffer until Decompress is called.
type Chunk struct {
	coord     util.Coord
	scheme    compression.Scheme
	payload   []byte
	timestamp uint32
	codec     *compression.Codec
}

func (c *Chunk) Coord() util.Coord {
	return c.coord
}

// Scheme is the stored tag; it is not guaranteed to be a known scheme.
func (c *Chunk) Scheme() compression.Scheme {
	return c.scheme
}

func (c *Chunk) Payload() []byte {
	return c.payload
}

func (c *Chunk) Timestamp() uint32 {
	return c.timestamp
}

// Decompress decodes the payload. Chunks stored in an external file fail
// with ErrExternalChunk. There is no limit on the decoded size.
func (c *Chunk) Decompress() ([]byte, error) {
	data, err := c.codec.Decode(c.scheme, c.payload)
	if err != nil {
		return nil, fmt.Errorf("chunk %v: %w", c.coord, err)
	}
	return data, nil
}

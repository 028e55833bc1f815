package record

import (
	"bytes"
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mca_go/util"
	"strings"
	"testing"
)

func blob(s string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.Write([]byte(s))
	}
	return b.String()
}

// region builds a buffer with an empty header followed by the given records.
func region(t testing.TB, payloads ...string) ([]byte, []uint32, []uint8) {
	buf := bytes.NewBuffer(make([]byte, util.HeaderSize))
	w := NewWriter(buf, util.HeaderSectors)
	var offsets []uint32
	var counts []uint8
	for _, p := range payloads {
		off, count, err := w.Append(3, []byte(p))
		require.Nil(t, err)
		offsets = append(offsets, off)
		counts = append(counts, count)
	}
	return buf.Bytes(), offsets, counts
}

func TestReadWrite(t *testing.T) {
	data, offsets, counts := region(t, "hello")
	assert.Equal(t, []uint32{2}, offsets)
	assert.Equal(t, []uint8{1}, counts)
	assert.Equal(t, 3*util.SectorSize, len(data))

	tag, payload, err := Extract(data, offsets[0], counts[0])
	require.Nil(t, err)
	assert.Equal(t, byte(3), tag)
	assert.Equal(t, "hello", string(payload))
	assert.Equal(t, len(payload), cap(payload))
}

func TestBoundary(t *testing.T) {
	first := blob("ab", 2000)
	second := blob("bc", 2048)
	third := blob("ab", 30000)
	exact := blob("x", util.SectorSize-PrefixSize)
	data, offsets, counts := region(t, first, second, third, exact)

	assert.Equal(t, []uint32{2, 3, 5, 20}, offsets)
	assert.Equal(t, []uint8{1, 2, 15, 1}, counts)
	assert.Equal(t, 21*util.SectorSize, len(data))

	for i, want := range []string{first, second, third, exact} {
		_, payload, err := Extract(data, offsets[i], counts[i])
		require.Nil(t, err)
		assert.Equal(t, want, string(payload))
	}
}

func TestPaddingIsZero(t *testing.T) {
	data, _, _ := region(t, blob("\xff", 10))
	rec := data[util.HeaderSize:]
	assert.Equal(t, []byte{0, 0, 0, 11, 3}, rec[:PrefixSize])
	for _, b := range rec[PrefixSize+10:] {
		require.Equal(t, byte(0), b)
	}
}

func TestSectors(t *testing.T) {
	cases := []struct {
		payload int
		sectors uint8
	}{
		{0, 1},
		{1, 1},
		{util.SectorSize - PrefixSize, 1},
		{util.SectorSize - PrefixSize + 1, 2},
		{1000000, 245},
		{MaxPayload, util.MaxSectorCount},
	}
	for _, c := range cases {
		n, err := Sectors(c.payload)
		require.Nil(t, err)
		assert.Equal(t, c.sectors, n, "payload %d", c.payload)
	}

	_, err := Sectors(MaxPayload + 1)
	assert.ErrorIs(t, err, ErrChunkTooLarge)
	_, err = Sectors(-1)
	assert.ErrorIs(t, err, ErrChunkTooLarge)
}

func TestAppendTooLarge(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, util.HeaderSectors)
	_, _, err := w.Append(2, make([]byte, MaxPayload+1))
	assert.ErrorIs(t, err, ErrChunkTooLarge)
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, uint64(util.HeaderSectors), w.Sector())
}

func TestAppendOutputTooLarge(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, util.MaxSectorOffset-1)
	_, _, err := w.Append(2, []byte("ok"))
	require.Nil(t, err)
	_, _, err = w.Append(2, []byte("no"))
	assert.ErrorIs(t, err, ErrOutputTooLarge)
	assert.Equal(t, uint64(util.SectorSize), w.Offset())
}

func TestExtractInvalid(t *testing.T) {
	data, _, _ := region(t, "hello")

	cases := []struct {
		name   string
		offset uint32
		count  uint8
	}{
		{"zero offset", 0, 1},
		{"zero count", 2, 0},
		{"timestamp table", 1, 1},
		{"past end", 3, 1},
		{"span past end", 2, 2},
		{"far past end", util.MaxSectorOffset, util.MaxSectorCount},
	}
	for _, c := range cases {
		_, _, err := Extract(data, c.offset, c.count)
		assert.ErrorIs(t, err, ErrInvalidBounds, c.name)
	}
}

func TestExtractInvalidLength(t *testing.T) {
	data, _, _ := region(t, "hello")
	rec := data[util.HeaderSize:]

	binary.BigEndian.PutUint32(rec, 0)
	_, _, err := Extract(data, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	binary.BigEndian.PutUint32(rec, util.SectorSize-lengthSize+1)
	_, _, err = Extract(data, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	binary.BigEndian.PutUint32(rec, 0xffffffff)
	_, _, err = Extract(data, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	binary.BigEndian.PutUint32(rec, util.SectorSize-lengthSize)
	tag, payload, err := Extract(data, 2, 1)
	require.Nil(t, err)
	assert.Equal(t, byte(3), tag)
	assert.Equal(t, util.SectorSize-PrefixSize, len(payload))

	binary.BigEndian.PutUint32(rec, 1)
	_, payload, err = Extract(data, 2, 1)
	require.Nil(t, err)
	assert.Equal(t, 0, len(payload))
}

func TestExtractFilledBuffers(t *testing.T) {
	sizes := []int{0, 1, util.HeaderSize - 1, util.HeaderSize, util.HeaderSize + 1,
		3 * util.SectorSize, 3*util.SectorSize + 7, 300 * util.SectorSize}
	for _, fill := range []byte{0x00, 0xff} {
		for _, size := range sizes {
			data := bytes.Repeat([]byte{fill}, size)
			for _, loc := range [][2]int{{0, 0}, {2, 1}, {0xffffff, 0xff}, {2, 0xff}, {3, 1}} {
				assert.NotPanics(t, func() {
					_, _, _ = Extract(data, uint32(loc[0]), uint8(loc[1]))
				})
			}
		}
	}

	data := bytes.Repeat([]byte{0xff}, 3*util.SectorSize)
	_, _, err := Extract(data, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func FuzzExtract(f *testing.F) {
	data, _, _ := region(f, "seed")
	f.Add(data, uint32(2), uint8(1))
	f.Add([]byte{}, uint32(0), uint8(0))
	f.Add(bytes.Repeat([]byte{0xff}, util.HeaderSize+util.SectorSize), uint32(2), uint8(1))
	f.Fuzz(func(t *testing.T, data []byte, offset uint32, count uint8) {
		tag, payload, err := Extract(data, offset&util.MaxSectorOffset, count)
		if err != nil {
			return
		}
		start := uint64(offset&util.MaxSectorOffset) * util.SectorSize
		assert.Equal(t, data[start+lengthSize], tag)
		assert.LessOrEqual(t, start+PrefixSize+uint64(len(payload)), uint64(len(data)))
	})
}

package util

const (
	SectorSize    = 4096
	HeaderSectors = 2
	HeaderSize    = HeaderSectors * SectorSize

	// MaxSectorOffset is the largest value a 24-bit location offset can hold.
	MaxSectorOffset = 1<<24 - 1
	MaxSectorCount  = 1<<8 - 1
)

// SectorsFor returns the number of whole sectors needed to hold n bytes.
func SectorsFor(n uint64) uint64 {
	return (n + SectorSize - 1) / SectorSize
}

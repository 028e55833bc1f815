package region

import (
	"github.com/rs/zerolog"
	"mca_go/compression"
	"time"
)

type Opt struct {
	// Codec decodes chunks read from a Region and encodes chunks given to
	// Writer.Push. Nil selects compression.Default.
	Codec *compression.Codec
	// Logger receives debug and warning events. Nil disables logging.
	Logger *zerolog.Logger
	// Clock supplies the timestamp of chunks pushed to a Writer. Nil stamps
	// them with zero.
	Clock func() uint32
}

// WallClock returns the current Unix time in seconds, for use as Opt.Clock.
func WallClock() uint32 {
	return uint32(time.Now().Unix())
}

func (o Opt) codec() *compression.Codec {
	if o.Codec == nil {
		return compression.Default
	}
	return o.Codec
}

func (o Opt) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

func (o Opt) now() uint32 {
	if o.Clock == nil {
		return 0
	}
	return o.Clock()
}

package region

import (
	"errors"
	"mca_go/compression"
	"mca_go/record"
	"mca_go/table"
	"mca_go/util"
)

var (
	ErrTruncatedHeader      = table.ErrTruncatedHeader
	ErrCoordinateOutOfRange = util.ErrCoordinateOutOfRange
	ErrInvalidChunkBounds   = record.ErrInvalidBounds
	ErrUnsupportedScheme    = compression.ErrUnsupportedScheme
	ErrCorruptPayload       = compression.ErrCorruptPayload
	ErrExternalChunk        = compression.ErrExternalChunk
	ErrChunkTooLarge        = record.ErrChunkTooLarge
	ErrOutputTooLarge       = record.ErrOutputTooLarge

	ErrShortBuffer = errors.New("output buffer too small")
	ErrNoChunk     = errors.New("no pending chunk")
)

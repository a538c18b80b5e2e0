package blocktime

import "errors"

var (
	// ErrEpochBoundary is returned when an average is requested for the first
	// block of a difficulty epoch, where no block has elapsed yet.
	ErrEpochBoundary = errors.New("epoch boundary, no average available")
	// ErrNoPredecessor is returned for time-to-mine of the genesis block.
	ErrNoPredecessor = errors.New("block has no predecessor")
)

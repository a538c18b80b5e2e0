package blocktime

// EpochLength is the number of blocks sharing one difficulty target.
const EpochLength uint64 = 2016

// BlocksIntoEpoch returns how many blocks of height's epoch precede it.
func BlocksIntoEpoch(height uint64) uint64 {
	return height % EpochLength
}

// EpochStart returns the height of the first block of height's epoch.
func EpochStart(height uint64) uint64 {
	return height - BlocksIntoEpoch(height)
}

// Epoch returns the zero based difficulty epoch index of height.
func Epoch(height uint64) uint64 {
	return height / EpochLength
}

// Package model defines domain models shared by the node client and the metric functions.
package model

import "time"

// Block is the subset of a node block the metrics need.
type Block struct {
	Height    uint64
	Hash      string
	Timestamp time.Time
	TXCount   uint32
}

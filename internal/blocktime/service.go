// Package blocktime derives block timing metrics from node queries.
package blocktime

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cli/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"go.uber.org/zap"
)

// NextBlockEstimate is the breakdown behind a next-block guess.
type NextBlockEstimate struct {
	TipHeight uint64
	TipTime   time.Time
	// Average seconds per block over the tip's epoch.
	Average time.Duration
	// Elapsed wall clock time since the tip's header timestamp.
	Elapsed time.Duration
	// Remaining is Average - Elapsed; negative when the block is overdue.
	Remaining time.Duration
}

// Overdue reports whether the average predicted block time has already passed.
func (e NextBlockEstimate) Overdue() bool {
	return e.Remaining < 0
}

// Service computes block timing metrics. It keeps no state between calls.
type Service struct {
	source Source
	clock  clock.Clock
	logger *zap.Logger
}

// NewService constructs a Service.
func NewService(source Source, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		clock:  clk,
		logger: logger,
	}
}

// BlockTime returns the header timestamp of the block at height.
func (s *Service) BlockTime(ctx context.Context, height uint64) (time.Time, error) {
	block, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return time.Time{}, err
	}
	return block.Timestamp, nil
}

// TimeToMine returns the gap between the block at height and its predecessor.
// Miner timestamps are not monotonic, so the result can be negative.
func (s *Service) TimeToMine(ctx context.Context, height uint64) (time.Duration, error) {
	if height == 0 {
		return 0, fmt.Errorf("time to mine block %d: %w", height, ErrNoPredecessor)
	}
	current, err := s.BlockTime(ctx, height)
	if err != nil {
		return 0, err
	}
	previous, err := s.BlockTime(ctx, height-1)
	if err != nil {
		return 0, err
	}
	return secondsBetween(previous, current), nil
}

// AverageTimeToMine returns the average seconds per block from the start of
// height's difficulty epoch up to height, truncated toward zero.
func (s *Service) AverageTimeToMine(ctx context.Context, height uint64) (time.Duration, error) {
	if BlocksIntoEpoch(height) == 0 {
		return 0, fmt.Errorf("average time to mine at height %d: %w", height, ErrEpochBoundary)
	}
	current, err := s.BlockTime(ctx, height)
	if err != nil {
		return 0, err
	}
	return s.averageSince(ctx, height, current)
}

// EstimateNextBlock guesses how long until the block after the current tip is
// mined: the epoch average minus the time already elapsed since the tip.
func (s *Service) EstimateNextBlock(ctx context.Context) (*NextBlockEstimate, error) {
	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return nil, err
	}
	if BlocksIntoEpoch(tip) == 0 {
		return nil, fmt.Errorf("estimate next block after tip %d: %w", tip, ErrEpochBoundary)
	}
	tipTime, err := s.BlockTime(ctx, tip)
	if err != nil {
		return nil, err
	}
	average, err := s.averageSince(ctx, tip, tipTime)
	if err != nil {
		return nil, err
	}

	elapsed := time.Duration(s.clock.Now().Unix()-tipTime.Unix()) * time.Second
	estimate := &NextBlockEstimate{
		TipHeight: tip,
		TipTime:   tipTime,
		Average:   average,
		Elapsed:   elapsed,
		Remaining: average - elapsed,
	}
	s.logger.Debug("estimated next block",
		zap.Uint64("tip", tip),
		zap.Duration("average", average),
		zap.Duration("elapsed", elapsed),
		zap.Bool("overdue", estimate.Overdue()),
	)
	return estimate, nil
}

// TransactionCount returns the number of transactions in the block at height, coinbase included.
func (s *Service) TransactionCount(ctx context.Context, height uint64) (uint32, error) {
	block, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return 0, err
	}
	return block.TXCount, nil
}

// Chain returns the network the node is operating on.
func (s *Service) Chain(ctx context.Context) (model.Network, error) {
	return s.source.Network(ctx)
}

// averageSince divides the time between the epoch start and height by the
// number of blocks in between. Callers guarantee height is not an epoch start.
func (s *Service) averageSince(ctx context.Context, height uint64, heightTime time.Time) (time.Duration, error) {
	blocks := BlocksIntoEpoch(height)
	first := EpochStart(height)
	firstTime, err := s.BlockTime(ctx, first)
	if err != nil {
		return 0, err
	}

	total := int64(secondsBetween(firstTime, heightTime) / time.Second)
	average := time.Duration(total/int64(blocks)) * time.Second
	s.logger.Debug("epoch average",
		zap.Uint64("epoch", Epoch(height)),
		zap.Uint64("first", first),
		zap.Uint64("height", height),
		zap.Int64("total_seconds", total),
		zap.Duration("average", average),
	)
	return average, nil
}

func secondsBetween(from, to time.Time) time.Duration {
	return time.Duration(to.Unix()-from.Unix()) * time.Second
}

package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-cli/pkg/safe"
	"go.uber.org/zap"
)

// Source resolves heights into blocks and reports chain state from a node.
type Source struct {
	rpc    RPCClient
	logger *zap.Logger
}

// NewSource creates a Source on top of rpc.
func NewSource(rpc RPCClient, logger *zap.Logger) *Source {
	return &Source{
		rpc:    rpc,
		logger: logger,
	}
}

// LatestHeight returns the height of the node's chain tip.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	count, err := await(ctx, s.rpc.GetBlockCount)
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	s.logger.Debug("fetched tip", zap.Uint64("height", height))
	return height, nil
}

// FetchBlock resolves height to a hash and then the hash to a block. Both
// round trips are issued on every call.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	hash, err := await(ctx, func() (*chainhash.Hash, error) {
		return s.rpc.GetBlockHash(rpcHeight)
	})
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := await(ctx, func() (*btcjson.GetBlockVerboseResult, error) {
		return s.rpc.GetBlockVerbose(hash)
	})
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block, err := BuildBlockFromVerbose(*src)
	if err != nil {
		return nil, err
	}
	if block.Height != height {
		return nil, fmt.Errorf("node returned block %d for height %d", block.Height, height)
	}

	s.logger.Debug("fetched block",
		zap.Uint64("height", block.Height),
		zap.String("hash", block.Hash),
		zap.Time("timestamp", block.Timestamp),
		zap.Uint32("tx_count", block.TXCount),
	)
	return &block, nil
}

// Network returns the chain the node is operating on.
func (s *Source) Network(ctx context.Context) (model.Network, error) {
	info, err := await(ctx, s.rpc.GetBlockChainInfo)
	if err != nil {
		return "", fmt.Errorf("get blockchain info: %w", err)
	}
	return ParseChain(info.Chain)
}

// await runs call and returns early once ctx is done. btcd calls take no
// context, so an abandoned call keeps running until the client shuts down.
func await[T any](ctx context.Context, call func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := call()
		done <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}

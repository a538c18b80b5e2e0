package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// ObservedClient wraps the btcd rpcclient with rate limiting, metrics and error classification.
type ObservedClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient constructs an instrumented RPC client. A rps of zero or less disables rate limiting.
func NewObservedClient(client RPCClient, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// GetBlockCount returns the height of the chain tip.
func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	r.wait("get_block_count")
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	count, err = r.client.GetBlockCount()
	return count, classify(err)
}

// GetBlockHash returns the block hash for a height.
func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	r.wait("get_block_hash")
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	hash, err = r.client.GetBlockHash(blockHeight)
	return hash, classify(err)
}

// GetBlockVerbose returns a block with its transaction ids.
func (r *ObservedClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	r.wait("get_block_verbose")
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	res, err = r.client.GetBlockVerbose(blockHash)
	return res, classify(err)
}

// GetBlockChainInfo returns the node's chain state, including the network name.
func (r *ObservedClient) GetBlockChainInfo() (res *btcjson.GetBlockChainInfoResult, err error) {
	r.wait("get_blockchain_info")
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_blockchain_info", err, started)
	}()
	res, err = r.client.GetBlockChainInfo()
	return res, classify(err)
}

func (r *ObservedClient) wait(operation string) {
	before := time.Now()
	r.limiter.Take()
	r.rpcMetrics.ObserveWait(operation, time.Since(before))
}

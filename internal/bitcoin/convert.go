// Package bitcoin implements the Bitcoin node client used by the metric functions.
package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-cli/pkg/safe"
)

// chainNetworks maps the "chain" field of getblockchaininfo to a network.
var chainNetworks = map[string]model.Network{
	"main":     model.Mainnet,
	"test":     model.Testnet,
	"testnet4": model.Testnet4,
	"signet":   model.Signet,
	"regtest":  model.Regtest,
}

// ParseChain maps a node reported chain name to a network. Unrecognised names are rejected.
func ParseChain(chain string) (model.Network, error) {
	network, ok := chainNetworks[chain]
	if !ok {
		return "", fmt.Errorf("node reported chain %q: %w", chain, model.ErrUnknownNetwork)
	}
	return network, nil
}

// BuildBlockFromVerbose maps a btcjson block result into a model.Block.
func BuildBlockFromVerbose(src btcjson.GetBlockVerboseResult) (model.Block, error) {
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height overflow: %w", src.Hash, err)
	}
	txCount, err := safe.Uint32(len(src.Tx))
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d tx count overflow: %w", src.Height, err)
	}

	return model.Block{
		Height:    height,
		Hash:      src.Hash,
		Timestamp: time.Unix(src.Time, 0).UTC(),
		TXCount:   txCount,
	}, nil
}

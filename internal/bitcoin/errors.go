package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrConnection marks failures to reach or authenticate against the node.
	ErrConnection = errors.New("node connection failed")
	// ErrQuery marks JSON-RPC errors answered by the node, e.g. an unknown height.
	ErrQuery = errors.New("node query failed")
)

// classify tags err with ErrQuery when the node answered with a JSON-RPC error
// and with ErrConnection for everything the transport produced.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrQuery) || errors.Is(err, ErrConnection) {
		return err
	}
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return fmt.Errorf("%w: %w", ErrConnection, err)
}

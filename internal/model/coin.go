package model

import (
	"errors"
	"fmt"
)

type Coin string
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Testnet4 Network = "testnet4"
	Signet   Network = "signet"
	Regtest  Network = "regtest"
)

// ErrUnknownNetwork is returned for network names outside the supported set.
var ErrUnknownNetwork = errors.New("unknown network")

// Networks lists every supported network in display order.
func Networks() []Network {
	return []Network{Mainnet, Testnet, Testnet4, Signet, Regtest}
}

// ParseNetwork resolves a canonical network name.
func ParseNetwork(value string) (Network, error) {
	for _, n := range Networks() {
		if string(n) == value {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, value)
}

// UnmarshalFlag lets go-flags reject unsupported --network values.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// DataDirName is the sub directory bitcoind uses for the network inside its data dir.
func (n Network) DataDirName() string {
	switch n {
	case Testnet:
		return "testnet3"
	case Testnet4, Signet, Regtest:
		return string(n)
	default:
		return ""
	}
}

package blocktime

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
		Network(ctx context.Context) (model.Network, error)
	}
)

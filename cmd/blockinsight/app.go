package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/blocktime"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const metricsPushTimeout = 5 * time.Second

// app is the process wide context shared by every command. The node
// connection is created on first use and reused afterwards.
type app struct {
	ctx            context.Context
	opts           *options
	stdout         io.Writer
	logger         *zap.Logger
	commandMetrics *metrics.Command

	once    sync.Once
	client  *rpcclient.Client
	service *blocktime.Service
	err     error
}

func newApp(ctx context.Context, opts *options, stdout io.Writer) *app {
	return &app{
		ctx:            ctx,
		opts:           opts,
		stdout:         stdout,
		logger:         zap.NewNop(),
		commandMetrics: metrics.NewCommand(),
	}
}

func (a *app) blocktime() (*blocktime.Service, error) {
	a.once.Do(func() {
		a.service, a.err = a.connect()
	})
	return a.service, a.err
}

func (a *app) connect() (*blocktime.Service, error) {
	creds, err := config.ResolveCredentials(a.opts.RPCUser, a.opts.RPCPassword, a.opts.CookieFile, a.opts.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bitcoin.ErrConnection, err)
	}
	connCfg, err := config.NewConnConfig(a.opts.RPCURL, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bitcoin.ErrConnection, err)
	}
	client, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: init rpc client: %w", bitcoin.ErrConnection, err)
	}
	a.client = client
	a.logger.Debug("rpc client ready", zap.String("host", connCfg.Host), zap.Stringer("auth", creds))

	rpc := bitcoin.NewObservedClient(client, metrics.NewRPCClient(model.BTC, a.opts.Network), a.opts.RPCRateLimit)
	source := bitcoin.NewSource(rpc, a.logger.Named("source"))
	return blocktime.NewService(source, clock.System(), a.logger.Named("blocktime")), nil
}

// execute runs fn against the lazily connected service and records the command metrics.
func (a *app) execute(command string, fn func(ctx context.Context, svc *blocktime.Service) error) (err error) {
	started := time.Now()
	defer func() {
		a.commandMetrics.Observe(command, err, started)
	}()

	svc, err := a.blocktime()
	if err != nil {
		return err
	}
	return fn(a.ctx, svc)
}

func (a *app) close() {
	if a.client != nil {
		a.client.Shutdown()
		// An abandoned request may still block the post handler.
		if a.ctx.Err() == nil {
			a.client.WaitForShutdown()
		}
	}
	a.pushMetrics()
}

func (a *app) pushMetrics() {
	if a.opts.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsPushTimeout)
	defer cancel()
	if err := metrics.Push(ctx, a.opts.PushgatewayURL, prometheus.DefaultGatherer); err != nil {
		a.logger.Warn("metrics push failed", zap.Error(err))
	}
}

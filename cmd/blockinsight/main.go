package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-cli/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultEnvFile = ".env"

type options struct {
	RPCURL         string        `long:"rpc-url" env:"BITCOIN_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"BITCOIN_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"BITCOIN_RPC_PASSWORD" description:"Bitcoin RPC password"`
	CookieFile     string        `long:"cookie-file" env:"COOKIE_FILE" description:"bitcoind cookie file, defaults to the data dir cookie of --network"`
	Network        model.Network `long:"network" env:"BLOCKINSIGHT_NETWORK" description:"network of the node, used for the default cookie and metric labels" default:"mainnet"`
	RPCRateLimit   int           `long:"rpc-rate-limit" env:"BLOCKINSIGHT_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 disables the limit" default:"0"`
	PushgatewayURL string        `long:"pushgateway-url" env:"BLOCKINSIGHT_PUSHGATEWAY_URL" description:"Prometheus Pushgateway to push metrics to on exit"`
	EnvFile        string        `long:"env-file" env:"BLOCKINSIGHT_ENV_FILE" description:"dotenv file loaded before reading the environment" default:".env"`
	Verbose        bool          `short:"v" long:"verbose" description:"enable debug logs"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// The first signal cancels ctx, a second one falls through to the default handler.
	go func() {
		<-ctx.Done()
		stop()
	}()
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if err := loadEnvFile(args); err != nil {
		return err
	}

	opts := &options{}
	a := newApp(ctx, opts, stdout)
	parser, err := newParser(opts, a)
	if err != nil {
		return err
	}
	parser.CommandHandler = func(cmd flags.Commander, cmdArgs []string) error {
		logger, err := newLogger(opts.Verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()
		a.logger = logger
		defer a.close()
		return cmd.Execute(cmdArgs)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, ferr.Message)
			return nil
		}
		return err
	}
	return nil
}

func newParser(opts *options, a *app) (*flags.Parser, error) {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "blockinsight"
	parser.ShortDescription = "Block timing metrics from a Bitcoin node"

	commands := []struct {
		name, short string
		data        flags.Commander
	}{
		{"chain", "Get the current chain", &chainCommand{app: a}},
		{"time-to-mine", "Get the time it took to mine a block", &timeToMineCommand{app: a}},
		{"average-time-to-mine", "Get the average time to mine a block in its difficulty epoch", &averageTimeToMineCommand{app: a}},
		{"number-of-transactions", "Get the number of transactions in a block", &numberOfTransactionsCommand{app: a}},
		{"next-block", "Guess how long until the next block is mined", &nextBlockCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			return nil, fmt.Errorf("register command %s: %w", c.name, err)
		}
	}
	return parser, nil
}

// loadEnvFile runs before flag parsing so the dotenv values feed the env tags.
func loadEnvFile(args []string) error {
	var pre struct {
		EnvFile string `long:"env-file" env:"BLOCKINSIGHT_ENV_FILE" default:".env"`
	}
	if _, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return err
	}
	return config.LoadEnvFile(pre.EnvFile, pre.EnvFile != defaultEnvFile)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

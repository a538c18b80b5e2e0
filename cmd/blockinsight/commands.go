package main

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-cli/internal/blocktime"
)

type heightArgs struct {
	Height uint64 `positional-arg-name:"height" description:"(numeric, required) The height index"`
}

type chainCommand struct {
	app *app
}

func (c *chainCommand) Execute([]string) error {
	return c.app.execute("chain", func(ctx context.Context, svc *blocktime.Service) error {
		network, err := svc.Chain(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.app.stdout, network)
		return err
	})
}

type timeToMineCommand struct {
	Args heightArgs `positional-args:"yes" required:"yes"`
	app  *app
}

func (c *timeToMineCommand) Execute([]string) error {
	return c.app.execute("time-to-mine", func(ctx context.Context, svc *blocktime.Service) error {
		d, err := svc.TimeToMine(ctx, c.Args.Height)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.app.stdout, formatDuration(d))
		return err
	})
}

type averageTimeToMineCommand struct {
	Args heightArgs `positional-args:"yes" required:"yes"`
	app  *app
}

func (c *averageTimeToMineCommand) Execute([]string) error {
	return c.app.execute("average-time-to-mine", func(ctx context.Context, svc *blocktime.Service) error {
		height := c.Args.Height
		d, err := svc.AverageTimeToMine(ctx, height)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.app.stdout, "Average time to mine in epoch %d (blocks %d-%d): %s\n",
			blocktime.Epoch(height), blocktime.EpochStart(height), height, formatDuration(d))
		return err
	})
}

type numberOfTransactionsCommand struct {
	Args heightArgs `positional-args:"yes" required:"yes"`
	app  *app
}

func (c *numberOfTransactionsCommand) Execute([]string) error {
	return c.app.execute("number-of-transactions", func(ctx context.Context, svc *blocktime.Service) error {
		n, err := svc.TransactionCount(ctx, c.Args.Height)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.app.stdout, "%d transactions\n", n)
		return err
	})
}

type nextBlockCommand struct {
	Details bool `long:"details" description:"print the estimate breakdown"`
	app     *app
}

func (c *nextBlockCommand) Execute([]string) error {
	return c.app.execute("next-block", func(ctx context.Context, svc *blocktime.Service) error {
		estimate, err := svc.EstimateNextBlock(ctx)
		if err != nil {
			return err
		}
		printNextBlock(c.app.stdout, estimate, c.Details)
		return nil
	})
}

package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// PushJob is the Pushgateway job name used by the CLI.
const PushJob = "blockinsight"

// Push sends everything registered in gatherer to a Pushgateway once.
func Push(ctx context.Context, url string, gatherer prometheus.Gatherer) error {
	if url == "" {
		return nil
	}
	if err := push.New(url, PushJob).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}

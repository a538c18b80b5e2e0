package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cli",
		Name:      "commands_total",
		Help:      "Count of executed CLI commands.",
	}, []string{"command", "status"})
	commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "cli",
		Name:      "command_duration_seconds",
		Help:      "Duration of CLI commands including every node round trip.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"command", "status"})
)

// Command tracks CLI command executions.
type Command struct{}

// NewCommand constructs a metrics collector for CLI commands.
func NewCommand() *Command {
	return &Command{}
}

// Observe records a single command outcome and duration.
func (Command) Observe(command string, err error, started time.Time) {
	status := statusLabel(err)

	commandTotal.WithLabelValues(command, status).Inc()
	commandDuration.WithLabelValues(command, status).Observe(time.Since(started).Seconds())
}

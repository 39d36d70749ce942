package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// PresenceStats is the coordinator-side view the telemetry worker samples.
type PresenceStats interface {
	OnlineCount() int
	PairCount() int
	WaitingCount() int
}

// PresenceTelemetryWorker periodically logs matchmaking gauges together with
// the process's own CPU and memory footprint. Observability only: it never
// mutates coordinator state.
type PresenceTelemetryWorker struct {
	log      *slog.Logger
	stats    PresenceStats
	interval time.Duration
}

func NewPresenceTelemetryWorker(log *slog.Logger, stats PresenceStats, interval time.Duration) *PresenceTelemetryWorker {
	return &PresenceTelemetryWorker{log: log, stats: stats, interval: interval}
}

func (w *PresenceTelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			attrs := []any{
				"online", w.stats.OnlineCount(),
				"pairs", w.stats.PairCount(),
				"waiting", w.stats.WaitingCount(),
			}
			if cpu, err := p.CPUPercent(); err == nil {
				attrs = append(attrs, "cpu_percent", cpu)
			}
			if mem, err := p.MemoryInfo(); err == nil {
				attrs = append(attrs, "rss_bytes", mem.RSS)
			}
			w.log.Info("Presence telemetry", attrs...)
		}
	}
}

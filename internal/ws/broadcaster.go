package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/davidgomes/haxball-clone/internal/api/response"
	"github.com/davidgomes/haxball-clone/internal/services/match"
)

// DefaultBroadcastInterval is the snapshot push rate (20 Hz)
const DefaultBroadcastInterval = 50 * time.Millisecond

// Broadcaster periodically assembles a snapshot and pushes it to every
// websocket client through the hub. The engine itself never broadcasts;
// this is the transport-side push loop layered on top of it.
type Broadcaster struct {
	hub      *Hub
	match    *match.Service
	interval time.Duration
	logger   *slog.Logger
}

// NewBroadcaster creates a broadcaster with the given push interval.
// A non-positive interval falls back to the default.
func NewBroadcaster(hub *Hub, matchService *match.Service, interval time.Duration, logger *slog.Logger) *Broadcaster {
	if interval <= 0 {
		interval = DefaultBroadcastInterval
	}
	return &Broadcaster{
		hub:      hub,
		match:    matchService,
		interval: interval,
		logger:   logger,
	}
}

// Run pushes snapshots until ctx is done
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := b.match.Snapshot(ctx)
			if err != nil {
				b.logger.Warn("snapshot for broadcast failed", slog.String("error", err.Error()))
				continue
			}

			data, err := json.Marshal(response.SnapshotFromModel(snap))
			if err != nil {
				b.logger.Error("snapshot marshal failed", slog.String("error", err.Error()))
				continue
			}

			b.hub.Broadcast(data)
		}
	}
}

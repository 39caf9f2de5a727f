package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	Channel = "realtime_changes"

	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener forwards Postgres notifications raised by the change triggers into a Hub.
type Listener struct {
	dsn string
	hub *Hub
}

func NewListener(dsn string, hub *Hub) *Listener {
	return &Listener{dsn: dsn, hub: hub}
}

func (l *Listener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Log.Warn("realtime listener event", zap.Int("event", int(ev)), zap.Error(err))
		}
	})
	defer func() {
		if err := listener.Close(); err != nil {
			logger.Log.Error("failed to close realtime listener", zap.Error(err))
		}
	}()

	if err := listener.Listen(Channel); err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}
	logger.Log.Info("realtime listener started", zap.String("channel", Channel))

	return l.consume(ctx, listener.Notify, listener.Ping)
}

func (l *Listener) consume(ctx context.Context, notify <-chan *pq.Notification, ping func() error) error {
	timer := time.NewTimer(pingInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("realtime listener stopped")
			return nil
		case n := <-notify:
			// nil after a reconnect, events in between are lost
			if n != nil {
				l.dispatch(n.Extra)
			}
		case <-timer.C:
			if err := ping(); err != nil {
				logger.Log.Warn("realtime listener ping failed", zap.Error(err))
			}
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(pingInterval)
	}
}

func (l *Listener) dispatch(payload string) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		logger.Log.Warn("malformed change notification", zap.String("payload", payload), zap.Error(err))
		return
	}
	if ev.Table == "" {
		logger.Log.Warn("change notification without table", zap.String("payload", payload))
		return
	}
	n := l.hub.Publish(ev)
	logger.Log.Debug("change event published", zap.String("table", ev.Table), zap.String("type", ev.Type), zap.Int("handlers", n))
}

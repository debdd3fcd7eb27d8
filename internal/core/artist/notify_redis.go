// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const notifierBuffer = 64

// ChangeEvent is the JSON payload published for each registry mutation.
type ChangeEvent struct {
	Version uint64     `json:"version"`
	Kind    ChangeKind `json:"kind"`
	ID      string     `json:"id"`
	Total   int        `json:"total"`
}

// Publisher is the subset of *redis.Client used by [RedisNotifier].
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

/*
RedisNotifier forwards registry changes to a Redis pub/sub channel.

Observe never blocks the registry: events are queued and published by [Run].
When the queue is full the event is dropped and a warning is logged; the
version field lets consumers detect gaps.
*/
type RedisNotifier struct {
	client  Publisher
	channel string
	events  chan ChangeEvent
	logger  *slog.Logger
}

// NewRedisNotifier creates a notifier publishing on channel.
func NewRedisNotifier(client Publisher, channel string, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		events:  make(chan ChangeEvent, notifierBuffer),
		logger:  logger,
	}
}

// Observe is a registry [Observer].
func (n *RedisNotifier) Observe(snapshot Snapshot) {
	event := ChangeEvent{
		Version: snapshot.Version,
		Kind:    snapshot.Change.Kind,
		ID:      snapshot.Change.ID,
		Total:   len(snapshot.Artists),
	}

	select {
	case n.events <- event:
	default:
		n.logger.Warn("artist_change_dropped",
			slog.Uint64("version", event.Version),
			slog.String("artist_id", event.ID),
		)
	}
}

// Run publishes queued events in order until ctx is cancelled.
func (n *RedisNotifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-n.events:
			n.publish(ctx, event)
		}
	}
}

func (n *RedisNotifier) publish(ctx context.Context, event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("artist_change_encode_failed", slog.String("error", err.Error()))
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Error("artist_change_publish_failed",
			slog.Uint64("version", event.Version),
			slog.String("error", err.Error()),
		)
		return
	}

	n.logger.Debug("artist_change_published",
		slog.Uint64("version", event.Version),
		slog.String("kind", string(event.Kind)),
	)
}

package websocket

import (
	"context"

	"techhive-users/internal/events"
)

// RedisBridge relays events published by any instance into the local hub.
type RedisBridge struct {
	subscriber events.Subscriber
	hub        *Hub
}

func NewRedisBridge(subscriber events.Subscriber, hub *Hub) *RedisBridge {
	return &RedisBridge{subscriber: subscriber, hub: hub}
}

func (b *RedisBridge) Run(ctx context.Context, channels []string) error {
	return b.subscriber.Subscribe(ctx, channels, func(_ string, payload []byte) {
		b.hub.Broadcast(payload)
	})
}

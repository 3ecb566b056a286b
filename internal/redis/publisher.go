package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"techhive-users/internal/events"

	"github.com/redis/go-redis/v9"
)

// Publisher writes event envelopes to a single pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, env events.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", env.EventType, err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", env.EventType, p.channel, err)
	}
	return nil
}

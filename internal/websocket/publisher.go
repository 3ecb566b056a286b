package websocket

import (
	"context"
	"encoding/json"

	"techhive-users/internal/events"
)

// HubPublisher delivers events straight to locally connected clients.
// It is used when no Redis bridge is configured.
type HubPublisher struct {
	hub *Hub
}

func NewHubPublisher(hub *Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(_ context.Context, env events.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	p.hub.Broadcast(data)
	return nil
}

package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
)

type broadcastService interface {
	SendBroadcast(ctx context.Context, b console.Broadcast) error
}

// SendBroadcastCommand delivers a notification blast.
type SendBroadcastCommand struct {
	service   broadcastService
	telemetry Telemetry
}

// NewSendBroadcastCommand creates a command instance.
func NewSendBroadcastCommand(service broadcastService, telemetry Telemetry) *SendBroadcastCommand {
	return &SendBroadcastCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[console.Broadcast] = (*SendBroadcastCommand)(nil)

// Execute delegates to the console service.
func (c *SendBroadcastCommand) Execute(ctx context.Context, msg console.Broadcast) error {
	if c.service == nil {
		return errors.New("broadcast command requires service")
	}
	if err := c.service.SendBroadcast(ctx, msg); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.notification.broadcast", map[string]any{
		"recipients": len(msg.Recipients),
		"audience":   string(msg.Audience),
	})
	return nil
}

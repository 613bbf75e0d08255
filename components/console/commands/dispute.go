package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
)

// ResolveDisputeInput moves a dispute through its workflow.
type ResolveDisputeInput struct {
	DisputeID  string
	Status     console.DisputeStatus
	Resolution string
	Refund     *float64
}

type disputeService interface {
	UpdateDisputeStatus(ctx context.Context, id string, status console.DisputeStatus, resolution string, refund *float64) error
}

// ResolveDisputeCommand updates a dispute's status with an optional refund.
type ResolveDisputeCommand struct {
	service   disputeService
	telemetry Telemetry
}

// NewResolveDisputeCommand creates a command instance.
func NewResolveDisputeCommand(service disputeService, telemetry Telemetry) *ResolveDisputeCommand {
	return &ResolveDisputeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ResolveDisputeInput] = (*ResolveDisputeCommand)(nil)

// Execute delegates to the console service.
func (c *ResolveDisputeCommand) Execute(ctx context.Context, msg ResolveDisputeInput) error {
	if c.service == nil {
		return errors.New("dispute command requires service")
	}
	if err := c.service.UpdateDisputeStatus(ctx, msg.DisputeID, msg.Status, msg.Resolution, msg.Refund); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.dispute.status", map[string]any{
		"dispute_id": msg.DisputeID,
		"status":     string(msg.Status),
	})
	return nil
}

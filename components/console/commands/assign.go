package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// AssignOrderInput identifies the order and the chosen vendor.
type AssignOrderInput struct {
	OrderID  string
	VendorID string
}

type assignService interface {
	AssignOrder(ctx context.Context, orderID, vendorID string) error
}

// AssignOrderCommand hands a pending booking to a vendor. Transports invoke it
// without linking directly against the console service.
type AssignOrderCommand struct {
	service   assignService
	telemetry Telemetry
}

// NewAssignOrderCommand creates a command instance.
func NewAssignOrderCommand(service assignService, telemetry Telemetry) *AssignOrderCommand {
	return &AssignOrderCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AssignOrderInput] = (*AssignOrderCommand)(nil)

// Execute delegates to the console service.
func (c *AssignOrderCommand) Execute(ctx context.Context, msg AssignOrderInput) error {
	if c.service == nil {
		return errors.New("assign command requires service")
	}
	if err := c.service.AssignOrder(ctx, msg.OrderID, msg.VendorID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.order.assign", map[string]any{
		"order_id":  msg.OrderID,
		"vendor_id": msg.VendorID,
	})
	return nil
}

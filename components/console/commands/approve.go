package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ApproveVendorInput flips a vendor's approval flag after KYC review.
type ApproveVendorInput struct {
	VendorID string
	Approved bool
}

type approveService interface {
	ApproveVendor(ctx context.Context, id string, approved bool) error
}

// ApproveVendorCommand marks a vendor approved or revokes approval.
type ApproveVendorCommand struct {
	service   approveService
	telemetry Telemetry
}

// NewApproveVendorCommand creates a command instance.
func NewApproveVendorCommand(service approveService, telemetry Telemetry) *ApproveVendorCommand {
	return &ApproveVendorCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ApproveVendorInput] = (*ApproveVendorCommand)(nil)

// Execute delegates to the console service.
func (c *ApproveVendorCommand) Execute(ctx context.Context, msg ApproveVendorInput) error {
	if c.service == nil {
		return errors.New("approve command requires service")
	}
	if err := c.service.ApproveVendor(ctx, msg.VendorID, msg.Approved); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.vendor.approve", map[string]any{
		"vendor_id": msg.VendorID,
		"approved":  msg.Approved,
	})
	return nil
}

package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ToggleStatusInput flips an entity's active flag from a list row.
type ToggleStatusInput struct {
	Entity string // admin | vendor | service | subcategory | banner
	ID     string
	Active bool
}

type toggleService interface {
	ToggleAdmin(ctx context.Context, id string, active bool) error
	ToggleVendor(ctx context.Context, id string, active bool) error
	SetServiceStatus(ctx context.Context, id string, active bool) error
	SetSubcategoryStatus(ctx context.Context, id string, active bool) error
	ToggleBanner(ctx context.Context, id string, active bool) error
}

// ToggleStatusCommand routes a quick-action status flip to the right
// directory.
type ToggleStatusCommand struct {
	service   toggleService
	telemetry Telemetry
}

// NewToggleStatusCommand creates a command instance.
func NewToggleStatusCommand(service toggleService, telemetry Telemetry) *ToggleStatusCommand {
	return &ToggleStatusCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleStatusInput] = (*ToggleStatusCommand)(nil)

// Execute delegates to the console service.
func (c *ToggleStatusCommand) Execute(ctx context.Context, msg ToggleStatusInput) error {
	if c.service == nil {
		return errors.New("toggle command requires service")
	}
	var err error
	switch msg.Entity {
	case "admin":
		err = c.service.ToggleAdmin(ctx, msg.ID, msg.Active)
	case "vendor":
		err = c.service.ToggleVendor(ctx, msg.ID, msg.Active)
	case "service":
		err = c.service.SetServiceStatus(ctx, msg.ID, msg.Active)
	case "subcategory":
		err = c.service.SetSubcategoryStatus(ctx, msg.ID, msg.Active)
	case "banner":
		err = c.service.ToggleBanner(ctx, msg.ID, msg.Active)
	default:
		return errors.New("toggle command: unknown entity " + msg.Entity)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console."+msg.Entity+".toggle", map[string]any{
		"id":     msg.ID,
		"active": msg.Active,
	})
	return nil
}

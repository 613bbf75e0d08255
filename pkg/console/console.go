package console

import (
	"context"
	"errors"

	core "github.com/goliatone/go-marketplace-admin/components/console"
)

// Service exposes the underlying components/console.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// MenuBuilder ensures console entries exist within a host application's
// navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures console link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the console service and its screen set into an admin shell.
type Config struct {
	EnableConsole bool
	MenuCode      string
	MenuBuilder   MenuBuilder
	Service       *Service
	Screens       *core.ScreenRegistry
}

// Shell exposes helpers for embedding the console into a host admin app.
type Shell struct {
	cfg Config
}

// New creates a Shell that can seed console menus.
func New(cfg Config) (*Shell, error) {
	if cfg.EnableConsole && cfg.Service == nil {
		return nil, errors.New("console: service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.Screens == nil {
		cfg.Screens = core.NewScreenRegistry()
	}
	return &Shell{cfg: cfg}, nil
}

// Console exposes the configured service when enabled.
func (s *Shell) Console() *Service {
	if !s.cfg.EnableConsole {
		return nil
	}
	return s.cfg.Service
}

// Bootstrap seeds one menu entry per visible screen, in manifest order.
func (s *Shell) Bootstrap(ctx context.Context) error {
	if !s.cfg.EnableConsole || s.cfg.MenuBuilder == nil {
		return nil
	}
	for position, screen := range s.cfg.Screens.Screens() {
		item := MenuItem{
			Label:    screen.Title,
			Route:    screen.Path,
			Icon:     screen.Icon,
			Position: position,
		}
		if err := s.cfg.MenuBuilder.EnsureMenuItem(ctx, s.cfg.MenuCode, item); err != nil {
			return err
		}
	}
	return nil
}

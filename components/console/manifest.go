package console

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// ScreenManifestDocument models a YAML manifest describing admin screens and
// the navigation tree they hang from.
type ScreenManifestDocument struct {
	Version string           `json:"version" yaml:"version"`
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Screens []ManifestScreen `json:"screens" yaml:"screens"`
	Source  string           `json:"-" yaml:"-"`
}

// ManifestScreen describes a single admin screen entry.
type ManifestScreen struct {
	Code     string   `json:"code" yaml:"code"`
	Title    string   `json:"title" yaml:"title"`
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Entity   string   `json:"entity,omitempty" yaml:"entity,omitempty"`
	Filter   string   `json:"filter,omitempty" yaml:"filter,omitempty"`
	Order    int      `json:"order,omitempty" yaml:"order,omitempty"`
	Hidden   bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// FilterStrategy maps the manifest filter field onto a list strategy.
// Unknown or empty values default to server-side filtering.
func (s ManifestScreen) FilterStrategy() FilterStrategy {
	if s.Filter == "client" {
		return ClientFiltered
	}
	return ServerFiltered
}

// ScreenRegistry holds the known screens, seeded with defaults and extended
// from manifests.
type ScreenRegistry struct {
	mu      sync.RWMutex
	screens map[string]ManifestScreen
}

// NewScreenRegistry builds a registry pre-loaded with the default screens.
func NewScreenRegistry() *ScreenRegistry {
	r := &ScreenRegistry{screens: map[string]ManifestScreen{}}
	for _, screen := range defaultScreens() {
		r.screens[screen.Code] = screen
	}
	return r
}

// Register adds or replaces a screen entry.
func (r *ScreenRegistry) Register(screen ManifestScreen) error {
	if screen.Code == "" {
		return fmt.Errorf("console: screen requires a code")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[screen.Code] = screen
	return nil
}

// Screen looks up a screen by code.
func (r *ScreenRegistry) Screen(code string) (ManifestScreen, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	screen, ok := r.screens[code]
	return screen, ok
}

// Screens returns the visible screens in navigation order.
func (r *ScreenRegistry) Screens() []ManifestScreen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ManifestScreen, 0, len(r.screens))
	for _, screen := range r.screens {
		if screen.Hidden {
			continue
		}
		out = append(out, screen)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// LoadManifestFile reads a manifest from disk and registers its screens.
func (r *ScreenRegistry) LoadManifestFile(path string) (*ScreenManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers every screen from a decoded manifest.
func (r *ScreenRegistry) LoadManifestDocument(doc *ScreenManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("console: manifest document is nil")
	}
	for _, screen := range doc.Screens {
		if err := r.Register(screen); err != nil {
			return fmt.Errorf("console: register screen %s from %s: %w", screen.Code, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*ScreenManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("console: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("console: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*ScreenManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc ScreenManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("console: manifest is empty")
		}
		return nil, fmt.Errorf("console: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *ScreenManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("console: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Screens))
	for idx, screen := range doc.Screens {
		if screen.Code == "" {
			return fmt.Errorf("console: manifest screen at index %d is missing code", idx)
		}
		if screen.Title == "" {
			return fmt.Errorf("console: manifest screen %s missing title", screen.Code)
		}
		if _, exists := seen[screen.Code]; exists {
			return fmt.Errorf("console: manifest duplicates screen code %s", screen.Code)
		}
		seen[screen.Code] = struct{}{}
	}
	return nil
}

func (doc *ScreenManifestDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}

func defaultScreens() []ManifestScreen {
	return []ManifestScreen{
		{Code: "dashboard", Title: "Dashboard", Icon: "gauge", Path: "/dashboard", Order: 1},
		{Code: "admins", Title: "Admins", Icon: "shield", Path: "/admins", Entity: "admin", Order: 2},
		{Code: "customers", Title: "Customers", Icon: "users", Path: "/customers", Entity: "customer", Order: 3},
		{Code: "vendors", Title: "Vendors", Icon: "briefcase", Path: "/vendors", Entity: "vendor", Order: 4},
		{Code: "services", Title: "Services", Icon: "layers", Path: "/services", Entity: "service", Filter: "client", Order: 5},
		{Code: "subcategories", Title: "Subcategories", Icon: "list", Path: "/subcategories", Entity: "subcategory", Filter: "client", Order: 6},
		{Code: "orders", Title: "Orders", Icon: "clipboard", Path: "/orders", Entity: "order", Order: 7},
		{Code: "disputes", Title: "Disputes", Icon: "alert-triangle", Path: "/disputes", Entity: "dispute", Order: 8},
		{Code: "banners", Title: "Banners", Icon: "image", Path: "/banners", Entity: "banner", Filter: "client", Order: 9},
		{Code: "notifications", Title: "Notifications", Icon: "bell", Path: "/notifications", Entity: "notification", Order: 10},
	}
}

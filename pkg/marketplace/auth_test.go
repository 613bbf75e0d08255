package marketplace

import (
	"path/filepath"
	"testing"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "token")
	store := NewFileTokenStore(path)

	if token, err := store.Load(); err != nil || token != "" {
		t.Fatalf("expected empty token before save, got %q, %v", token, err)
	}
	if err := store.Save("abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if token, err := store.Load(); err != nil || token != "abc123" {
		t.Fatalf("expected saved token, got %q, %v", token, err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if token, err := store.Load(); err != nil || token != "" {
		t.Fatalf("expected cleared token, got %q, %v", token, err)
	}
	// Clearing twice is a no-op.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

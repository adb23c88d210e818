package testsupport

import (
	"testing"

	"weft/internal/assetcache"
	"weft/internal/config"
)

// MustOpenStore opens an assetcache.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *assetcache.Store {
	t.Helper()

	store, err := assetcache.Open(cfg)
	if err != nil {
		t.Fatalf("assetcache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

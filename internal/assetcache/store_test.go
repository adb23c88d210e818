package assetcache_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"weft/internal/testsupport"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	id := uuid.New()
	payload := []byte("LLWearable version 22\nCached Shirt\n")
	if err := store.Put(ctx, id, "wearable", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("stored entry reported as a miss")
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}
}

func TestGetMiss(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	_, ok, err := store.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("unknown id reported as a hit")
	}
}

func TestPutUpsertReplaces(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	id := uuid.New()
	if err := store.Put(ctx, id, "texture", []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, id, "texture", []byte("replacement")); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := store.Get(ctx, id)
	if err != nil || !ok {
		t.Fatalf("get after upsert: (%v, %v)", ok, err)
	}
	if string(got) != "replacement" {
		t.Fatalf("payload = %q, want replacement", got)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 1 {
		t.Fatalf("entries = %d after upsert, want 1", stats.Entries)
	}
}

func TestDelete(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	id := uuid.New()
	if err := store.Put(ctx, id, "wearable", []byte("body")); err != nil {
		t.Fatalf("put: %v", err)
	}

	existed, err := store.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Fatal("delete of a stored entry reported false")
	}

	existed, err = store.Delete(ctx, id)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if existed {
		t.Fatal("second delete reported true")
	}
}

func TestPruneEvictsLeastRecentlyUsed(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	payload := bytes.Repeat([]byte{0xAB}, 100)
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	for _, id := range []uuid.UUID{first, second, third} {
		if err := store.Put(ctx, id, "texture", payload); err != nil {
			t.Fatalf("put: %v", err)
		}
		// Last-used stamps must differ for eviction order to be stable.
		time.Sleep(2 * time.Millisecond)
	}

	// Touch the oldest entry so the middle one becomes the eviction victim.
	if _, ok, err := store.Get(ctx, first); err != nil || !ok {
		t.Fatalf("touch first: (%v, %v)", ok, err)
	}

	removed, err := store.Prune(ctx, 250)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	if _, ok, _ := store.Get(ctx, second); ok {
		t.Fatal("least recently used entry survived the prune")
	}
	for _, id := range []uuid.UUID{first, third} {
		if _, ok, err := store.Get(ctx, id); err != nil || !ok {
			t.Fatalf("recently used entry %s evicted", id)
		}
	}
}

func TestPruneUnderBudgetIsNoop(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.Put(ctx, uuid.New(), "texture", []byte("small")); err != nil {
		t.Fatalf("put: %v", err)
	}
	removed, err := store.Prune(ctx, 1<<20)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 0 {
		t.Fatalf("removed = %d under budget, want 0", removed)
	}
}

func TestStatsGroupsByKind(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := store.Put(ctx, uuid.New(), "wearable", []byte("aaaa")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, uuid.New(), "texture", []byte("bbbbbb")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, uuid.New(), "texture", []byte("cc")); err != nil {
		t.Fatalf("put: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Entries != 3 {
		t.Fatalf("entries = %d, want 3", stats.Entries)
	}
	if stats.TotalBytes != 12 {
		t.Fatalf("total bytes = %d, want 12", stats.TotalBytes)
	}
	if stats.ByKind["wearable"] != 1 || stats.ByKind["texture"] != 2 {
		t.Fatalf("by kind = %v, want wearable:1 texture:2", stats.ByKind)
	}
}

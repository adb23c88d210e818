package simloop

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"weft/internal/appearance"
	"weft/internal/assets"
	"weft/internal/logging"
	"weft/internal/services"
	"weft/internal/wire"
)

func TestWearReplacesSlot(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop()})
	d := wire.NewDispatcher()
	sim.Attach(d)

	var updates []*wire.WearablesUpdate
	d.Register(wire.KindWearablesUpdate, func(p wire.Packet) {
		updates = append(updates, p.(*wire.WearablesUpdate))
	})

	shirt := &appearance.WearableAsset{Name: "First", Slot: appearance.SlotShirt}
	sim.Wear(appearance.SlotShirt, shirt)
	_, replacementAsset := sim.Wear(appearance.SlotShirt, &appearance.WearableAsset{Name: "Second", Slot: appearance.SlotShirt})

	if err := sim.Send(context.Background(), &wire.WearablesRequest{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(updates))
	}
	update := updates[0]
	if len(update.Wearables) != 1 {
		t.Fatalf("worn blocks = %d, want 1 after replacement", len(update.Wearables))
	}
	if update.Wearables[0].AssetID != replacementAsset {
		t.Fatal("slot still carries the replaced asset")
	}
	if update.Serial != 2 {
		t.Fatalf("worn serial = %d, want 2 after two wears", update.Serial)
	}
}

func TestFetchErrors(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop()})
	ctx := context.Background()

	_, err := sim.Fetch(ctx, uuid.New(), assets.KindClothing, assets.PriorityNormal)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("unknown asset error = %v, want not-found", err)
	}

	_, assetID := sim.Wear(appearance.SlotShirt, &appearance.WearableAsset{Slot: appearance.SlotShirt})
	sim.FailAsset(assetID)
	_, err = sim.Fetch(ctx, assetID, assets.KindClothing, assets.PriorityNormal)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("forced failure error = %v, want transient", err)
	}
}

func TestFetchImageDeterministic(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop()})
	ctx := context.Background()
	id := uuid.New()

	first, err := sim.FetchImage(ctx, id)
	if err != nil {
		t.Fatalf("fetch image: %v", err)
	}
	second, err := sim.FetchImage(ctx, id)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("generated texture differs across fetches")
	}
	if _, err := imaging.Decode(bytes.NewReader(first)); err != nil {
		t.Fatalf("generated texture does not decode: %v", err)
	}
	if got := sim.TextureFetches(); got != 2 {
		t.Fatalf("texture fetches = %d, want 2", got)
	}
}

func TestUploadBaked(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop()})
	ctx := context.Background()

	if _, err := sim.UploadBaked(ctx, nil); !errors.Is(err, services.ErrUpload) {
		t.Fatalf("empty upload error = %v, want upload error", err)
	}

	id, err := sim.UploadBaked(ctx, []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("upload returned the zero id")
	}
	if got := sim.Uploads(); got != 1 {
		t.Fatalf("uploads = %d, want 1", got)
	}
}

func TestSendRejectsInboundKinds(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop()})
	err := sim.Send(context.Background(), &wire.WearablesUpdate{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestCacheQueryAnswersStably(t *testing.T) {
	sim := New(Options{Logger: logging.NewNop(), CacheHits: true})
	d := wire.NewDispatcher()
	sim.Attach(d)

	var responses []*wire.CachedTextureResponse
	d.Register(wire.KindCachedTextureResponse, func(p wire.Packet) {
		responses = append(responses, p.(*wire.CachedTextureResponse))
	})

	fp := uuid.New()
	query := &wire.CachedTextureQuery{
		Serial: 1,
		Layers: []wire.CacheQueryBlock{{Fingerprint: fp, BakedIndex: 0}},
	}
	if err := sim.Send(context.Background(), query); err != nil {
		t.Fatalf("send: %v", err)
	}
	query2 := &wire.CachedTextureQuery{
		Serial: 2,
		Layers: []wire.CacheQueryBlock{{Fingerprint: fp, BakedIndex: 0}},
	}
	if err := sim.Send(context.Background(), query2); err != nil {
		t.Fatalf("second send: %v", err)
	}

	if len(responses) != 2 {
		t.Fatalf("responses = %d, want 2", len(responses))
	}
	first, second := responses[0].Textures[0], responses[1].Textures[0]
	if first.TextureID == uuid.Nil {
		t.Fatal("cache hit returned the zero id")
	}
	if first.TextureID != second.TextureID {
		t.Fatal("same fingerprint answered with different baked ids")
	}
	if responses[1].Serial != 2 {
		t.Fatalf("response serial = %d, want the query serial 2", responses[1].Serial)
	}
}

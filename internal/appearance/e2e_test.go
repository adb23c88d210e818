package appearance_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"weft/internal/appearance"
	"weft/internal/appearance/vparams"
	"weft/internal/assets"
	"weft/internal/baking"
	"weft/internal/logging"
	"weft/internal/simloop"
	"weft/internal/testsupport"
	"weft/internal/wire"
)

func buildManager(t *testing.T, sim *simloop.Simulator, fetcher assets.Fetcher) (*appearance.Manager, *wire.Dispatcher) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	d := wire.NewDispatcher()
	sim.Attach(d)
	if fetcher == nil {
		fetcher = sim
	}
	mgr := appearance.New(appearance.Options{
		Config:    cfg,
		Logger:    logging.NewNop(),
		Sender:    sim,
		Assets:    fetcher,
		Textures:  sim,
		Uploader:  sim,
		Baker:     baking.New(logging.NewNop()),
		AgentID:   uuid.MustParse(testsupport.AgentID),
		SessionID: uuid.MustParse(testsupport.SessionID),
	})
	mgr.Bind(d)
	t.Cleanup(mgr.Close)
	return mgr, d
}

func dress(sim *simloop.Simulator, wardrobe map[appearance.WearableSlot]*appearance.WearableAsset) map[appearance.WearableSlot]wire.WearableBlock {
	worn := make(map[appearance.WearableSlot]wire.WearableBlock, len(wardrobe))
	for slot, asset := range wardrobe {
		itemID, assetID := sim.Wear(slot, asset)
		worn[slot] = wire.WearableBlock{SlotIndex: uint8(slot), ItemID: itemID, AssetID: assetID}
	}
	return worn
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func expectedFingerprints(worn map[appearance.WearableSlot]wire.WearableBlock) [appearance.BakeLayerCount]uuid.UUID {
	assetID := func(slot appearance.WearableSlot) uuid.UUID {
		if block, ok := worn[slot]; ok {
			return block.AssetID
		}
		return uuid.Nil
	}
	var fps [appearance.BakeLayerCount]uuid.UUID
	for layer := appearance.BakeLayer(0); layer < appearance.BakeLayerCount; layer++ {
		fps[layer] = appearance.LayerFingerprint(layer, assetID)
	}
	return fps
}

// A first run against a simulator that still holds every bake finishes
// without touching the texture or upload services.
func TestFirstRunAllCacheHits(t *testing.T) {
	sim := simloop.New(simloop.Options{Logger: logging.NewNop(), CacheHits: true})
	mgr, _ := buildManager(t, sim, nil)
	worn := dress(sim, testsupport.Wardrobe())

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("initial run refused")
	}
	waitFor(t, func() bool { return len(sim.Published()) == 1 }, "appearance never published")

	if got := sim.TextureFetches(); got != 0 {
		t.Fatalf("texture fetches = %d, want 0 on a full cache hit", got)
	}
	if got := sim.Uploads(); got != 0 {
		t.Fatalf("uploads = %d, want 0 on a full cache hit", got)
	}

	queries := sim.CacheQueries()
	if len(queries) != 1 {
		t.Fatalf("cache queries = %d, want 1", len(queries))
	}
	if len(queries[0].Layers) != 5 {
		t.Fatalf("query blocks = %d, want 5 without a skirt", len(queries[0].Layers))
	}
	fps := expectedFingerprints(worn)
	for _, block := range queries[0].Layers {
		layer := appearance.BakeLayer(block.BakedIndex)
		want := appearance.PublishedFingerprint(layer, fps[layer])
		if block.Fingerprint != want {
			t.Fatalf("%s query fingerprint = %s, want %s", layer, block.Fingerprint, want)
		}
	}

	msg := sim.Published()[0]
	if msg.Serial != 1 || mgr.Serial() != 1 {
		t.Fatalf("serial = (%d, %d), want (1, 1)", msg.Serial, mgr.Serial())
	}
	if len(msg.VisualParams) != vparams.PublishedCount {
		t.Fatalf("visual params = %d bytes, want %d", len(msg.VisualParams), vparams.PublishedCount)
	}
	if len(msg.TextureEntry) == 0 {
		t.Fatal("texture entry is empty")
	}
	if len(msg.WearableData) != appearance.BakeLayerCount {
		t.Fatalf("wearable data blocks = %d, want %d", len(msg.WearableData), appearance.BakeLayerCount)
	}
	for layer := appearance.BakeLayer(0); layer < appearance.BakeLayerCount; layer++ {
		want := appearance.PublishedFingerprint(layer, fps[layer])
		if msg.WearableData[layer].CacheID != want {
			t.Fatalf("%s wearable data fingerprint = %s, want %s", layer, msg.WearableData[layer].CacheID, want)
		}
		baked := mgr.Table().ID(layer.BakedFace())
		if layer == appearance.BakeSkirt {
			if baked != uuid.Nil {
				t.Fatalf("skirt baked face populated without a skirt: %s", baked)
			}
			continue
		}
		if baked == uuid.Nil {
			t.Fatalf("%s baked face empty after cache hit", layer)
		}
	}

	if msg.Size.X != 0.45 || msg.Size.Y != 0.60 {
		t.Fatalf("size footprint = (%v, %v), want (0.45, 0.60)", msg.Size.X, msg.Size.Y)
	}
	wantZ := 1.706 + (0.1918+0.0375+0.12022+0.01117+0.038)*0.5
	if math.Abs(float64(msg.Size.Z)-wantZ) > 1e-5 {
		t.Fatalf("height = %.6f, want %.6f", msg.Size.Z, wantZ)
	}
}

// A first run against a cold simulator fetches every source texture, bakes
// every populated layer, and uploads the results.
func TestFirstRunFullCacheMiss(t *testing.T) {
	sim := simloop.New(simloop.Options{Logger: logging.NewNop()})
	mgr, _ := buildManager(t, sim, nil)
	dress(sim, testsupport.Wardrobe())

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("initial run refused")
	}
	waitFor(t, func() bool { return len(sim.Published()) == 1 }, "appearance never published")

	if got := sim.TextureFetches(); got != 7 {
		t.Fatalf("texture fetches = %d, want 7 distinct sources", got)
	}
	if got := sim.Uploads(); got != 5 {
		t.Fatalf("uploads = %d, want 5 baked layers", got)
	}
	for layer := appearance.BakeLayer(0); layer < appearance.BakeLayerCount; layer++ {
		baked := mgr.Table().ID(layer.BakedFace())
		if layer == appearance.BakeSkirt {
			if baked != uuid.Nil {
				t.Fatalf("skirt baked face populated without a skirt: %s", baked)
			}
			continue
		}
		if baked == uuid.Nil {
			t.Fatalf("%s baked face empty after upload", layer)
		}
	}
	if got := sim.Published()[0].Serial; got != 1 {
		t.Fatalf("serial = %d, want 1", got)
	}
}

type gatedFetcher struct {
	inner   assets.Fetcher
	started chan struct{}
	release chan struct{}
}

func (g *gatedFetcher) Fetch(ctx context.Context, assetID uuid.UUID, kind assets.Kind, priority assets.Priority) ([]byte, error) {
	select {
	case g.started <- struct{}{}:
	default:
	}
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.inner.Fetch(ctx, assetID, kind, priority)
}

// A trigger landing while a run is active returns immediately without
// queuing; the single-run flag clears once the active run finishes.
func TestTriggerDuringActiveRun(t *testing.T) {
	sim := simloop.New(simloop.Options{Logger: logging.NewNop(), CacheHits: true})
	gate := &gatedFetcher{
		inner:   sim,
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	mgr, _ := buildManager(t, sim, gate)
	dress(sim, testsupport.Wardrobe())

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("initial run refused")
	}
	select {
	case <-gate.started:
	case <-time.After(5 * time.Second):
		t.Fatal("run never reached the wearable fetch stage")
	}
	if mgr.RequestSetAppearance(false) {
		t.Fatal("second trigger accepted while a run is active")
	}

	close(gate.release)
	waitFor(t, func() bool { return len(sim.Published()) == 1 }, "first run never published")

	waitFor(t, func() bool { return mgr.RequestSetAppearance(false) }, "run flag never cleared")
	waitFor(t, func() bool { return len(sim.Published()) == 2 }, "second run never published")
	if got := sim.Published()[1].Serial; got != 2 {
		t.Fatalf("second serial = %d, want 2", got)
	}
}

// An undecodable skin degrades the run instead of aborting it: the slot
// keeps no asset, its textures never install, and every layer still bakes.
func TestSkinDecodeFailureDegrades(t *testing.T) {
	sim := simloop.New(simloop.Options{Logger: logging.NewNop()})
	mgr, _ := buildManager(t, sim, nil)
	worn := dress(sim, testsupport.Wardrobe())
	sim.ServeAsset(worn[appearance.SlotSkin].AssetID, []byte("not a wearable body"))

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("initial run refused")
	}
	waitFor(t, func() bool { return len(sim.Published()) == 1 }, "degraded run never published")

	snapshot := mgr.Registry().Snapshot()
	record, ok := snapshot[appearance.SlotSkin]
	if !ok {
		t.Fatal("skin slot dropped from the registry")
	}
	if record.Asset != nil {
		t.Fatal("undecodable skin still produced an asset")
	}
	if got := mgr.Table().ID(appearance.FaceHeadBodypaint); got != uuid.Nil {
		t.Fatalf("bodypaint face installed from a failed decode: %s", got)
	}
	// Bodypaint sources stay empty, so only the four hair, garment, and eye
	// textures are fetched.
	if got := sim.TextureFetches(); got != 4 {
		t.Fatalf("texture fetches = %d, want 4", got)
	}
	if got := sim.Uploads(); got != 5 {
		t.Fatalf("uploads = %d, want 5: layers bake even without skin paint", got)
	}
	if got := sim.Published()[0].Serial; got != 1 {
		t.Fatalf("serial = %d, want 1", got)
	}
}

// Removing the skirt between runs clears its registry slot and zeroes its
// published fingerprint while the other layers keep theirs.
func TestSkirtRemovalBetweenRuns(t *testing.T) {
	sim := simloop.New(simloop.Options{Logger: logging.NewNop(), CacheHits: true})
	mgr, d := buildManager(t, sim, nil)

	wardrobe := testsupport.Wardrobe()
	wardrobe[appearance.SlotSkirt] = &appearance.WearableAsset{
		Name:   "Test Skirt",
		Slot:   appearance.SlotSkirt,
		Params: map[int]float32{},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceSkirt: uuid.New(),
		},
	}
	worn := dress(sim, wardrobe)

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("initial run refused")
	}
	waitFor(t, func() bool { return len(sim.Published()) == 1 }, "first run never published")

	queries := sim.CacheQueries()
	if len(queries) != 1 || len(queries[0].Layers) != 6 {
		t.Fatalf("first query blocks = %d, want all 6 layers with a skirt", len(queries[0].Layers))
	}

	blocks := make([]wire.WearableBlock, 0, len(worn)-1)
	for slot, block := range worn {
		if slot == appearance.SlotSkirt {
			continue
		}
		blocks = append(blocks, block)
	}
	d.Dispatch(&wire.WearablesUpdate{
		AgentID:   uuid.MustParse(testsupport.AgentID),
		Serial:    2,
		Wearables: blocks,
	})

	if _, ok := mgr.Registry().Snapshot()[appearance.SlotSkirt]; ok {
		t.Fatal("skirt survived the wearables update")
	}
	if _, ok := mgr.Registry().IsWorn(worn[appearance.SlotSkirt].ItemID); ok {
		t.Fatal("skirt item still reported as worn")
	}

	if !mgr.RequestSetAppearance(false) {
		t.Fatal("second run refused")
	}
	waitFor(t, func() bool { return len(sim.Published()) == 2 }, "second run never published")

	if got := len(sim.CacheQueries()); got != 1 {
		t.Fatalf("cache queries = %d, want 1: later runs skip negotiation", got)
	}

	first, second := sim.Published()[0], sim.Published()[1]
	if second.Serial != 2 {
		t.Fatalf("second serial = %d, want 2", second.Serial)
	}
	if got := second.WearableData[appearance.BakeSkirt].CacheID; got != uuid.Nil {
		t.Fatalf("skirt fingerprint = %s after removal, want zero", got)
	}
	if first.WearableData[appearance.BakeSkirt].CacheID == uuid.Nil {
		t.Fatal("skirt fingerprint was zero while the skirt was worn")
	}
	for layer := appearance.BakeLayer(0); layer < appearance.BakeLayerCount; layer++ {
		if layer == appearance.BakeSkirt {
			continue
		}
		if first.WearableData[layer].CacheID != second.WearableData[layer].CacheID {
			t.Fatalf("%s fingerprint changed across runs without a wardrobe change", layer)
		}
	}
}

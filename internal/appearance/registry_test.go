package appearance

import (
	"testing"

	"github.com/google/uuid"

	"weft/internal/wire"
)

func block(slot WearableSlot, itemID, assetID uuid.UUID) wire.WearableBlock {
	return wire.WearableBlock{SlotIndex: uint8(slot), ItemID: itemID, AssetID: assetID}
}

func TestRegistryUpdateFromServer(t *testing.T) {
	itemA, assetA := uuid.New(), uuid.New()
	itemB, assetB := uuid.New(), uuid.New()

	reg := NewRegistry()
	first := []wire.WearableBlock{
		block(SlotShape, itemA, assetA),
		block(SlotSkin, itemB, assetB),
	}
	if !reg.UpdateFromServer(first) {
		t.Fatal("initial update should report a change")
	}
	if got := reg.AssetID(SlotShape); got != assetA {
		t.Fatalf("shape asset = %s, want %s", got, assetA)
	}

	if reg.UpdateFromServer(first) {
		t.Fatal("identical update should be a duplicate")
	}

	swapped := []wire.WearableBlock{
		block(SlotShape, itemA, uuid.New()),
		block(SlotSkin, itemB, assetB),
	}
	if !reg.UpdateFromServer(swapped) {
		t.Fatal("asset swap should report a change")
	}

	removed := []wire.WearableBlock{block(SlotSkin, itemB, assetB)}
	if !reg.UpdateFromServer(removed) {
		t.Fatal("slot removal should report a change")
	}
	if got := reg.AssetID(SlotShape); got != uuid.Nil {
		t.Fatalf("shape should be cleared, got %s", got)
	}
}

func TestRegistryFiltersInvalidBlocks(t *testing.T) {
	reg := NewRegistry()
	blocks := []wire.WearableBlock{
		{SlotIndex: 200, ItemID: uuid.New(), AssetID: uuid.New()},
		block(SlotHair, uuid.New(), uuid.Nil),
		block(SlotEyes, uuid.New(), uuid.New()),
	}
	if !reg.UpdateFromServer(blocks) {
		t.Fatal("expected change")
	}
	snap := reg.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("registry holds %d slots, want 1", len(snap))
	}
	if _, ok := snap[SlotEyes]; !ok {
		t.Fatal("eyes slot missing")
	}
}

func TestRegistryPreservesDecodedAssets(t *testing.T) {
	itemA, assetA := uuid.New(), uuid.New()
	reg := NewRegistry()
	reg.UpdateFromServer([]wire.WearableBlock{block(SlotShape, itemA, assetA)})

	decoded := &WearableAsset{Name: "shape", Slot: SlotShape}
	if !reg.SetAsset(SlotShape, assetA, decoded) {
		t.Fatal("SetAsset should accept the live asset id")
	}

	update := []wire.WearableBlock{
		block(SlotShape, itemA, assetA),
		block(SlotSkin, uuid.New(), uuid.New()),
	}
	if !reg.UpdateFromServer(update) {
		t.Fatal("expected change")
	}
	if got := reg.Snapshot()[SlotShape].Asset; got != decoded {
		t.Fatal("decoded asset lost across an unchanged-slot update")
	}
}

func TestRegistrySetAssetStaleGuard(t *testing.T) {
	itemA := uuid.New()
	reg := NewRegistry()
	reg.UpdateFromServer([]wire.WearableBlock{block(SlotShape, itemA, uuid.New())})

	if reg.SetAsset(SlotShape, uuid.New(), &WearableAsset{}) {
		t.Fatal("SetAsset should reject a stale asset id")
	}
	if reg.SetAsset(SlotSkin, uuid.New(), &WearableAsset{}) {
		t.Fatal("SetAsset should reject an empty slot")
	}
}

func TestRegistryIsWorn(t *testing.T) {
	itemA := uuid.New()
	reg := NewRegistry()
	reg.UpdateFromServer([]wire.WearableBlock{block(SlotShirt, itemA, uuid.New())})

	slot, ok := reg.IsWorn(itemA)
	if !ok || slot != SlotShirt {
		t.Fatalf("IsWorn = (%v, %v), want (shirt, true)", slot, ok)
	}
	if _, ok := reg.IsWorn(uuid.New()); ok {
		t.Fatal("unknown item should not be worn")
	}
}

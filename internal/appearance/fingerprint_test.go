package appearance

import (
	"testing"

	"github.com/google/uuid"
)

func TestLayerFingerprintCommutative(t *testing.T) {
	shape, skin, shirt := uuid.New(), uuid.New(), uuid.New()
	forward := map[WearableSlot]uuid.UUID{
		SlotShape: shape, SlotSkin: skin, SlotShirt: shirt,
	}
	reversed := map[WearableSlot]uuid.UUID{
		SlotShirt: shirt, SlotSkin: skin, SlotShape: shape,
	}

	lookup := func(m map[WearableSlot]uuid.UUID) func(WearableSlot) uuid.UUID {
		return func(slot WearableSlot) uuid.UUID { return m[slot] }
	}
	a := LayerFingerprint(BakeUpperBody, lookup(forward))
	b := LayerFingerprint(BakeUpperBody, lookup(reversed))
	if a != b {
		t.Fatalf("fingerprint depends on assignment order: %s != %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("populated layer should not fingerprint to zero")
	}
}

func TestLayerFingerprintEmpty(t *testing.T) {
	empty := func(WearableSlot) uuid.UUID { return uuid.Nil }
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		if fp := LayerFingerprint(layer, empty); fp != uuid.Nil {
			t.Fatalf("empty %s layer fingerprints to %s", layer, fp)
		}
	}
}

func TestPublishedFingerprint(t *testing.T) {
	if got := PublishedFingerprint(BakeHead, uuid.Nil); got != uuid.Nil {
		t.Fatalf("zero fingerprint must stay zero, got %s", got)
	}

	fp := uuid.New()
	published := PublishedFingerprint(BakeHead, fp)
	if published == fp {
		t.Fatal("published fingerprint should differ from the plain one")
	}
	if got := xorUUID(published, MagicHash(BakeHead)); got != fp {
		t.Fatalf("mixing is not an involution: %s != %s", got, fp)
	}
}

func TestMagicHashesDistinct(t *testing.T) {
	seen := make(map[uuid.UUID]BakeLayer)
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		h := MagicHash(layer)
		if h == uuid.Nil {
			t.Fatalf("%s magic hash is zero", layer)
		}
		if prev, ok := seen[h]; ok {
			t.Fatalf("%s and %s share a magic hash", prev, layer)
		}
		seen[h] = layer
	}
}

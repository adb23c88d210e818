package appearance

import "github.com/google/uuid"

func xorUUID(a, b uuid.UUID) uuid.UUID {
	var out uuid.UUID
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// LayerFingerprint XOR-reduces the asset ids worn in the layer's
// composition-table row. A zero result means nothing contributes to the
// layer. Slot order does not matter; XOR is commutative.
func LayerFingerprint(layer BakeLayer, assetID func(WearableSlot) uuid.UUID) uuid.UUID {
	var fp uuid.UUID
	for _, slot := range bakeSlots[layer] {
		if slot == SlotInvalid {
			continue
		}
		fp = xorUUID(fp, assetID(slot))
	}
	return fp
}

// PublishedFingerprint mixes the layer's magic constant into a nonzero
// fingerprint. Zero stays zero so empty layers remain recognizable.
func PublishedFingerprint(layer BakeLayer, fp uuid.UUID) uuid.UUID {
	if fp == uuid.Nil {
		return uuid.Nil
	}
	return xorUUID(fp, magicHashes[layer])
}

// MagicHash exposes the per-layer constant for diagnostics tooling.
func MagicHash(layer BakeLayer) uuid.UUID {
	return magicHashes[layer]
}

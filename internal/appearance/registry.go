package appearance

import (
	"sync"

	"github.com/google/uuid"

	"weft/internal/wire"
)

// Registry is the authoritative slot-to-wearable mapping. All access
// serializes under one mutex; cross-thread readers take Snapshot copies.
type Registry struct {
	mu      sync.Mutex
	records map[WearableSlot]*WearableRecord
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[WearableSlot]*WearableRecord)}
}

// UpdateFromServer applies a wearables update. It reports whether the worn
// set actually changed: an update is a duplicate when every block matches
// the current record and no locally worn slot is missing from it. On change
// the registry contents are replaced atomically; new records are born
// without decoded assets.
func (r *Registry) UpdateFromServer(blocks []wire.WearableBlock) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	incoming := make(map[WearableSlot]wire.WearableBlock, len(blocks))
	for _, block := range blocks {
		slot := WearableSlot(block.SlotIndex)
		if !slot.Valid() || block.AssetID == uuid.Nil {
			continue
		}
		incoming[slot] = block
	}

	changed := len(incoming) != len(r.records)
	if !changed {
		for slot, block := range incoming {
			current, ok := r.records[slot]
			if !ok || current.AssetID != block.AssetID || current.ItemID != block.ItemID {
				changed = true
				break
			}
		}
	}
	if !changed {
		return false
	}

	replacement := make(map[WearableSlot]*WearableRecord, len(incoming))
	for slot, block := range incoming {
		record := &WearableRecord{
			ItemID:   block.ItemID,
			AssetID:  block.AssetID,
			Slot:     slot,
			Category: slot.Category(),
		}
		if current, ok := r.records[slot]; ok && current.AssetID == block.AssetID {
			record.Asset = current.Asset
		}
		replacement[slot] = record
	}
	r.records = replacement
	return true
}

// AssetID returns the asset worn in slot, or uuid.Nil when the slot is
// empty.
func (r *Registry) AssetID(slot WearableSlot) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[slot]; ok {
		return record.AssetID
	}
	return uuid.Nil
}

// IsWorn resolves an inventory item id to the slot wearing it.
func (r *Registry) IsWorn(itemID uuid.UUID) (WearableSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slot, record := range r.records {
		if record.ItemID == itemID {
			return slot, true
		}
	}
	return SlotInvalid, false
}

// SetAsset installs the decoded asset body for a slot, provided the slot
// still wears the same asset the decode was started for.
func (r *Registry) SetAsset(slot WearableSlot, assetID uuid.UUID, asset *WearableAsset) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[slot]
	if !ok || record.AssetID != assetID {
		return false
	}
	record.Asset = asset
	return true
}

// Snapshot returns a deep copy of the registry for use outside the lock.
// Decoded assets are shared by pointer; they are immutable once installed.
func (r *Registry) Snapshot() map[WearableSlot]WearableRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[WearableSlot]WearableRecord, len(r.records))
	for slot, record := range r.records {
		out[slot] = *record
	}
	return out
}

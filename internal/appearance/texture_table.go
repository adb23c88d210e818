package appearance

import "github.com/google/uuid"

// TextureSlot is one cell of the avatar texture layout. Cells are stable
// and repeatedly overwritten; no per-assignment allocation beyond the param
// maps handed in by the owning wearable.
type TextureSlot struct {
	ID           uuid.UUID
	Data         []byte
	AlphaWeights map[string]float32
	ColorWeights map[int]float32
}

// TextureTable is the fixed-size per-face texture state. Writes are
// coordinated by the pipeline orchestrator; concurrent stage workers only
// touch disjoint face indices.
type TextureTable struct {
	slots [FaceCount]TextureSlot
}

func NewTextureTable() *TextureTable {
	return &TextureTable{}
}

// canonicalTexture maps the default-avatar-texture sentinel onto the zero
// UUID so emptiness checks stay uniform.
func canonicalTexture(id uuid.UUID) uuid.UUID {
	if id == DefaultAvatarTexture {
		return uuid.Nil
	}
	return id
}

// SetID assigns a texture id to a face, canonicalizing the default sentinel,
// dropping any decoded bytes, and replacing the per-face param collections.
func (t *TextureTable) SetID(face TextureFace, id uuid.UUID, alpha map[string]float32, color map[int]float32) {
	slot := &t.slots[face]
	slot.ID = canonicalTexture(id)
	slot.Data = nil
	slot.AlphaWeights = alpha
	slot.ColorWeights = color
}

// SetBakedID writes an upload or cache result into a baked face without
// touching the param collections.
func (t *TextureTable) SetBakedID(layer BakeLayer, id uuid.UUID) {
	slot := &t.slots[layer.BakedFace()]
	slot.ID = canonicalTexture(id)
	slot.Data = nil
}

// SetData installs decoded texture bytes for a face.
func (t *TextureTable) SetData(face TextureFace, data []byte) {
	t.slots[face].Data = data
}

// ID returns the face's texture id (zero when unset).
func (t *TextureTable) ID(face TextureFace) uuid.UUID {
	return t.slots[face].ID
}

// Data returns the face's decoded bytes, or nil.
func (t *TextureTable) Data(face TextureFace) []byte {
	return t.slots[face].Data
}

// AlphaWeights returns the face's alpha accumulator.
func (t *TextureTable) AlphaWeights(face TextureFace) map[string]float32 {
	return t.slots[face].AlphaWeights
}

// ColorWeights returns the face's color accumulator.
func (t *TextureTable) ColorWeights(face TextureFace) map[int]float32 {
	return t.slots[face].ColorWeights
}

// ClearBakes zeroes the six baked face ids, forcing a full local rebake.
func (t *TextureTable) ClearBakes() {
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		slot := &t.slots[layer.BakedFace()]
		slot.ID = uuid.Nil
		slot.Data = nil
	}
}

// Overrides collects every face with a nonzero texture id, for the packed
// texture entry.
func (t *TextureTable) Overrides() map[int]uuid.UUID {
	out := make(map[int]uuid.UUID)
	for face := 0; face < FaceCount; face++ {
		if id := t.slots[face].ID; id != uuid.Nil {
			out[face] = id
		}
	}
	return out
}

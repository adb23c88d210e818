package appearance

import "github.com/google/uuid"

// TextureFace indexes one face of the avatar texture layout. Fifteen
// entries are unbaked source faces sourced from worn wearables and six
// carry composited bake results; the two kinds are interleaved in wire
// order (baked faces are 8-11, 19 and 20). Values are stable wire
// integers shared with the texture-entry encoding.
type TextureFace int

const (
	FaceHeadBodypaint TextureFace = iota
	FaceUpperShirt
	FaceLowerPants
	FaceEyesIris
	FaceHair
	FaceUpperBodypaint
	FaceLowerBodypaint
	FaceLowerShoes
	FaceHeadBaked
	FaceUpperBaked
	FaceLowerBaked
	FaceEyesBaked
	FaceLowerSocks
	FaceUpperJacket
	FaceLowerJacket
	FaceUpperGloves
	FaceUpperUndershirt
	FaceLowerUnderpants
	FaceSkirt
	FaceSkirtBaked
	FaceHairBaked
)

// FaceCount is the size of the avatar texture layout.
const FaceCount = 21

var faceNames = [FaceCount]string{
	"head_bodypaint", "upper_shirt", "lower_pants", "eyes_iris", "hair",
	"upper_bodypaint", "lower_bodypaint", "lower_shoes", "head_baked",
	"upper_baked", "lower_baked", "eyes_baked", "lower_socks",
	"upper_jacket", "lower_jacket", "upper_gloves", "upper_undershirt",
	"lower_underpants", "skirt", "skirt_baked", "hair_baked",
}

func (f TextureFace) String() string {
	if f >= 0 && int(f) < FaceCount {
		return faceNames[f]
	}
	return "unknown"
}

// Valid reports whether the face lies inside the texture layout.
func (f TextureFace) Valid() bool {
	return f >= 0 && int(f) < FaceCount
}

// Baked reports whether the face carries a composited bake result.
func (f TextureFace) Baked() bool {
	switch f {
	case FaceHeadBaked, FaceUpperBaked, FaceLowerBaked, FaceEyesBaked,
		FaceSkirtBaked, FaceHairBaked:
		return true
	}
	return false
}

// BakeLayer identifies one composited body region.
type BakeLayer int

const (
	BakeHead BakeLayer = iota
	BakeUpperBody
	BakeLowerBody
	BakeEyes
	BakeSkirt
	BakeHair
)

// BakeLayerCount is the number of composited layers.
const BakeLayerCount = 6

var bakeNames = [BakeLayerCount]string{"head", "upper_body", "lower_body", "eyes", "skirt", "hair"}

func (b BakeLayer) String() string {
	if b >= 0 && int(b) < BakeLayerCount {
		return bakeNames[b]
	}
	return "unknown"
}

var bakedFaces = [BakeLayerCount]TextureFace{
	FaceHeadBaked, FaceUpperBaked, FaceLowerBaked,
	FaceEyesBaked, FaceSkirtBaked, FaceHairBaked,
}

// BakedFace maps a layer to the texture face that stores its result.
func (b BakeLayer) BakedFace() TextureFace {
	if b < 0 || int(b) >= BakeLayerCount {
		return -1
	}
	return bakedFaces[b]
}

// LayerForBakedFace is the inverse of BakedFace; ok is false when the
// face is not a baked face.
func LayerForBakedFace(f TextureFace) (BakeLayer, bool) {
	for layer, face := range bakedFaces {
		if face == f {
			return BakeLayer(layer), true
		}
	}
	return -1, false
}

// bakeSlots is the composition table: the ordered wearable slots whose
// assets contribute to each layer's fingerprint. Unused cells hold
// SlotInvalid.
var bakeSlots = [BakeLayerCount][7]WearableSlot{
	BakeHead:      {SlotShape, SlotSkin, SlotHair, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid},
	BakeUpperBody: {SlotShape, SlotSkin, SlotShirt, SlotJacket, SlotGloves, SlotUndershirt, SlotInvalid},
	BakeLowerBody: {SlotShape, SlotSkin, SlotPants, SlotShoes, SlotSocks, SlotJacket, SlotUnderpants},
	BakeEyes:      {SlotEyes, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid},
	BakeSkirt:     {SlotSkirt, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid},
	BakeHair:      {SlotHair, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid, SlotInvalid},
}

// ContributingSlots returns the worn-slot row of the composition table
// with unused cells stripped.
func (b BakeLayer) ContributingSlots() []WearableSlot {
	row := bakeSlots[b]
	slots := make([]WearableSlot, 0, len(row))
	for _, slot := range row {
		if slot != SlotInvalid {
			slots = append(slots, slot)
		}
	}
	return slots
}

// bakeSourceFaces lists the source texture faces composited into each
// layer, in paint order.
var bakeSourceFaces = [BakeLayerCount][]TextureFace{
	BakeHead:      {FaceHeadBodypaint, FaceHair},
	BakeUpperBody: {FaceUpperBodypaint, FaceUpperUndershirt, FaceUpperShirt, FaceUpperJacket, FaceUpperGloves},
	BakeLowerBody: {FaceLowerBodypaint, FaceLowerUnderpants, FaceLowerSocks, FaceLowerShoes, FaceLowerPants, FaceLowerJacket},
	BakeEyes:      {FaceEyesIris},
	BakeSkirt:     {FaceSkirt},
	BakeHair:      {FaceHair},
}

// SourceFaces returns the faces composited into the layer, in paint order.
func (b BakeLayer) SourceFaces() []TextureFace {
	faces := bakeSourceFaces[b]
	out := make([]TextureFace, len(faces))
	copy(out, faces)
	return out
}

// magicHashes are per-layer constants mixed into cache fingerprints so
// that identical wearable sets produce layer-distinct lookup keys.
var magicHashes = [BakeLayerCount]uuid.UUID{
	BakeHead:      uuid.MustParse("18ded8d6-bcfc-e415-8539-944c0f5ea7a6"),
	BakeUpperBody: uuid.MustParse("338c29e3-3024-4dbb-998d-7c04cf4fa88f"),
	BakeLowerBody: uuid.MustParse("91b4a2c7-1b1a-ba16-9a16-1f8f8dcc1c3f"),
	BakeEyes:      uuid.MustParse("b2cf28af-b840-1071-3c6a-78085d8128b5"),
	BakeSkirt:     uuid.MustParse("ea800387-ea1a-14e0-56cb-24f2022f969a"),
	BakeHair:      uuid.MustParse("0af1ef7c-ad24-11dd-8790-001f5bf833e8"),
}

// DefaultAvatarTexture is the simulator's stand-in texture. The texture
// table stores it as the zero UUID.
var DefaultAvatarTexture = uuid.MustParse("c228d1cf-4b5d-4ba8-84f4-899a0796aa97")

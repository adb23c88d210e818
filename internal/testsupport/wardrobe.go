package testsupport

import (
	"github.com/google/uuid"

	"weft/internal/appearance"
)

// Texture ids referenced by the standard wardrobe. Fixed so tests can
// assert on texture entry contents.
var (
	SkinHeadTexture  = uuid.MustParse("11111111-0000-0000-0000-000000000001")
	SkinUpperTexture = uuid.MustParse("11111111-0000-0000-0000-000000000002")
	SkinLowerTexture = uuid.MustParse("11111111-0000-0000-0000-000000000003")
	EyesIrisTexture  = uuid.MustParse("11111111-0000-0000-0000-000000000004")
	HairTexture      = uuid.MustParse("11111111-0000-0000-0000-000000000005")
	ShirtTexture     = uuid.MustParse("11111111-0000-0000-0000-000000000006")
	PantsTexture     = uuid.MustParse("11111111-0000-0000-0000-000000000007")
)

// ShapeAsset is a body shape with the height-relevant parameters set.
func ShapeAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name: "Test Shape",
		Slot: appearance.SlotShape,
		Params: map[int]float32{
			33:  0.5,
			198: 0.0,
			503: 0.0,
			682: 0.5,
			692: 0.5,
			756: 0.5,
			842: 0.5,
		},
		Textures: map[appearance.TextureFace]uuid.UUID{},
	}
}

// SkinAsset carries the pigment color parameters and the three bodypaint
// textures.
func SkinAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name: "Test Skin",
		Slot: appearance.SlotSkin,
		Params: map[int]float32{
			108: 0.0,
			110: 0.0,
			111: 0.5,
		},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceHeadBodypaint:  SkinHeadTexture,
			appearance.FaceUpperBodypaint: SkinUpperTexture,
			appearance.FaceLowerBodypaint: SkinLowerTexture,
		},
	}
}

// HairAsset references the shared hair texture.
func HairAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name:   "Test Hair",
		Slot:   appearance.SlotHair,
		Params: map[int]float32{},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceHair: HairTexture,
		},
	}
}

// EyesAsset references the iris texture.
func EyesAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name:   "Test Eyes",
		Slot:   appearance.SlotEyes,
		Params: map[int]float32{},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceEyesIris: EyesIrisTexture,
		},
	}
}

// ShirtAsset drives the sleeve alpha mask through parameter 700.
func ShirtAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name: "Test Shirt",
		Slot: appearance.SlotShirt,
		Params: map[int]float32{
			700: 0.6,
			803: 0.9,
		},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceUpperShirt: ShirtTexture,
		},
	}
}

// PantsAsset dresses the lower body.
func PantsAsset() *appearance.WearableAsset {
	return &appearance.WearableAsset{
		Name: "Test Pants",
		Slot: appearance.SlotPants,
		Params: map[int]float32{
			773: 0.7,
		},
		Textures: map[appearance.TextureFace]uuid.UUID{
			appearance.FaceLowerPants: PantsTexture,
		},
	}
}

// Wardrobe is the standard six-piece outfit covering every bake layer
// except Skirt.
func Wardrobe() map[appearance.WearableSlot]*appearance.WearableAsset {
	return map[appearance.WearableSlot]*appearance.WearableAsset{
		appearance.SlotShape: ShapeAsset(),
		appearance.SlotSkin:  SkinAsset(),
		appearance.SlotHair:  HairAsset(),
		appearance.SlotEyes:  EyesAsset(),
		appearance.SlotShirt: ShirtAsset(),
		appearance.SlotPants: PantsAsset(),
	}
}

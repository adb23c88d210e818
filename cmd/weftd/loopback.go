package main

import (
	"github.com/google/uuid"

	"weft/internal/appearance"
	"weft/internal/simloop"
)

// dressLoopback seeds the simulator with a minimal body so a loopback run
// has something to bake: the four body parts plus a shirt and pants.
func dressLoopback(sim *simloop.Simulator) {
	wardrobe := []*appearance.WearableAsset{
		{
			Name: "Loopback Shape",
			Slot: appearance.SlotShape,
			Params: map[int]float32{
				33: 0.5, 682: 0.5, 692: 0.5, 756: 0.5, 842: 0.5,
			},
			Textures: map[appearance.TextureFace]uuid.UUID{},
		},
		{
			Name:   "Loopback Skin",
			Slot:   appearance.SlotSkin,
			Params: map[int]float32{108: 0.0, 110: 0.0, 111: 0.5},
			Textures: map[appearance.TextureFace]uuid.UUID{
				appearance.FaceHeadBodypaint:  uuid.New(),
				appearance.FaceUpperBodypaint: uuid.New(),
				appearance.FaceLowerBodypaint: uuid.New(),
			},
		},
		{
			Name:   "Loopback Hair",
			Slot:   appearance.SlotHair,
			Params: map[int]float32{},
			Textures: map[appearance.TextureFace]uuid.UUID{
				appearance.FaceHair: uuid.New(),
			},
		},
		{
			Name:   "Loopback Eyes",
			Slot:   appearance.SlotEyes,
			Params: map[int]float32{},
			Textures: map[appearance.TextureFace]uuid.UUID{
				appearance.FaceEyesIris: uuid.New(),
			},
		},
		{
			Name:   "Loopback Shirt",
			Slot:   appearance.SlotShirt,
			Params: map[int]float32{700: 0.7, 803: 0.8},
			Textures: map[appearance.TextureFace]uuid.UUID{
				appearance.FaceUpperShirt: uuid.New(),
			},
		},
		{
			Name:   "Loopback Pants",
			Slot:   appearance.SlotPants,
			Params: map[int]float32{773: 0.8},
			Textures: map[appearance.TextureFace]uuid.UUID{
				appearance.FaceLowerPants: uuid.New(),
			},
		},
	}
	for _, asset := range wardrobe {
		sim.Wear(asset.Slot, asset)
	}
}

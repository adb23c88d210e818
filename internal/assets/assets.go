// Package assets declares the capability interfaces the appearance pipeline
// consumes: asset and texture fetch, baked-texture upload, inventory
// traversal, and the bake compositor. Implementations live elsewhere (a live
// transport binding or the loopback simulator).
package assets

import (
	"context"

	"github.com/google/uuid"
)

// Kind distinguishes body parts from garments when requesting wearable
// assets.
type Kind int

const (
	KindUnknown Kind = iota
	KindBodypart
	KindClothing
)

func (k Kind) String() string {
	switch k {
	case KindBodypart:
		return "bodypart"
	case KindClothing:
		return "clothing"
	default:
		return "unknown"
	}
}

// Priority orders competing fetches at the asset service.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

// Fetcher retrieves raw wearable asset bytes by id.
type Fetcher interface {
	Fetch(ctx context.Context, assetID uuid.UUID, kind Kind, priority Priority) ([]byte, error)
}

// TextureFetcher retrieves encoded source texture bytes by id.
type TextureFetcher interface {
	FetchImage(ctx context.Context, textureID uuid.UUID) ([]byte, error)
}

// Uploader submits composited baked bytes and returns the asset id the
// simulator assigned, or uuid.Nil on failure.
type Uploader interface {
	UploadBaked(ctx context.Context, data []byte) (uuid.UUID, error)
}

// Inventory resolves inventory paths and folder contents. Only the calls
// the appearance surface needs are declared.
type Inventory interface {
	ResolvePath(ctx context.Context, path string) (uuid.UUID, error)
	FolderContents(ctx context.Context, folderID uuid.UUID) ([]Item, error)
}

// Item is one inventory entry.
type Item struct {
	ItemID   uuid.UUID
	AssetID  uuid.UUID
	Name     string
	IsFolder bool
}

// BakeInput is one contributing face handed to the compositor. Data is nil
// when the source texture could not be fetched; the compositor substitutes
// its default for that face.
type BakeInput struct {
	Face        int
	Data        []byte
	AlphaWeight float32
}

// TintRGB is the skin tint resolved from the color parameters.
type TintRGB struct {
	R, G, B float32
}

// BakeJob parameterizes one layer composite.
type BakeJob struct {
	Layer      int
	Width      int
	Height     int
	Inputs     []BakeInput
	Tint       TintRGB
	AlphaMasks map[string]float32
	Params     map[int]float32
}

// Baker composites source faces into one baked layer and returns the
// encoded result.
type Baker interface {
	Bake(ctx context.Context, job BakeJob) ([]byte, error)
}

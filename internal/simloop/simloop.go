// Package simloop is an in-process simulator stand-in: it answers the
// pipeline's outbound packets on the same dispatcher it would use against a
// live region and serves generated wearable and texture bytes. The daemon's
// loopback mode and the end-to-end tests run against it.
package simloop

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"weft/internal/appearance"
	"weft/internal/assets"
	"weft/internal/logging"
	"weft/internal/services"
	"weft/internal/wire"
)

// Options configures the simulator.
type Options struct {
	Logger *slog.Logger
	// CacheHits answers every cache query layer with a baked id, reusing
	// the same id whenever a fingerprint repeats, emulating a simulator
	// that still holds the avatar's bakes.
	CacheHits bool
}

// Simulator emulates the region side of the appearance protocol plus the
// asset, texture, and upload services.
type Simulator struct {
	log        *slog.Logger
	cacheHits  bool
	dispatcher *wire.Dispatcher

	mu           sync.Mutex
	worn         []wire.WearableBlock
	wornSerial   uint32
	wearables    map[uuid.UUID][]byte
	textures     map[uuid.UUID][]byte
	failAssets   map[uuid.UUID]bool
	failTextures map[uuid.UUID]bool
	bakeCache    map[uuid.UUID]uuid.UUID
	uploads      map[uuid.UUID][]byte
	published    []*wire.SetAppearance
	queries      []*wire.CachedTextureQuery

	assetFetches   int
	textureFetches int
}

func New(opts Options) *Simulator {
	return &Simulator{
		log:          logging.NewComponentLogger(opts.Logger, "simloop"),
		cacheHits:    opts.CacheHits,
		wearables:    make(map[uuid.UUID][]byte),
		textures:     make(map[uuid.UUID][]byte),
		failAssets:   make(map[uuid.UUID]bool),
		failTextures: make(map[uuid.UUID]bool),
		bakeCache:    make(map[uuid.UUID]uuid.UUID),
		uploads:      make(map[uuid.UUID][]byte),
	}
}

// Attach wires the simulator's inbound deliveries to the dispatcher the
// pipeline listens on.
func (s *Simulator) Attach(d *wire.Dispatcher) { s.dispatcher = d }

// Wear registers a wearable asset on a slot and returns the generated item
// and asset ids. The asset body is served by Fetch.
func (s *Simulator) Wear(slot appearance.WearableSlot, asset *appearance.WearableAsset) (itemID, assetID uuid.UUID) {
	itemID, assetID = uuid.New(), uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wearables[assetID] = appearance.EncodeWearable(asset)
	for i, block := range s.worn {
		if appearance.WearableSlot(block.SlotIndex) == slot {
			s.worn[i] = wire.WearableBlock{SlotIndex: uint8(slot), ItemID: itemID, AssetID: assetID}
			s.wornSerial++
			return itemID, assetID
		}
	}
	s.worn = append(s.worn, wire.WearableBlock{SlotIndex: uint8(slot), ItemID: itemID, AssetID: assetID})
	s.wornSerial++
	return itemID, assetID
}

// ServeAsset installs raw asset bytes under an explicit id, bypassing the
// wearable encoder. Tests use it to serve malformed bodies.
func (s *Simulator) ServeAsset(assetID uuid.UUID, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wearables[assetID] = data
}

// FailAsset makes subsequent fetches of the asset id error.
func (s *Simulator) FailAsset(assetID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAssets[assetID] = true
}

// FailTexture makes subsequent image fetches of the texture id error.
func (s *Simulator) FailTexture(textureID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failTextures[textureID] = true
}

// Published returns every SetAppearance the simulator received.
func (s *Simulator) Published() []*wire.SetAppearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*wire.SetAppearance, len(s.published))
	copy(out, s.published)
	return out
}

// CacheQueries returns every CachedTextureQuery the simulator received.
func (s *Simulator) CacheQueries() []*wire.CachedTextureQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*wire.CachedTextureQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// Uploads returns the number of baked payloads received.
func (s *Simulator) Uploads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

// AssetFetches returns how many wearable bodies were requested.
func (s *Simulator) AssetFetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assetFetches
}

// TextureFetches returns how many texture images were requested.
func (s *Simulator) TextureFetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textureFetches
}

// Send consumes an outbound packet and, where the protocol calls for it,
// dispatches the reply inline before returning.
func (s *Simulator) Send(ctx context.Context, p wire.Packet) error {
	switch msg := p.(type) {
	case *wire.WearablesRequest:
		s.mu.Lock()
		update := &wire.WearablesUpdate{
			AgentID:   msg.AgentID,
			Serial:    s.wornSerial,
			Wearables: append([]wire.WearableBlock(nil), s.worn...),
		}
		s.mu.Unlock()
		s.deliver(update)
	case *wire.CachedTextureQuery:
		s.deliver(s.answerCacheQuery(msg))
	case *wire.SetAppearance:
		s.mu.Lock()
		s.published = append(s.published, msg)
		s.mu.Unlock()
		s.log.Info("appearance received",
			logging.Args(logging.Int(logging.FieldRunSerial, int(msg.Serial)))...)
	default:
		return services.Wrap(services.ErrValidation, "simloop", "send",
			"unsupported outbound packet "+p.Kind().String(), nil)
	}
	return nil
}

func (s *Simulator) deliver(p wire.Packet) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(p)
	}
}

func (s *Simulator) answerCacheQuery(query *wire.CachedTextureQuery) *wire.CachedTextureResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	resp := &wire.CachedTextureResponse{AgentID: query.AgentID, Serial: query.Serial}
	for _, block := range query.Layers {
		answer := wire.CachedTextureBlock{BakedIndex: block.BakedIndex}
		if s.cacheHits {
			id, ok := s.bakeCache[block.Fingerprint]
			if !ok {
				id = uuid.New()
				s.bakeCache[block.Fingerprint] = id
			}
			answer.TextureID = id
			answer.HostName = []byte("loopback.invalid")
		}
		resp.Textures = append(resp.Textures, answer)
	}
	return resp
}

// TriggerRegion delivers an EventQueueRunning, starting an appearance run.
func (s *Simulator) TriggerRegion(regionID uuid.UUID) {
	s.deliver(&wire.EventQueueRunning{RegionID: regionID})
}

// Fetch serves a registered wearable body.
func (s *Simulator) Fetch(ctx context.Context, assetID uuid.UUID, kind assets.Kind, priority assets.Priority) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assetFetches++
	if s.failAssets[assetID] {
		return nil, services.Wrap(services.ErrTransient, "simloop", "fetch", "asset fetch forced to fail", nil)
	}
	data, ok := s.wearables[assetID]
	if !ok {
		return nil, services.Wrap(services.ErrNotFound, "simloop", "fetch", "unknown asset "+assetID.String(), nil)
	}
	return data, nil
}

// FetchImage serves texture bytes, generating a deterministic solid-color
// image for ids that were never explicitly installed.
func (s *Simulator) FetchImage(ctx context.Context, textureID uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textureFetches++
	if s.failTextures[textureID] {
		return nil, services.Wrap(services.ErrTransient, "simloop", "fetch_image", "texture fetch forced to fail", nil)
	}
	if data, ok := s.textures[textureID]; ok {
		return data, nil
	}
	data, err := generateTexture(textureID)
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "simloop", "fetch_image", "generate texture", err)
	}
	s.textures[textureID] = data
	return data, nil
}

// UploadBaked acknowledges a baked payload with a fresh asset id.
func (s *Simulator) UploadBaked(ctx context.Context, data []byte) (uuid.UUID, error) {
	if len(data) == 0 {
		return uuid.Nil, services.Wrap(services.ErrUpload, "simloop", "upload_baked", "empty baked payload", nil)
	}
	id := uuid.New()
	s.mu.Lock()
	s.uploads[id] = data
	s.mu.Unlock()
	return id, nil
}

// generateTexture renders a small solid tile colored from the id bytes.
func generateTexture(id uuid.UUID) ([]byte, error) {
	tile := imaging.New(8, 8, color.NRGBA{R: id[0], G: id[1], B: id[2], A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, tile, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package appearance

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"weft/internal/appearance/vparams"
	"weft/internal/assets"
	"weft/internal/logging"
)

func assetKind(c AssetCategory) assets.Kind {
	switch c {
	case CategoryBodypart:
		return assets.KindBodypart
	case CategoryClothing:
		return assets.KindClothing
	default:
		return assets.KindUnknown
	}
}

// fetchWearables runs stage A: every worn slot without a decoded asset is
// fetched and decoded in parallel, bounded by the download cap. Failures
// downgrade the run to partial; the return value is false in that case.
func (m *Manager) fetchWearables(ctx context.Context) bool {
	snapshot := m.registry.Snapshot()
	pending := make([]WearableRecord, 0, len(snapshot))
	for _, record := range snapshot {
		if record.Asset == nil {
			pending = append(pending, record)
		}
	}
	if len(pending) == 0 {
		return true
	}

	sem := make(chan struct{}, m.downloadSlots)
	var wg sync.WaitGroup
	var failed atomic.Bool
	for _, record := range pending {
		record := record
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if !m.fetchOneWearable(ctx, record) {
				failed.Store(true)
			}
		}()
	}
	wg.Wait()
	return !failed.Load()
}

func (m *Manager) fetchOneWearable(ctx context.Context, record WearableRecord) bool {
	fctx, cancel := context.WithTimeout(ctx, m.wearableFetchTimeout)
	defer cancel()

	data := m.cacheLookup(fctx, record.AssetID)
	if data == nil {
		priority := assets.PriorityNormal
		if record.Category == CategoryBodypart {
			priority = assets.PriorityHigh
		}
		var err error
		data, err = m.fetcher.Fetch(fctx, record.AssetID, assetKind(record.Category), priority)
		if err != nil {
			logging.WarnWithContext(m.log, "wearable fetch failed", "fetch_error",
				logging.String(logging.FieldSlot, record.Slot.String()),
				logging.String(logging.FieldAssetID, record.AssetID.String()),
				logging.Error(err),
				logging.String(logging.FieldImpact, "run downgraded to partial"))
			return false
		}
		m.cacheStore(fctx, record.AssetID, "wearable", data)
	}

	asset, err := DecodeWearable(data)
	if err != nil {
		logging.WarnWithContext(m.log, "wearable decode failed", "decode_error",
			logging.String(logging.FieldSlot, record.Slot.String()),
			logging.String(logging.FieldAssetID, record.AssetID.String()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "run downgraded to partial"))
		return false
	}
	if !m.registry.SetAsset(record.Slot, record.AssetID, asset) {
		// The worn set moved on while the fetch was in flight.
		return true
	}

	alpha, color := buildAccumulators(record.Slot, asset)
	for face, id := range asset.Textures {
		if m.table.ID(face) == canonicalTexture(id) {
			continue
		}
		m.table.SetID(face, id, alpha, color)
	}
	m.log.Debug("wearable decoded",
		logging.Args(
			logging.String(logging.FieldSlot, record.Slot.String()),
			logging.Int("params", len(asset.Params)),
			logging.Int("textures", len(asset.Textures)))...)
	return true
}

// buildAccumulators derives the per-face alpha and color weight maps from a
// decoded asset's parameter values. Skin color is restricted to the three
// pigment parameters; every other slot contributes all of its color params.
// Alpha weights are keyed by the mask file of the first driven parameter
// carrying a usable alpha descriptor.
func buildAccumulators(slot WearableSlot, asset *WearableAsset) (map[string]float32, map[int]float32) {
	catalog := vparams.Get()
	alpha := make(map[string]float32)
	color := make(map[int]float32)
	for id, value := range asset.Params {
		param := catalog.Lookup(id)
		if param == nil {
			continue
		}
		if param.Color != nil {
			if slot != SlotSkin || id == 108 || id == 110 || id == 111 {
				color[id] = value
			}
		}
		for _, driverID := range param.Drivers {
			driver := catalog.Lookup(driverID)
			if driver == nil || driver.Bump || driver.Alpha == nil || driver.Alpha.TGAFile == "" {
				continue
			}
			alpha[driver.Alpha.TGAFile] = value
			break
		}
	}
	return alpha, color
}

// fetchTextures runs stage B: the deduplicated union of source texture ids
// across the pending layers is fetched in parallel and installed into every
// face referencing each id. Missing textures are tolerated; the bake
// substitutes defaults.
func (m *Manager) fetchTextures(ctx context.Context, pending []BakeLayer) bool {
	needed := make(map[uuid.UUID][]TextureFace)
	for _, layer := range pending {
		for _, face := range layer.SourceFaces() {
			id := m.table.ID(face)
			if id == uuid.Nil || m.table.Data(face) != nil {
				continue
			}
			needed[id] = append(needed[id], face)
		}
	}
	if len(needed) == 0 {
		return true
	}

	sem := make(chan struct{}, m.downloadSlots)
	var wg sync.WaitGroup
	var failed atomic.Bool
	for id, faces := range needed {
		id, faces := id, faces
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if !m.fetchOneTexture(ctx, id, faces) {
				failed.Store(true)
			}
		}()
	}
	wg.Wait()
	return !failed.Load()
}

func (m *Manager) fetchOneTexture(ctx context.Context, id uuid.UUID, faces []TextureFace) bool {
	fctx, cancel := context.WithTimeout(ctx, m.textureFetchTimeout)
	defer cancel()

	data := m.cacheLookup(fctx, id)
	if data == nil {
		var err error
		data, err = m.textures.FetchImage(fctx, id)
		if err != nil {
			logging.WarnWithContext(m.log, "texture fetch failed", "fetch_error",
				logging.String(logging.FieldTextureID, id.String()),
				logging.Error(err),
				logging.String(logging.FieldImpact, "bake substitutes default texture"))
			return false
		}
		m.cacheStore(fctx, id, "texture", data)
	}
	for _, face := range faces {
		if m.table.ID(face) != id {
			continue
		}
		m.table.SetData(face, data)
	}
	return true
}

// bakeAndUpload runs stage C: each pending layer is composited and the
// result uploaded, bounded by the upload cap. An upload returning the zero
// id marks the run partial and leaves the baked face empty.
func (m *Manager) bakeAndUpload(ctx context.Context, pending []BakeLayer, snapshot map[WearableSlot]WearableRecord) bool {
	sem := make(chan struct{}, m.uploadSlots)
	var wg sync.WaitGroup
	var failed atomic.Bool
	for _, layer := range pending {
		layer := layer
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if !m.bakeOneLayer(ctx, layer, snapshot) {
				failed.Store(true)
			}
		}()
	}
	wg.Wait()
	return !failed.Load()
}

func (m *Manager) bakeOneLayer(ctx context.Context, layer BakeLayer, snapshot map[WearableSlot]WearableRecord) bool {
	job := m.buildBakeJob(layer, snapshot)
	baked, err := m.baker.Bake(ctx, job)
	if err != nil {
		logging.WarnWithContext(m.log, "bake failed", "bake_error",
			logging.String(logging.FieldLayer, layer.String()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "layer left unbaked"))
		return false
	}

	uctx, cancel := context.WithTimeout(ctx, m.uploadTimeout)
	defer cancel()
	id, err := m.uploader.UploadBaked(uctx, baked)
	if err != nil || id == uuid.Nil {
		logging.WarnWithContext(m.log, "baked upload failed", "upload_error",
			logging.String(logging.FieldLayer, layer.String()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "layer published without a baked texture"))
		return false
	}
	m.table.SetBakedID(layer, id)
	m.log.Info("layer baked",
		logging.Args(
			logging.String(logging.FieldLayer, layer.String()),
			logging.String(logging.FieldTextureID, id.String()),
			logging.Int("bytes", len(baked)))...)
	return true
}

const (
	bakeDimension     = 512
	bakeDimensionEyes = 128
)

// buildBakeJob assembles the compositor input for one layer: the source
// faces in paint order, the merged alpha masks, the layer tint, and the
// parameter values of every contributing asset.
func (m *Manager) buildBakeJob(layer BakeLayer, snapshot map[WearableSlot]WearableRecord) assets.BakeJob {
	dim := bakeDimension
	if layer == BakeEyes {
		dim = bakeDimensionEyes
	}

	faces := layer.SourceFaces()
	inputs := make([]assets.BakeInput, 0, len(faces))
	alphaMasks := make(map[string]float32)
	colorWeights := make(map[int]float32)
	for _, face := range faces {
		inputs = append(inputs, assets.BakeInput{
			Face:        int(face),
			Data:        m.table.Data(face),
			AlphaWeight: 1.0,
		})
		for file, weight := range m.table.AlphaWeights(face) {
			alphaMasks[file] = weight
		}
		for id, weight := range m.table.ColorWeights(face) {
			colorWeights[id] = weight
		}
	}

	params := make(map[int]float32)
	for _, slot := range layer.ContributingSlots() {
		record, ok := snapshot[slot]
		if !ok || record.Asset == nil {
			continue
		}
		for id, value := range record.Asset.Params {
			if _, seen := params[id]; !seen {
				params[id] = value
			}
		}
	}

	return assets.BakeJob{
		Layer:      int(layer),
		Width:      dim,
		Height:     dim,
		Inputs:     inputs,
		Tint:       ResolveTint(colorWeights),
		AlphaMasks: alphaMasks,
		Params:     params,
	}
}

func (m *Manager) cacheLookup(ctx context.Context, id uuid.UUID) []byte {
	if m.cache == nil {
		return nil
	}
	data, ok, err := m.cache.Get(ctx, id)
	if err != nil {
		m.log.Debug("asset cache read failed",
			logging.Args(logging.String(logging.FieldAssetID, id.String()), logging.Error(err))...)
		return nil
	}
	if !ok {
		return nil
	}
	return data
}

func (m *Manager) cacheStore(ctx context.Context, id uuid.UUID, kind string, data []byte) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Put(ctx, id, kind, data); err != nil {
		m.log.Debug("asset cache write failed",
			logging.Args(logging.String(logging.FieldAssetID, id.String()), logging.Error(err))...)
	}
}

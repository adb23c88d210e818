package appearance

import (
	"context"

	"github.com/google/uuid"

	"weft/internal/appearance/vparams"
	"weft/internal/logging"
	"weft/internal/wire"
)

// publish assembles and sends the SetAppearance message: the quantized
// group-zero parameter vector, the packed texture entry, the per-layer
// fingerprint blocks, and the derived body size. The returned serial is the
// freshly incremented set-appearance serial.
func (m *Manager) publish(ctx context.Context, snapshot map[WearableSlot]WearableRecord, fps [BakeLayerCount]uuid.UUID, partial bool) uint32 {
	serial := m.appearanceSerial.Add(1)

	resolve := paramResolver(snapshot)
	vector := VisualParamVector(resolve)
	entry, err := wire.EncodeTextureEntry(DefaultAvatarTexture, m.table.Overrides(), FaceCount)
	if err != nil {
		logging.ErrorWithContext(m.log, "texture entry encode failed", "encode_error",
			logging.Int(logging.FieldRunSerial, int(serial)),
			logging.Error(err))
		return serial
	}

	blocks := make([]wire.WearableDataBlock, BakeLayerCount)
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		blocks[layer] = wire.WearableDataBlock{
			CacheID:      PublishedFingerprint(layer, fps[layer]),
			TextureIndex: uint8(layer.BakedFace()),
		}
	}

	msg := &wire.SetAppearance{
		AgentID:      m.agentID,
		SessionID:    m.sessionID,
		Serial:       serial,
		Size:         wire.Vector3{X: 0.45, Y: 0.60, Z: BodyHeight(resolve)},
		TextureEntry: entry,
		VisualParams: vector,
		WearableData: blocks,
	}
	if err := m.sender.Send(ctx, msg); err != nil {
		logging.ErrorWithContext(m.log, "set appearance send failed", "transport_error",
			logging.Int(logging.FieldRunSerial, int(serial)),
			logging.Error(err))
		return serial
	}
	m.log.Info("appearance published",
		logging.Args(
			logging.Int(logging.FieldRunSerial, int(serial)),
			logging.Bool("partial", partial),
			logging.Int("texture_entry_bytes", len(entry)))...)
	return serial
}

// paramResolver resolves a visual parameter id against the decoded worn
// assets: the first asset carrying the id wins, scanning slots in fixed
// slot order; absent ids fall back to the catalog default.
func paramResolver(snapshot map[WearableSlot]WearableRecord) func(*vparams.Param) float32 {
	return func(p *vparams.Param) float32 {
		for slot := SlotShape; slot < WearableSlot(SlotCount); slot++ {
			record, ok := snapshot[slot]
			if !ok || record.Asset == nil {
				continue
			}
			if v, ok := record.Asset.ParamValue(p.ID); ok {
				return v
			}
		}
		return p.Default
	}
}

// VisualParamVector quantizes the group-zero parameters in canonical order
// into the fixed-length published byte vector.
func VisualParamVector(resolve func(*vparams.Param) float32) []byte {
	published := vparams.Get().GroupZero()
	vector := make([]byte, 0, vparams.PublishedCount)
	for _, p := range published {
		vector = append(vector, p.Quantize(resolve(p)))
	}
	return vector
}

// Body height terms: each is a catalog param id paired with its linear
// coefficient in the avatar height polynomial.
var heightTerms = []struct {
	id    int
	coeff float32
}{
	{692, 0.1918},
	{842, 0.0375},
	{33, 0.12022},
	{682, 0.01117},
	{756, 0.038},
	{198, 0.08},
	{503, 0.07},
}

const heightBase = 1.706

// BodyHeight evaluates the avatar height polynomial over the resolved
// parameter values.
func BodyHeight(resolve func(*vparams.Param) float32) float32 {
	catalog := vparams.Get()
	h := float32(heightBase)
	for _, term := range heightTerms {
		p := catalog.Lookup(term.id)
		if p == nil {
			continue
		}
		h += term.coeff * resolve(p)
	}
	return h
}

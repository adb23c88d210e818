package appearance

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"weft/internal/assetcache"
	"weft/internal/assets"
	"weft/internal/config"
	"weft/internal/logging"
	"weft/internal/wire"
)

// Options bundles the collaborators the Manager drives.
type Options struct {
	Config    *config.Config
	Logger    *slog.Logger
	Sender    wire.Sender
	Assets    assets.Fetcher
	Textures  assets.TextureFetcher
	Uploader  assets.Uploader
	Baker     assets.Baker
	Cache     *assetcache.Store
	AgentID   uuid.UUID
	SessionID uuid.UUID
}

// Manager owns the appearance pipeline: it sequences the five stages,
// holds the single-run flag, and is the only writer of the serial counters.
type Manager struct {
	log       *slog.Logger
	sender    wire.Sender
	fetcher   assets.Fetcher
	textures  assets.TextureFetcher
	uploader  assets.Uploader
	baker     assets.Baker
	cache     *assetcache.Store
	agentID   uuid.UUID
	sessionID uuid.UUID

	registry *Registry
	table    *TextureTable

	downloadSlots        int
	uploadSlots          int
	wearablesTimeout     time.Duration
	wearableFetchTimeout time.Duration
	cacheResponseTimeout time.Duration
	textureFetchTimeout  time.Duration
	uploadTimeout        time.Duration

	running          atomic.Bool
	appearanceSerial atomic.Uint32
	cacheSerial      atomic.Int32

	signalMu        sync.Mutex
	wearablesSignal *signal
	cacheSignal     *signal

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a Manager. The config supplies concurrency caps and timeouts;
// capability interfaces supply every external effect.
func New(opts Options) *Manager {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		_ = def.Normalize()
		cfg = &def
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		log:                  logging.NewComponentLogger(opts.Logger, "appearance"),
		sender:               opts.Sender,
		fetcher:              opts.Assets,
		textures:             opts.Textures,
		uploader:             opts.Uploader,
		baker:                opts.Baker,
		cache:                opts.Cache,
		agentID:              opts.AgentID,
		sessionID:            opts.SessionID,
		registry:             NewRegistry(),
		table:                NewTextureTable(),
		downloadSlots:        cfg.DownloadSlots,
		uploadSlots:          cfg.UploadSlots,
		wearablesTimeout:     time.Duration(cfg.WearablesTimeout) * time.Second,
		wearableFetchTimeout: time.Duration(cfg.WearableFetchTimeout) * time.Second,
		cacheResponseTimeout: time.Duration(cfg.CacheResponseTimeout) * time.Second,
		textureFetchTimeout:  time.Duration(cfg.TextureFetchTimeout) * time.Second,
		uploadTimeout:        time.Duration(cfg.UploadTimeout) * time.Second,
		ctx:                  ctx,
		cancel:               cancel,
	}
}

// Registry exposes the wearable registry for handlers and tests.
func (m *Manager) Registry() *Registry { return m.registry }

// Table exposes the texture table for tests and diagnostics.
func (m *Manager) Table() *TextureTable { return m.table }

// Serial returns the last published set-appearance serial (0 = never).
func (m *Manager) Serial() uint32 { return m.appearanceSerial.Load() }

// Bind registers the Manager's inbound packet handlers.
func (m *Manager) Bind(d *wire.Dispatcher) {
	d.Register(wire.KindWearablesUpdate, func(p wire.Packet) {
		if update, ok := p.(*wire.WearablesUpdate); ok {
			m.HandleWearablesUpdate(update)
		}
	})
	d.Register(wire.KindCachedTextureResponse, func(p wire.Packet) {
		if resp, ok := p.(*wire.CachedTextureResponse); ok {
			m.HandleCachedTextureResponse(resp)
		}
	})
	d.Register(wire.KindEventQueueRunning, func(p wire.Packet) {
		if ev, ok := p.(*wire.EventQueueRunning); ok {
			m.HandleEventQueueRunning(ev)
		}
	})
}

// Close stops accepting runs and waits for the active one to finish.
func (m *Manager) Close() {
	m.cancel()
	m.wg.Wait()
}

// HandleWearablesUpdate applies the server's worn set. Duplicates are
// discarded without waking the pipeline.
func (m *Manager) HandleWearablesUpdate(update *wire.WearablesUpdate) {
	if !m.registry.UpdateFromServer(update.Wearables) {
		m.log.Debug("duplicate wearables update discarded",
			logging.Args(logging.Int("blocks", len(update.Wearables)))...)
		return
	}
	m.log.Info("wearables received",
		logging.Args(logging.Int("blocks", len(update.Wearables)))...)
	m.signalMu.Lock()
	sig := m.wearablesSignal
	m.signalMu.Unlock()
	if sig != nil {
		sig.fire()
	}
}

// HandleCachedTextureResponse fills baked face ids for cache hits and
// releases the waiting pipeline. Responses for stale serials are dropped.
func (m *Manager) HandleCachedTextureResponse(resp *wire.CachedTextureResponse) {
	if resp.Serial != m.cacheSerial.Load() {
		m.log.Debug("stale cache response dropped",
			logging.Args(logging.Int("serial", int(resp.Serial)))...)
		return
	}
	hits := 0
	for _, block := range resp.Textures {
		layer := BakeLayer(block.BakedIndex)
		if layer < 0 || layer >= BakeLayerCount {
			continue
		}
		if len(block.HostName) > 0 {
			m.log.Debug("bake host reported",
				logging.Args(logging.String(logging.FieldLayer, layer.String()),
					logging.String("host", string(block.HostName)))...)
		}
		if block.TextureID == uuid.Nil {
			continue
		}
		m.table.SetBakedID(layer, block.TextureID)
		hits++
	}
	m.log.Info("cache response",
		logging.Args(logging.Int("blocks", len(resp.Textures)), logging.Int("hits", hits))...)
	m.signalMu.Lock()
	sig := m.cacheSignal
	m.signalMu.Unlock()
	if sig != nil {
		sig.fire()
	}
}

// HandleEventQueueRunning starts a fresh appearance run for the region. A
// run already in flight absorbs the trigger.
func (m *Manager) HandleEventQueueRunning(ev *wire.EventQueueRunning) {
	m.log.Info("event queue running",
		logging.Args(logging.String(logging.FieldRegionID, ev.RegionID.String()))...)
	m.RequestSetAppearance(false)
}

// RequestSetAppearance starts one pipeline run on a background worker. It
// never blocks: when a run is already active the call returns false after a
// warning.
func (m *Manager) RequestSetAppearance(forceRebake bool) bool {
	if !m.running.CompareAndSwap(false, true) {
		logging.WarnWithContext(m.log, "appearance run already in progress", "duplicate_run",
			logging.Bool("force_rebake", forceRebake))
		return false
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.running.Store(false)
		m.run(m.ctx, forceRebake)
	}()
	return true
}

func (m *Manager) run(ctx context.Context, forceRebake bool) {
	started := time.Now()
	m.log.Info("appearance run started",
		logging.Args(logging.Bool("force_rebake", forceRebake))...)

	if forceRebake {
		m.table.ClearBakes()
	}

	firstRun := m.appearanceSerial.Load() == 0
	if firstRun {
		if !m.awaitWearables(ctx) {
			logging.ErrorWithContext(m.log, "wearables enumeration timed out", "wearables_timeout",
				logging.Duration("waited", m.wearablesTimeout))
			return
		}
	}

	partial := !m.fetchWearables(ctx)

	snapshot := m.registry.Snapshot()
	fingerprints := m.layerFingerprints(snapshot)

	if firstRun && !forceRebake {
		m.negotiateCache(ctx, fingerprints, snapshot)
	}

	pending := m.pendingBakes(fingerprints)
	if len(pending) > 0 {
		if !m.fetchTextures(ctx, pending) {
			partial = true
		}
		if !m.bakeAndUpload(ctx, pending, snapshot) {
			partial = true
		}
	}

	serial := m.publish(ctx, snapshot, fingerprints, partial)
	m.log.Info("appearance run finished",
		logging.Args(
			logging.Int(logging.FieldRunSerial, int(serial)),
			logging.Bool("partial", partial),
			logging.Int("pending_bakes", len(pending)),
			logging.Duration("elapsed", time.Since(started)))...)
}

// awaitWearables asks the simulator for the worn set and blocks until the
// update lands or the timeout lapses.
func (m *Manager) awaitWearables(ctx context.Context) bool {
	sig := newSignal()
	m.signalMu.Lock()
	m.wearablesSignal = sig
	m.signalMu.Unlock()
	defer func() {
		m.signalMu.Lock()
		m.wearablesSignal = nil
		m.signalMu.Unlock()
	}()

	request := &wire.WearablesRequest{AgentID: m.agentID, SessionID: m.sessionID}
	if err := m.sender.Send(ctx, request); err != nil {
		logging.ErrorWithContext(m.log, "wearables request failed", "transport_error",
			logging.Error(err))
		return false
	}
	if len(m.registry.Snapshot()) > 0 {
		return true
	}
	return sig.wait(ctx, m.wearablesTimeout)
}

// layerFingerprints computes the plain per-layer XOR reductions once per
// run; the cache query and the final publish both read this copy, which is
// what keeps them bit-identical.
func (m *Manager) layerFingerprints(snapshot map[WearableSlot]WearableRecord) [BakeLayerCount]uuid.UUID {
	assetID := func(slot WearableSlot) uuid.UUID {
		if record, ok := snapshot[slot]; ok {
			return record.AssetID
		}
		return uuid.Nil
	}
	var fps [BakeLayerCount]uuid.UUID
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		fps[layer] = LayerFingerprint(layer, assetID)
	}
	return fps
}

// negotiateCache submits the cache query and waits for the response. Empty
// layers are omitted; an entirely empty query is suppressed. Timeouts
// degrade to "every layer missed".
func (m *Manager) negotiateCache(ctx context.Context, fps [BakeLayerCount]uuid.UUID, snapshot map[WearableSlot]WearableRecord) {
	_, skirtWorn := snapshot[SlotSkirt]
	blocks := make([]wire.CacheQueryBlock, 0, BakeLayerCount)
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		if fps[layer] == uuid.Nil {
			continue
		}
		if layer == BakeSkirt && !skirtWorn {
			continue
		}
		blocks = append(blocks, wire.CacheQueryBlock{
			Fingerprint: PublishedFingerprint(layer, fps[layer]),
			BakedIndex:  uint8(layer),
		})
	}
	if len(blocks) == 0 {
		m.log.Debug("cache query suppressed: no populated layers")
		return
	}

	sig := newSignal()
	m.signalMu.Lock()
	m.cacheSignal = sig
	m.signalMu.Unlock()
	defer func() {
		m.signalMu.Lock()
		m.cacheSignal = nil
		m.signalMu.Unlock()
	}()

	serial := m.cacheSerial.Add(1)
	query := &wire.CachedTextureQuery{
		AgentID:   m.agentID,
		SessionID: m.sessionID,
		Serial:    serial,
		Layers:    blocks,
	}
	if err := m.sender.Send(ctx, query); err != nil {
		logging.WarnWithContext(m.log, "cache query send failed", "transport_error",
			logging.Error(err),
			logging.String(logging.FieldImpact, "all layers treated as cache misses"))
		return
	}
	if !sig.wait(ctx, m.cacheResponseTimeout) {
		logging.WarnWithContext(m.log, "cache response timed out", "cache_timeout",
			logging.Duration("waited", m.cacheResponseTimeout),
			logging.String(logging.FieldImpact, "all layers treated as cache misses"))
	}
}

// pendingBakes lists the populated layers whose baked face still has no
// texture id after negotiation.
func (m *Manager) pendingBakes(fps [BakeLayerCount]uuid.UUID) []BakeLayer {
	pending := make([]BakeLayer, 0, BakeLayerCount)
	for layer := BakeLayer(0); layer < BakeLayerCount; layer++ {
		if fps[layer] == uuid.Nil {
			continue
		}
		if m.table.ID(layer.BakedFace()) != uuid.Nil {
			continue
		}
		pending = append(pending, layer)
	}
	return pending
}

package wire

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// PacketKind discriminates the protocol messages the pipeline handles.
type PacketKind int

const (
	KindWearablesUpdate PacketKind = iota
	KindCachedTextureResponse
	KindEventQueueRunning
	KindWearablesRequest
	KindCachedTextureQuery
	KindSetAppearance
)

var kindNames = [...]string{
	"wearables_update", "cached_texture_response", "event_queue_running",
	"wearables_request", "cached_texture_query", "set_appearance",
}

func (k PacketKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Packet is implemented by every protocol message.
type Packet interface {
	Kind() PacketKind
}

// Vector3 is a right-handed region-space vector.
type Vector3 struct {
	X, Y, Z float32
}

// WearableBlock is one slot assertion inside a WearablesUpdate.
type WearableBlock struct {
	SlotIndex uint8
	ItemID    uuid.UUID
	AssetID   uuid.UUID
}

// WearablesUpdate is the simulator's authoritative statement of the worn
// set. Slots absent from the block list are implicitly cleared.
type WearablesUpdate struct {
	AgentID   uuid.UUID
	Serial    uint32
	Wearables []WearableBlock
}

func (*WearablesUpdate) Kind() PacketKind { return KindWearablesUpdate }

// CachedTextureBlock is one per-layer answer inside a CachedTextureResponse.
// HostName names the bake host that stored the texture; it is parsed and
// retained but nothing acts on it.
type CachedTextureBlock struct {
	BakedIndex uint8
	TextureID  uuid.UUID
	HostName   []byte
}

// CachedTextureResponse answers a CachedTextureQuery block-for-block.
type CachedTextureResponse struct {
	AgentID  uuid.UUID
	Serial   int32
	Textures []CachedTextureBlock
}

func (*CachedTextureResponse) Kind() PacketKind { return KindCachedTextureResponse }

// EventQueueRunning signals that the region's event channel is live; it
// triggers a fresh appearance run for the current region.
type EventQueueRunning struct {
	RegionID uuid.UUID
}

func (*EventQueueRunning) Kind() PacketKind { return KindEventQueueRunning }

// WearablesRequest asks the simulator to enumerate the worn set.
type WearablesRequest struct {
	AgentID   uuid.UUID
	SessionID uuid.UUID
}

func (*WearablesRequest) Kind() PacketKind { return KindWearablesRequest }

// CacheQueryBlock carries one layer fingerprint in a CachedTextureQuery.
type CacheQueryBlock struct {
	Fingerprint uuid.UUID
	BakedIndex  uint8
}

// CachedTextureQuery asks the simulator which baked layers it already has.
type CachedTextureQuery struct {
	AgentID   uuid.UUID
	SessionID uuid.UUID
	Serial    int32
	Layers    []CacheQueryBlock
}

func (*CachedTextureQuery) Kind() PacketKind { return KindCachedTextureQuery }

// WearableDataBlock publishes one layer's cache fingerprint alongside the
// baked face it fills.
type WearableDataBlock struct {
	CacheID      uuid.UUID
	TextureIndex uint8
}

// SetAppearance atomically publishes the avatar's new look.
type SetAppearance struct {
	AgentID      uuid.UUID
	SessionID    uuid.UUID
	Serial       uint32
	Size         Vector3
	TextureEntry []byte
	VisualParams []byte
	WearableData []WearableDataBlock
}

func (*SetAppearance) Kind() PacketKind { return KindSetAppearance }

// Sender pushes an outbound packet onto the transport.
type Sender interface {
	Send(ctx context.Context, p Packet) error
}

// Handler consumes one inbound packet. Handlers run on whatever goroutine
// the transport surfaces and must not block.
type Handler func(Packet)

// Dispatcher fans inbound packets out to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[PacketKind][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[PacketKind][]Handler)}
}

// Register adds a handler for the given packet kind.
func (d *Dispatcher) Register(kind PacketKind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch delivers p to every handler registered for its kind.
func (d *Dispatcher) Dispatch(p Packet) {
	d.mu.RLock()
	handlers := d.handlers[p.Kind()]
	d.mu.RUnlock()
	for _, h := range handlers {
		h(p)
	}
}

package wire

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

const testFaceCount = 21

func TestTextureEntryRoundTrip(t *testing.T) {
	defaultID := uuid.MustParse("c228d1cf-4b5d-4ba8-84f4-899a0796aa97")
	shared := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	overrides := map[int]uuid.UUID{
		0:  uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"),
		8:  shared,
		20: shared,
		13: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"),
	}

	encoded, err := EncodeTextureEntry(defaultID, overrides, testFaceCount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	gotDefault, gotOverrides, err := DecodeTextureEntry(encoded, testFaceCount)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gotDefault != defaultID {
		t.Fatalf("default id mismatch: %s", gotDefault)
	}
	if len(gotOverrides) != len(overrides) {
		t.Fatalf("override count mismatch: got %d want %d", len(gotOverrides), len(overrides))
	}
	for face, id := range overrides {
		if gotOverrides[face] != id {
			t.Errorf("face %d: got %s want %s", face, gotOverrides[face], id)
		}
	}
}

func TestTextureEntrySharedIDGroupsFaces(t *testing.T) {
	defaultID := uuid.Nil
	shared := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	overrides := map[int]uuid.UUID{3: shared, 4: shared, 5: shared}
	encoded, err := EncodeTextureEntry(defaultID, overrides, testFaceCount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// One group: bitfield (1 byte for faces 3..5) + 16-byte id, plus 16-byte
	// default and the terminator.
	if want := 16 + 1 + 16 + 1; len(encoded) != want {
		t.Fatalf("expected %d bytes for one shared group, got %d", want, len(encoded))
	}
}

func TestTextureEntryDefaultOnly(t *testing.T) {
	defaultID := uuid.MustParse("c228d1cf-4b5d-4ba8-84f4-899a0796aa97")
	encoded, err := EncodeTextureEntry(defaultID, nil, testFaceCount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(encoded[:16], defaultID[:]) || encoded[16] != 0 || len(encoded) != 17 {
		t.Fatalf("unexpected default-only encoding: %x", encoded)
	}
}

func TestTextureEntryOverrideEqualToDefaultElided(t *testing.T) {
	defaultID := uuid.MustParse("c228d1cf-4b5d-4ba8-84f4-899a0796aa97")
	encoded, err := EncodeTextureEntry(defaultID, map[int]uuid.UUID{2: defaultID}, testFaceCount)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(encoded) != 17 {
		t.Fatalf("override equal to default should be elided, got %d bytes", len(encoded))
	}
}

func TestTextureEntryRejectsBadInput(t *testing.T) {
	if _, err := EncodeTextureEntry(uuid.Nil, map[int]uuid.UUID{21: uuid.Nil}, testFaceCount); err == nil {
		t.Fatal("expected face range error")
	}
	if _, _, err := DecodeTextureEntry([]byte{1, 2, 3}, testFaceCount); err == nil {
		t.Fatal("expected short-buffer error")
	}
	bad := append(make([]byte, 16), 0x80, 0x80)
	if _, _, err := DecodeTextureEntry(bad, testFaceCount); err == nil {
		t.Fatal("expected unterminated bitfield error")
	}
}

func TestFaceBitfieldHighFaces(t *testing.T) {
	// Face 20 needs a three-byte bitfield (bit 20 > 14 bits of two bytes).
	mask := uint64(1) << 20
	encoded := appendFaceBitfield(nil, mask)
	if len(encoded) != 3 {
		t.Fatalf("expected 3-byte bitfield for face 20, got %d", len(encoded))
	}
	got, n, err := readFaceBitfield(encoded)
	if err != nil || n != 3 || got != mask {
		t.Fatalf("round trip failed: got %d n %d err %v", got, n, err)
	}
}

func TestDispatcherRoutesByKind(t *testing.T) {
	d := NewDispatcher()
	var got []PacketKind
	d.Register(KindWearablesUpdate, func(p Packet) { got = append(got, p.Kind()) })
	d.Register(KindEventQueueRunning, func(p Packet) { got = append(got, p.Kind()) })
	d.Dispatch(&WearablesUpdate{})
	d.Dispatch(&EventQueueRunning{})
	d.Dispatch(&CachedTextureResponse{})
	if len(got) != 2 || got[0] != KindWearablesUpdate || got[1] != KindEventQueueRunning {
		t.Fatalf("unexpected dispatch order: %v", got)
	}
}

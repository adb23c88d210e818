package wire

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// The packed texture-entry layout is a 16-byte default texture id followed
// by exception groups. Each group is a face bitfield (7 bits per byte, high
// bit set on all but the last byte, most significant bits first) and the
// 16-byte texture id shared by those faces. A zero bitfield byte terminates
// the list.

// EncodeTextureEntry packs a default id plus per-face overrides. Overrides
// equal to the default are elided. faceCount bounds the valid face indices.
func EncodeTextureEntry(defaultID uuid.UUID, overrides map[int]uuid.UUID, faceCount int) ([]byte, error) {
	masks := make(map[uuid.UUID]uint64)
	for face, id := range overrides {
		if face < 0 || face >= faceCount {
			return nil, fmt.Errorf("texture entry: face %d out of range", face)
		}
		if id == defaultID {
			continue
		}
		masks[id] |= 1 << uint(face)
	}

	ids := make([]uuid.UUID, 0, len(masks))
	for id := range masks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return masks[ids[i]] < masks[ids[j]] })

	out := make([]byte, 0, 16+len(ids)*20+1)
	out = append(out, defaultID[:]...)
	for _, id := range ids {
		out = appendFaceBitfield(out, masks[id])
		out = append(out, id[:]...)
	}
	out = append(out, 0)
	return out, nil
}

// DecodeTextureEntry unpacks an encoded texture entry back into its default
// id and per-face override map.
func DecodeTextureEntry(data []byte, faceCount int) (uuid.UUID, map[int]uuid.UUID, error) {
	if len(data) < 17 {
		return uuid.Nil, nil, fmt.Errorf("texture entry: %d bytes is too short", len(data))
	}
	var defaultID uuid.UUID
	copy(defaultID[:], data[:16])
	rest := data[16:]

	overrides := make(map[int]uuid.UUID)
	for {
		mask, n, err := readFaceBitfield(rest)
		if err != nil {
			return uuid.Nil, nil, err
		}
		rest = rest[n:]
		if mask == 0 {
			break
		}
		if len(rest) < 16 {
			return uuid.Nil, nil, fmt.Errorf("texture entry: truncated id after bitfield")
		}
		var id uuid.UUID
		copy(id[:], rest[:16])
		rest = rest[16:]
		for face := 0; face < faceCount; face++ {
			if mask&(1<<uint(face)) != 0 {
				overrides[face] = id
			}
		}
	}
	return defaultID, overrides, nil
}

func appendFaceBitfield(dst []byte, mask uint64) []byte {
	if mask == 0 {
		return append(dst, 0)
	}
	var chunks []byte
	for mask != 0 {
		chunks = append(chunks, byte(mask&0x7f))
		mask >>= 7
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		b := chunks[i]
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

func readFaceBitfield(data []byte) (uint64, int, error) {
	var mask uint64
	for i := 0; i < len(data); i++ {
		b := data[i]
		mask = mask<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return mask, i + 1, nil
		}
		if i >= 9 {
			break
		}
	}
	return 0, 0, fmt.Errorf("texture entry: unterminated face bitfield")
}

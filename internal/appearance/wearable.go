package appearance

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"weft/internal/services"
)

// WearableRecord is one worn slot: the inventory item, its asset, and the
// decoded asset body once the fetch completes.
type WearableRecord struct {
	ItemID   uuid.UUID
	AssetID  uuid.UUID
	Slot     WearableSlot
	Category AssetCategory
	Asset    *WearableAsset
}

// WearableAsset is the decoded body of a wearable: visual parameter values
// and per-face texture references.
type WearableAsset struct {
	Name     string
	Slot     WearableSlot
	Params   map[int]float32
	Textures map[TextureFace]uuid.UUID
}

// ParamValue returns the asset's value for a parameter id.
func (a *WearableAsset) ParamValue(id int) (float32, bool) {
	if a == nil {
		return 0, false
	}
	v, ok := a.Params[id]
	return v, ok
}

const wearableHeader = "LLWearable"

// DecodeWearable parses the line-oriented wearable asset body. Permission
// and sale blocks are brace-delimited and skipped wholesale.
func DecodeWearable(data []byte) (*WearableAsset, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, decodeErr("header", "empty asset", nil)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 3 || header[0] != wearableHeader || header[1] != "version" {
		return nil, decodeErr("header", fmt.Sprintf("unexpected header %q", scanner.Text()), nil)
	}
	if !scanner.Scan() {
		return nil, decodeErr("name", "truncated after header", nil)
	}
	asset := &WearableAsset{
		Name:     strings.TrimSpace(scanner.Text()),
		Slot:     SlotInvalid,
		Params:   make(map[int]float32),
		Textures: make(map[TextureFace]uuid.UUID),
	}

	depth := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, "{"):
			depth++
			continue
		case line == "}":
			if depth > 0 {
				depth--
			}
			continue
		case depth > 0:
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "type":
			if len(fields) < 2 {
				return nil, decodeErr("type", "missing value", nil)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, decodeErr("type", fields[1], err)
			}
			slot := WearableSlot(n)
			if !slot.Valid() {
				return nil, decodeErr("type", fmt.Sprintf("slot %d out of range", n), nil)
			}
			asset.Slot = slot
		case "parameters":
			count, err := sectionCount(fields)
			if err != nil {
				return nil, decodeErr("parameters", line, err)
			}
			for i := 0; i < count; i++ {
				id, value, err := scanParamLine(scanner)
				if err != nil {
					return nil, err
				}
				asset.Params[id] = value
			}
		case "textures":
			count, err := sectionCount(fields)
			if err != nil {
				return nil, decodeErr("textures", line, err)
			}
			for i := 0; i < count; i++ {
				face, id, err := scanTextureLine(scanner)
				if err != nil {
					return nil, err
				}
				asset.Textures[face] = id
			}
		case "permissions", "sale_info":
			// Block opener follows on the next line.
		default:
			// Unknown directives are tolerated for forward compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, decodeErr("scan", "read asset body", err)
	}
	if asset.Slot == SlotInvalid {
		return nil, decodeErr("type", "missing wearable type", nil)
	}
	return asset, nil
}

// EncodeWearable renders an asset back into the wire body format. The
// loopback simulator serves these to the pipeline.
func EncodeWearable(asset *WearableAsset) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s version 22\n", wearableHeader)
	fmt.Fprintf(&b, "%s\n\n", asset.Name)
	b.WriteString("\tpermissions 0\n\t{\n\t\tbase_mask\t7fffffff\n\t\towner_mask\t7fffffff\n\t}\n")
	b.WriteString("\tsale_info 0\n\t{\n\t\tsale_type\tnot\n\t\tsale_price\t10\n\t}\n")
	fmt.Fprintf(&b, "type %d\n", int(asset.Slot))

	paramIDs := make([]int, 0, len(asset.Params))
	for id := range asset.Params {
		paramIDs = append(paramIDs, id)
	}
	sort.Ints(paramIDs)
	fmt.Fprintf(&b, "parameters %d\n", len(paramIDs))
	for _, id := range paramIDs {
		fmt.Fprintf(&b, "%d %s\n", id, strconv.FormatFloat(float64(asset.Params[id]), 'g', -1, 32))
	}

	faces := make([]int, 0, len(asset.Textures))
	for face := range asset.Textures {
		faces = append(faces, int(face))
	}
	sort.Ints(faces)
	fmt.Fprintf(&b, "textures %d\n", len(faces))
	for _, face := range faces {
		fmt.Fprintf(&b, "%d %s\n", face, asset.Textures[TextureFace(face)])
	}
	return []byte(b.String())
}

func sectionCount(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("missing count")
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return 0, fmt.Errorf("bad count %q", fields[1])
	}
	return count, nil
}

func scanParamLine(scanner *bufio.Scanner) (int, float32, error) {
	if !scanner.Scan() {
		return 0, 0, decodeErr("parameters", "truncated parameter list", nil)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return 0, 0, decodeErr("parameters", scanner.Text(), nil)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, decodeErr("parameters", fields[0], err)
	}
	value, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, decodeErr("parameters", fields[1], err)
	}
	return id, float32(value), nil
}

func scanTextureLine(scanner *bufio.Scanner) (TextureFace, uuid.UUID, error) {
	if !scanner.Scan() {
		return 0, uuid.Nil, decodeErr("textures", "truncated texture list", nil)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return 0, uuid.Nil, decodeErr("textures", scanner.Text(), nil)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, uuid.Nil, decodeErr("textures", fields[0], err)
	}
	face := TextureFace(n)
	if !face.Valid() {
		return 0, uuid.Nil, decodeErr("textures", fmt.Sprintf("face %d out of range", n), nil)
	}
	id, err := uuid.Parse(fields[1])
	if err != nil {
		return 0, uuid.Nil, decodeErr("textures", fields[1], err)
	}
	return face, id, nil
}

func decodeErr(section, detail string, err error) error {
	return services.Wrap(services.ErrDecode, "wearable", section, detail, err)
}

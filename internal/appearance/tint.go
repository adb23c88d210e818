package appearance

import (
	"sort"

	"weft/internal/appearance/vparams"
	"weft/internal/assets"
)

// ResolveTint folds the accumulated color parameter weights into one RGB
// tint for a bake layer. Parameters apply in ascending id order so the
// result is deterministic regardless of accumulator iteration order.
func ResolveTint(weights map[int]float32) assets.TintRGB {
	tint := assets.TintRGB{R: 1, G: 1, B: 1}
	if len(weights) == 0 {
		return tint
	}
	catalog := vparams.Get()
	ids := make([]int, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		param := catalog.Lookup(id)
		if param == nil || param.Color == nil {
			continue
		}
		value := param.Clamp(weights[id])
		span := param.Max - param.Min
		t := float32(0)
		if span > 0 {
			t = (value - param.Min) / span
		}
		r, g, b := rampColor(param.Color.Colors, t)
		switch param.Color.Op {
		case vparams.ColorAdd:
			tint.R = clamp01(tint.R + r*t)
			tint.G = clamp01(tint.G + g*t)
			tint.B = clamp01(tint.B + b*t)
		case vparams.ColorMultiply:
			tint.R *= lerp(1, r, t)
			tint.G *= lerp(1, g, t)
			tint.B *= lerp(1, b, t)
		case vparams.ColorBlend:
			if len(param.Color.Colors) > 1 {
				// Multi-stop ramps select an absolute color.
				tint.R, tint.G, tint.B = r, g, b
			} else {
				tint.R = lerp(tint.R, r, t)
				tint.G = lerp(tint.G, g, t)
				tint.B = lerp(tint.B, b, t)
			}
		}
	}
	return tint
}

// rampColor interpolates a color ramp at normalized position t in [0, 1].
func rampColor(colors []vparams.RGBA, t float32) (r, g, b float32) {
	switch len(colors) {
	case 0:
		return 1, 1, 1
	case 1:
		c := colors[0]
		return channel(c.R), channel(c.G), channel(c.B)
	}
	pos := t * float32(len(colors)-1)
	idx := int(pos)
	if idx >= len(colors)-1 {
		idx = len(colors) - 2
		pos = float32(len(colors) - 1)
	}
	frac := pos - float32(idx)
	lo, hi := colors[idx], colors[idx+1]
	return lerp(channel(lo.R), channel(hi.R), frac),
		lerp(channel(lo.G), channel(hi.G), frac),
		lerp(channel(lo.B), channel(hi.B), frac)
}

func channel(v uint8) float32 { return float32(v) / 255.0 }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package vparams carries the process-wide visual parameter catalog: the
// read-only reference table describing every tunable aspect of the avatar
// mesh, its skin coloring, and its alpha masking.
//
// Only group-0 parameters are published on the wire; driven and internal
// parameters live in other groups and influence baking locally. The
// catalog is initialized once and shared by reference.
package vparams

import (
	"sort"
	"sync"
)

// AlphaSpec describes the alpha mask a parameter contributes to a bake.
type AlphaSpec struct {
	TGAFile       string
	SkipIfZero    bool
	MultiplyBlend bool
	Domain        float32
}

// ColorOp selects how a color parameter combines with the layer below.
type ColorOp int

const (
	ColorAdd ColorOp = iota
	ColorMultiply
	ColorBlend
)

// RGBA is a plain 8-bit color tuple.
type RGBA struct {
	R, G, B, A uint8
}

// ColorSpec describes the color ramp a parameter interpolates across.
type ColorSpec struct {
	Op     ColorOp
	Colors []RGBA
}

// Param is one catalog entry. Entries are immutable after catalog load.
type Param struct {
	ID      int
	Name    string
	Group   int
	Min     float32
	Max     float32
	Default float32
	Color   *ColorSpec
	Drivers []int
	Alpha   *AlphaSpec
	Bump    bool
}

// PublishedCount is the number of group-0 parameters, which is also the
// fixed length of the published visual-param byte vector.
const PublishedCount = 218

var (
	catalogOnce sync.Once
	catalog     *Catalog
)

// Catalog indexes the parameter table by id and caches the canonical
// (ascending id) publish order.
type Catalog struct {
	byID      map[int]*Param
	ordered   []*Param
	groupZero []*Param
}

// Get returns the shared catalog, building the index on first use.
func Get() *Catalog {
	catalogOnce.Do(func() {
		c := &Catalog{byID: make(map[int]*Param, len(paramTable))}
		for i := range paramTable {
			p := &paramTable[i]
			c.byID[p.ID] = p
			c.ordered = append(c.ordered, p)
		}
		sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })
		for _, p := range c.ordered {
			if p.Group == 0 {
				c.groupZero = append(c.groupZero, p)
			}
		}
		catalog = c
	})
	return catalog
}

// Lookup returns the parameter with the given id, or nil.
func (c *Catalog) Lookup(id int) *Param {
	return c.byID[id]
}

// All returns every parameter in canonical ascending-id order.
func (c *Catalog) All() []*Param {
	return c.ordered
}

// GroupZero returns the published parameters in canonical order.
func (c *Catalog) GroupZero() []*Param {
	return c.groupZero
}

// Clamp bounds a value to the parameter's range.
func (p *Param) Clamp(v float32) float32 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Quantize maps a value in [Min, Max] onto a single wire byte.
func (p *Param) Quantize(v float32) byte {
	v = p.Clamp(v)
	span := p.Max - p.Min
	if span <= 0 {
		return 0
	}
	scaled := (v - p.Min) / span * 255.0
	b := int(scaled + 0.5)
	if b < 0 {
		b = 0
	}
	if b > 255 {
		b = 255
	}
	return byte(b)
}

// Dequantize maps a wire byte back onto the parameter's range.
func (p *Param) Dequantize(b byte) float32 {
	return p.Clamp(p.Min + (p.Max-p.Min)*float32(b)/255.0)
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "sort"

// HmtxRange is a single horizontal-advance range [Lo, Hi] -> W, in
// 1000-unit em design space.
type HmtxRange struct {
	Lo, Hi uint32
	W      int
}

// VmtxRange is a single vertical-advance range with an additional glyph
// origin (X, Y), used only when WritingMode == 1.
type VmtxRange struct {
	Lo, Hi uint32
	W      int
	X, Y   int
}

// MetricTable is a sorted, range-compressed advance-width table as
// described in §4.7: add_hmtx appends ranges in arbitrary order; end_hmtx
// sorts them and forbids further additions. Lookup returns the first
// matching range, falling back to the table's default width.
type MetricTable struct {
	ranges  []HmtxRange
	vranges []VmtxRange
	def     int
	defX    int
	defY    int
	ended   bool
	vtable  bool
}

// NewHmtxTable returns an empty horizontal metric table with default width
// `def` (the DW value, 1000 if unset per §4.6 step 7).
func NewHmtxTable(def int) *MetricTable {
	return &MetricTable{def: def}
}

// NewVmtxTable returns an empty vertical metric table with default
// (originY, advanceY) per DW2 (880, -1000 if unset per §4.6 step 8).
func NewVmtxTable(originY, advanceY int) *MetricTable {
	return &MetricTable{def: advanceY, defY: originY, vtable: true}
}

// AddHmtx appends a horizontal range [lo, hi] -> w. Panics if called after End.
func (t *MetricTable) AddHmtx(lo, hi uint32, w int) {
	if t.ended {
		panic("model: AddHmtx called after End")
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	t.ranges = append(t.ranges, HmtxRange{Lo: lo, Hi: hi, W: w})
}

// AddVmtx appends a vertical range [lo, hi] -> (w, x, y).
func (t *MetricTable) AddVmtx(lo, hi uint32, w, x, y int) {
	if t.ended {
		panic("model: AddVmtx called after End")
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	t.vranges = append(t.vranges, VmtxRange{Lo: lo, Hi: hi, W: w, X: x, Y: y})
}

// SetDefault overrides the table's default (missing-range) width.
func (t *MetricTable) SetDefault(w int) { t.def = w }

// DefaultWidth returns the table's default width.
func (t *MetricTable) DefaultWidth() int { return t.def }

// End sorts the accumulated ranges by Lo and freezes the table against
// further Add calls. Callable with zero ranges added — the default-only
// path must still be queryable (§9).
func (t *MetricTable) End() {
	if t.vtable {
		sort.Slice(t.vranges, func(i, j int) bool { return t.vranges[i].Lo < t.vranges[j].Lo })
	} else {
		sort.Slice(t.ranges, func(i, j int) bool { return t.ranges[i].Lo < t.ranges[j].Lo })
	}
	t.ended = true
}

// Width returns the horizontal advance for cid: the first matching range
// wins, falling back to the default.
func (t *MetricTable) Width(cid uint32) int {
	for _, r := range t.ranges {
		if r.Lo <= cid && cid <= r.Hi {
			return r.W
		}
	}
	return t.def
}

// VWidth returns the vertical advance and glyph origin for cid, falling
// back to the table's default (advanceY, originX=0, originY).
func (t *MetricTable) VWidth(cid uint32) (w, x, y int) {
	for _, r := range t.vranges {
		if r.Lo <= cid && cid <= r.Hi {
			return r.W, r.X, r.Y
		}
	}
	return t.def, 0, t.defY
}

// HmtxRanges returns the sorted ranges, for debug_font-style serialization.
func (t *MetricTable) HmtxRanges() []HmtxRange { return t.ranges }

// VmtxRanges returns the sorted vertical ranges.
func (t *MetricTable) VmtxRanges() []VmtxRange { return t.vranges }

// BuildWidthTable implements the width_table dense-stretch construction
// from §4.7: for every CID reachable through any hmtx range, resolve its
// GID and record the width at that GID's slot, so a renderer can
// horizontally stretch a substitute face's glyph to match the original
// font's advance. Only meaningful when the descriptor has no ToTTFCmap
// (substitute fonts that DO have a ToTTFCmap stretch via Unicode instead).
func BuildWidthTable(desc *FontDescriptor) []int {
	if desc.ToTTFCmap != nil {
		return nil
	}
	maxGID := 0
	type hit struct {
		gid int
		w   int
	}
	var hits []hit
	for _, r := range desc.Hmtx.ranges {
		for cid := r.Lo; cid <= r.Hi; cid++ {
			gid := int(FontCIDToGID(desc, cid))
			if gid > maxGID {
				maxGID = gid
			}
			hits = append(hits, hit{gid: gid, w: r.W})
			if cid == ^uint32(0) {
				break // avoid infinite loop on a range ending at the uint32 max
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}
	table := make([]int, maxGID+1)
	for _, h := range hits {
		table[h.gid] = h.w
	}
	return table
}

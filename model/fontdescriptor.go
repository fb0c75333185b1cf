/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"sync/atomic"

	"github.com/inkwell-pdf/fontkit/internal/cmap"
)

// Font descriptor flag bits (PDF32000-1:2008 §9.8.2, Table 123).
const (
	FlagFixedPitch  = 0x00001
	FlagSerif       = 0x00002
	FlagSymbolic    = 0x00004
	FlagScript      = 0x00008
	FlagNonsymbolic = 0x00020
	FlagItalic      = 0x00040
	FlagAllCap      = 0x10000
	FlagSmallCap    = 0x20000
	FlagForceBold   = 0x40000
)

// FontMetrics holds the scalar descriptor metrics, in font-design units
// divided by 1000 (§3).
type FontMetrics struct {
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	XHeight      float64
	MissingWidth float64
}

// ProgramSource tags the provenance of a FontDescriptor's FontProgram, per
// the "tagged variant" design note in §9: exactly one of these is active
// per descriptor, and the renderer's stretch logic depends on knowing
// which.
type ProgramSource int

const (
	// ProgramNone means no face at all (Type3 procedural or pure failure).
	ProgramNone ProgramSource = iota
	// ProgramEmbedded means the face bytes came from FontFile/FontFile2/FontFile3.
	ProgramEmbedded
	// ProgramBuiltin means the face came from the bundled standard-14 table.
	ProgramBuiltin
	// ProgramSubstitute means the face is a system/bundled fallback chosen
	// by policy, not the document's own font.
	ProgramSubstitute
)

func (s ProgramSource) String() string {
	switch s {
	case ProgramEmbedded:
		return "embedded"
	case ProgramBuiltin:
		return "builtin"
	case ProgramSubstitute:
		return "substitute"
	default:
		return "none"
	}
}

// FontProgram is the reference-counted handle to a decoded font face plus
// its raw byte buffer (§3, §9). The buffer has a lifetime distinct from the
// wrapper: only the wrapper is released by FontDescriptor teardown, the
// data persists as long as Face holds a reference to it (true for the Go
// port since Face wrappers here keep their own parsed copies, not pointers
// into Data — Data is retained only for FontFile3/CFF passthrough and
// debugging).
type FontProgram struct {
	Source ProgramSource
	Face   Face
	Data   []byte

	// SyntheticBold/SyntheticItalic record that the substitute face lacks
	// a style the descriptor asked for; the renderer is expected to
	// synthesize it (faux-bold / faux-oblique).
	SyntheticBold   bool
	SyntheticItalic bool
}

// FontDescriptor is the central entity of the font loader (§3): a
// reconciled, read-only view of a PDF font resource usable for text
// extraction and glyph index resolution.
type FontDescriptor struct {
	Program *FontProgram
	Flags   uint32
	Metrics FontMetrics

	Encoding  *cmap.CMap
	ToTTFCmap *cmap.CMap
	ToUnicode *cmap.CMap
	CidToGid  []uint16
	CidToUcs  *cmap.CMap

	Hmtx, Vmtx           *MetricTable
	DefaultHmtx          int
	DefaultVmtx          int
	WritingMode          int
	IsEmbedded           bool
	RequiresHinting      bool // DynaLab / "tricky" TrueType faces need native hinting.
	WidthTable           []int

	refCount int32
}

// IsSymbolic reports the legacy `flags & 4` symbolic test. Per §9's
// explicit instruction, this preserves the literal bit test rather than
// comparing against the FlagSymbolic constant, matching a duplicated
// symbolic-detection idiom in the original engine.
func (d *FontDescriptor) IsSymbolic() bool {
	return d.Flags&4 != 0
}

// Keep increments the descriptor's reference count and returns it,
// mirroring the explicit retain/release API exposed to consumers (§6).
func (d *FontDescriptor) Keep() *FontDescriptor {
	atomic.AddInt32(&d.refCount, 1)
	return d
}

// Drop decrements the descriptor's reference count. When it reaches zero
// the program buffer, CMaps, and metric tables become eligible for
// release; Go's GC performs the actual reclamation once the last
// reference (including the Context's cache entry) is gone.
func (d *FontDescriptor) Drop() {
	atomic.AddInt32(&d.refCount, -1)
}

// DebugString implements the debug_font diagnostic dump from §6: writing
// mode, default widths, and all W/W2 ranges.
func (d *FontDescriptor) DebugString() string {
	s := fmt.Sprintf("wmode=%d default_hmtx=%d default_vmtx=%d\n", d.WritingMode, d.DefaultHmtx, d.DefaultVmtx)
	if d.Hmtx != nil {
		for _, r := range d.Hmtx.HmtxRanges() {
			s += fmt.Sprintf("W %d %d %d\n", r.Lo, r.Hi, r.W)
		}
	}
	if d.Vmtx != nil {
		for _, r := range d.Vmtx.VmtxRanges() {
			s += fmt.Sprintf("W2 %d %d %d %d %d\n", r.Lo, r.Hi, r.W, r.X, r.Y)
		}
	}
	return s
}

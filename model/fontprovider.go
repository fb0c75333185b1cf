/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"os"

	"github.com/adrg/sysfont"

	"github.com/inkwell-pdf/fontkit/common"
)

// readFontFile reads a font program from disk for a FontProvider backed by
// installed system fonts.
func readFontFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FontProvider is the external "font provider" collaborator from §6: it
// supplies the raw bytes for builtin standard-14 fonts and for
// mono/serif/bold/italic and CJK-ROS substitute faces. Implementations are
// expected to be safe for concurrent use by independent Contexts (but a
// single Context never calls it concurrently, per §5).
type FontProvider interface {
	// FindBuiltinFont returns the bytes of the canonicalized standard-14
	// font `name`, or ok=false if `name` is not one of the 14.
	FindBuiltinFont(name string) (data []byte, ok bool)
	// FindSubstituteFont picks a bundled fallback face by style.
	FindSubstituteFont(mono, serif, bold, italic bool) (data []byte, err error)
	// FindSubstituteCJKFont picks a fallback face for a CID collection
	// (ROS, e.g. "Adobe-GB1") by serif preference.
	FindSubstituteCJKFont(ros string, serif bool) (data []byte, err error)
}

// ErrNoSubstitute is returned when no substitute font can be found for
// a requested style or CID collection; §4.3 and §7 treat this as fatal.
var ErrNoSubstitute = fmt.Errorf("no substitute font available")

// BundledFontProvider supplies no font bytes at all: FindBuiltinFont reports
// ok=false and FindSubstituteFont always returns ErrNoSubstitute, so it never
// yields a Latin substitute face. Builtin faces are built by
// loadBuiltinProgram from the AFM metrics bundled in model/internal/fonts,
// which cover the four Times faces only. It has no bundled CJK substitute
// data either: FindSubstituteCJKFont always fails, matching this module's "missing substitute is fatal" path
// for Type0 fonts with no embedded program and no system font provider
// configured — documented in DESIGN.md.
type BundledFontProvider struct{}

var _ FontProvider = BundledFontProvider{}

// std14ByStyle maps (mono, serif, bold, italic) to a standard-14 name.
// Nothing in this module calls it: builtin faces are picked by canonical
// name in loadFontProgram, and style-based substitutes come from
// FindSubstituteFont.
func std14ByStyle(mono, serif, bold, italic bool) string {
	switch {
	case mono:
		switch {
		case bold && italic:
			return "Courier-BoldOblique"
		case bold:
			return "Courier-Bold"
		case italic:
			return "Courier-Oblique"
		default:
			return "Courier"
		}
	case serif:
		switch {
		case bold && italic:
			return "Times-BoldItalic"
		case bold:
			return "Times-Bold"
		case italic:
			return "Times-Italic"
		default:
			return "Times-Roman"
		}
	default:
		switch {
		case bold && italic:
			return "Helvetica-BoldOblique"
		case bold:
			return "Helvetica-Bold"
		case italic:
			return "Helvetica-Oblique"
		default:
			return "Helvetica"
		}
	}
}

// FindBuiltinFont has no byte-level representation to hand back for the
// bundled fonts (they are parsed AFM metric tables, not font programs);
// callers needing a builtin *FontProgram should use loadBuiltinProgram
// instead, which constructs a stdFace directly. FindBuiltinFont exists to
// satisfy the §6 contract for pluggable providers that DO ship real font
// program bytes (e.g. a provider backed by embedded TTF assets); the
// bundled provider reports ok=false and lets the caller fall through to
// its own std14 construction path.
func (BundledFontProvider) FindBuiltinFont(name string) ([]byte, bool) {
	return nil, false
}

// FindSubstituteFont has no bundled TrueType/Type1 bytes either and always
// returns ErrNoSubstitute; the Font-Program Loader then fails the load, as
// a missing substitute is fatal there.
func (BundledFontProvider) FindSubstituteFont(mono, serif, bold, italic bool) ([]byte, error) {
	return nil, ErrNoSubstitute
}

// FindSubstituteCJKFont always fails: this module ships no CJK font data.
func (BundledFontProvider) FindSubstituteCJKFont(ros string, serif bool) ([]byte, error) {
	common.Log.Debug("BundledFontProvider: no CJK substitute data for ros=%q", ros)
	return nil, ErrNoSubstitute
}

// SystemFontProvider finds substitute faces on the host's installed font
// collection using adrg/sysfont, for callers that need real CJK glyph
// coverage that BundledFontProvider cannot supply. It wraps
// BundledFontProvider for builtin lookups.
type SystemFontProvider struct {
	BundledFontProvider
	finder *sysfont.Finder
}

var _ FontProvider = (*SystemFontProvider)(nil)

// NewSystemFontProvider builds a provider backed by the host's font
// collection, scanned once at construction time.
func NewSystemFontProvider() *SystemFontProvider {
	return &SystemFontProvider{finder: sysfont.NewFinder(nil)}
}

// FindSubstituteFont searches installed fonts by style, preferring an exact
// style match and otherwise whatever the finder returns first.
func (p *SystemFontProvider) FindSubstituteFont(mono, serif, bold, italic bool) ([]byte, error) {
	family := "sans-serif"
	switch {
	case mono:
		family = "monospace"
	case serif:
		family = "serif"
	}
	f := p.finder.Match(family)
	if f == nil {
		common.Log.Debug("SystemFontProvider: no match for mono=%t serif=%t bold=%t italic=%t",
			mono, serif, bold, italic)
		return nil, ErrNoSubstitute
	}
	data, err := readFontFile(f.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSubstitute, err)
	}
	return data, nil
}

// FindSubstituteCJKFont searches installed fonts by a family-name
// heuristic derived from the ROS, since sysfont has no ROS-aware index.
// This is a best-effort sniff (see DESIGN.md): it looks for common CJK
// family name fragments and returns the first match.
func (p *SystemFontProvider) FindSubstituteCJKFont(ros string, serif bool) ([]byte, error) {
	candidates := cjkFamilyCandidates(ros)
	for _, name := range candidates {
		if f := p.finder.Match(name); f != nil {
			data, err := readFontFile(f.Filename)
			if err == nil {
				return data, nil
			}
		}
	}
	common.Log.Debug("SystemFontProvider: no installed CJK font for ros=%q", ros)
	return nil, ErrNoSubstitute
}

// cjkFamilyCandidates returns plausible installed-font family names for a
// CID collection registry-ordering string, most-serif-appropriate first.
func cjkFamilyCandidates(ros string) []string {
	switch ros {
	case "Adobe-GB1":
		return []string{"SimSun", "Noto Sans SC", "Noto Serif SC"}
	case "Adobe-CNS1":
		return []string{"PMingLiU", "Noto Sans TC", "Noto Serif TC"}
	case "Adobe-Japan1":
		return []string{"MS Mincho", "Noto Sans JP", "Noto Serif JP"}
	case "Adobe-Korea1":
		return []string{"Batang", "Noto Sans KR", "Noto Serif KR"}
	default:
		return nil
	}
}

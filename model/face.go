/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
	"github.com/inkwell-pdf/fontkit/model/internal/fonts"
)

// Face is the narrow glyph-program interface that the font loader queries.
// It unifies the three font-program sources (embedded TrueType, embedded
// Type1, and bundled standard-14 AFM fonts) behind the small set of
// operations the encoding resolvers and glyph resolver need: resolving a
// character or glyph name to a glyph index, reading glyph names back out,
// and reporting advance widths and style flags.
//
// A Face never paints a glyph; rasterization is strictly out of scope.
type Face interface {
	// CharIndex returns the glyph index for a Unicode code point, using
	// whichever cmap the face currently has selected. Returns 0 if absent.
	CharIndex(code rune) textencoding.GID
	// NameIndex returns the glyph index for a PostScript glyph name.
	// Returns 0 if the face has no name table or the name is unknown.
	NameIndex(name textencoding.GlyphName) textencoding.GID
	// GlyphName returns the PostScript name of a glyph index, if known.
	GlyphName(gid textencoding.GID) (textencoding.GlyphName, bool)
	// AdvanceWidth returns the horizontal advance of gid in 1000-unit em
	// space. Returns 0 if the glyph is out of range.
	AdvanceWidth(gid textencoding.GID) int
	// HasUnicodeCmap reports whether the face carries a (3,1)-style
	// Unicode cmap (preferred per §4.5 step 3).
	HasUnicodeCmap() bool
	// HasMacRomanCmap reports whether the face carries a (1,0)-style
	// MacRoman cmap.
	HasMacRomanCmap() bool
	// IsSymbolic reports whether the face should be treated as carrying
	// its own ad hoc (non-standard) encoding.
	IsSymbolic() bool
	// StyleBold/StyleItalic report the face's intrinsic style, used by the
	// substitute-selection policy and the synthetic-style hint.
	StyleBold() bool
	StyleItalic() bool
	// IsTricky reports whether the face needs native hinting to render
	// correctly (CJK faces whose outlines are hand-hinted).
	IsTricky() bool

	// Charmaps returns the number of alternate cmap subtables the face
	// carries. TrueType faces may carry more than one; other program kinds
	// report 0 or 1.
	Charmaps() int
	// CharmapPlatform returns the (platformID, encodingID) pair of the i'th
	// cmap subtable, using the TrueType 'cmap' table's platform/encoding IDs.
	CharmapPlatform(i int) (platformID, encodingID uint16)
	// SetCharmap selects the i'th cmap subtable as the one CharIndex
	// consults. Returns false if i is out of range.
	SetCharmap(i int) bool
}

// selectFaceCharmap implements the best-effort charmap fallback chain: a
// Windows/Unicode (3,1) subtable ("PS_Unicode") first, then a Macintosh/
// Roman (1,0) subtable ("Appleroman"), then whichever platform/encoding
// pair was parsed first, and finally charmap index 0. Returns false if the
// face carries no charmaps to choose between.
func selectFaceCharmap(face Face) bool {
	n := face.Charmaps()
	if n == 0 {
		return false
	}
	for _, want := range [2][2]uint16{{3, 1}, {1, 0}} {
		for i := 0; i < n; i++ {
			if p, e := face.CharmapPlatform(i); p == want[0] && e == want[1] {
				return face.SetCharmap(i)
			}
		}
	}
	return face.SetCharmap(0)
}

// ttfFace adapts a parsed TrueType program to the Face interface.
type ttfFace struct {
	ttf *fonts.TtfType
}

func newTTFFace(ttf *fonts.TtfType) *ttfFace { return &ttfFace{ttf: ttf} }

func (f *ttfFace) CharIndex(code rune) textencoding.GID {
	return f.ttf.Chars[code]
}

func (f *ttfFace) NameIndex(name textencoding.GlyphName) textencoding.GID {
	for gid, n := range f.ttf.GlyphNames {
		if n == name {
			return textencoding.GID(gid)
		}
	}
	return 0
}

func (f *ttfFace) GlyphName(gid textencoding.GID) (textencoding.GlyphName, bool) {
	if int(gid) < 0 || int(gid) >= len(f.ttf.GlyphNames) {
		return "", false
	}
	name := f.ttf.GlyphNames[gid]
	return name, name != ""
}

func (f *ttfFace) AdvanceWidth(gid textencoding.GID) int {
	if int(gid) < 0 || int(gid) >= len(f.ttf.Widths) {
		return 0
	}
	return int(f.ttf.Widths[gid])
}

func (f *ttfFace) HasUnicodeCmap() bool  { return f.ttf.HasUnicodeCmap }
func (f *ttfFace) HasMacRomanCmap() bool { return f.ttf.HasMacRomanCmap }
func (f *ttfFace) IsSymbolic() bool      { return !f.ttf.HasUnicodeCmap && !f.ttf.HasMacRomanCmap }
func (f *ttfFace) StyleBold() bool       { return f.ttf.Bold }
func (f *ttfFace) StyleItalic() bool     { return f.ttf.ItalicAngle != 0 }
func (f *ttfFace) IsTricky() bool        { return false }

func (f *ttfFace) Charmaps() int { return f.ttf.CharmapCount() }
func (f *ttfFace) CharmapPlatform(i int) (platformID, encodingID uint16) {
	return f.ttf.Charmap(i)
}
func (f *ttfFace) SetCharmap(i int) bool { return f.ttf.SelectCharmap(i) }

// type1Face adapts a parsed Type1 font program to the Face interface.
// Type1 programs carry only a name-keyed encoding (no char-code cmap and
// no advance widths beyond what PDF's own Widths array supplies), matching
// fontFile's limited scope (see fontfile.go).
type type1Face struct {
	ff *fontFile
}

func newType1Face(ff *fontFile) *type1Face { return &type1Face{ff: ff} }

func (f *type1Face) CharIndex(code rune) textencoding.GID { return 0 }

func (f *type1Face) NameIndex(name textencoding.GlyphName) textencoding.GID {
	// Prefer the font's own CharStrings table, which names every glyph it
	// actually carries; fall back to the built-in /Encoding's charcode
	// ordering only when CharStrings wasn't recovered (e.g. a malformed or
	// unparseable eexec segment).
	if gid := f.ff.glyphIndex(name); gid != 0 {
		return textencoding.GID(gid)
	}
	if len(f.ff.glyphNames) > 0 {
		return 0
	}
	if f.ff.encoder == nil {
		return 0
	}
	for _, code := range f.ff.encoder.Charcodes() {
		if r, ok := f.ff.encoder.CharcodeToRune(code); ok {
			if g, ok := textencoding.RuneToGlyph(r); ok && g == name {
				return textencoding.GID(code) + 1
			}
		}
	}
	return 0
}

func (f *type1Face) GlyphName(gid textencoding.GID) (textencoding.GlyphName, bool) {
	if len(f.ff.glyphNames) > 0 {
		return f.ff.glyphNameAt(int(gid))
	}
	return "", false
}

func (f *type1Face) AdvanceWidth(gid textencoding.GID) int { return 0 }
func (f *type1Face) HasUnicodeCmap() bool                  { return false }
func (f *type1Face) HasMacRomanCmap() bool                 { return false }
func (f *type1Face) IsSymbolic() bool                      { return true }
func (f *type1Face) StyleBold() bool                       { return false }
func (f *type1Face) StyleItalic() bool                     { return false }
func (f *type1Face) IsTricky() bool                        { return false }

// Type1 programs carry a single name-keyed encoding, not a set of
// platform/encoding cmap subtables, so there is nothing to switch between.
func (f *type1Face) Charmaps() int { return 0 }
func (f *type1Face) CharmapPlatform(i int) (platformID, encodingID uint16) {
	return 0, 0
}
func (f *type1Face) SetCharmap(i int) bool { return false }

// stdFace adapts a bundled standard-14 font to the Face interface using its
// AGL-keyed CharMetrics table in place of real outlines: advances are exact,
// glyph identity is irrelevant since these faces are never used as a
// CIDToGIDMap target.
type stdFace struct {
	std fonts.StdFont
}

func newStdFace(std fonts.StdFont) *stdFace { return &stdFace{std: std} }

func (f *stdFace) CharIndex(code rune) textencoding.GID {
	if _, ok := f.std.GetRuneMetrics(code); ok {
		return textencoding.GID(code)
	}
	return 0
}

func (f *stdFace) NameIndex(name textencoding.GlyphName) textencoding.GID {
	r, ok := textencoding.GlyphToRune(name)
	if !ok {
		return 0
	}
	return f.CharIndex(r)
}

func (f *stdFace) GlyphName(gid textencoding.GID) (textencoding.GlyphName, bool) {
	return textencoding.RuneToGlyph(rune(gid))
}

func (f *stdFace) AdvanceWidth(gid textencoding.GID) int {
	m, ok := f.std.GetRuneMetrics(rune(gid))
	if !ok {
		return 0
	}
	return int(m.Wx)
}

func (f *stdFace) HasUnicodeCmap() bool  { return true }
func (f *stdFace) HasMacRomanCmap() bool { return false }
func (f *stdFace) IsSymbolic() bool      { return false }
func (f *stdFace) StyleBold() bool       { return false }
func (f *stdFace) StyleItalic() bool     { return false }
func (f *stdFace) IsTricky() bool        { return false }

// The bundled standard-14 metrics table is keyed directly by AGL rune, so
// it behaves like a single (3,1) Unicode cmap; there is no alternate to
// switch to.
func (f *stdFace) Charmaps() int { return 1 }
func (f *stdFace) CharmapPlatform(i int) (platformID, encodingID uint16) {
	return 3, 1
}
func (f *stdFace) SetCharmap(i int) bool { return i == 0 }

// ftCharIndex implements the ft_char_index policy from §4.5: look up code
// directly; on miss, retry in the symbolic 0xF000 range; on miss again and
// only for code 0x22EF, retry with 0x2026 (a quirk of some Chinese fonts
// that ship an ellipsis at the "wrong" codepoint).
func ftCharIndex(face Face, code rune) textencoding.GID {
	if gid := face.CharIndex(code); gid != 0 {
		return gid
	}
	if gid := face.CharIndex(0xF000 + code); gid != 0 {
		return gid
	}
	if code == 0x22EF {
		return face.CharIndex(0x2026)
	}
	return 0
}

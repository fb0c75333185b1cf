/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"sync"

	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/internal/cmap"
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
)

// cp936Fonts is the hardcoded substitution table from §4.5's cp936
// workaround: some Chinese-authored PDF producers mislabel a handful of
// builtin-CJK-font references as WinAnsiEncoding with Flags=4 (symbolic),
// when the bytes are really codepage 936 (GBK). Each entry maps the raw,
// mis-encoded /BaseFont name (as GBK bytes reinterpreted byte-for-byte) to
// the real font name that should have been used.
var cp936Fonts = map[string]string{
	"\xCB\xCE\xCC\xE5":        "SimSun,Regular",
	"\xBA\xDA\xCC\xE5":        "SimHei,Regular",
	"\xBF\xAC\xCC\xE5_GB2312": "SimKai,Regular",
	"\xB7\xC2\xCB\xCE_GB2312": "SimFang,Regular",
	"\xC1\xA5\xCA\xE9":        "SimLi,Regular",
}

var (
	winAnsiFallbackOnce sync.Once
	winAnsiFallback     textencoding.SimpleEncoder
)

// winAnsiGlyphName recovers a glyph name for `code` from WinAnsiEncoding,
// the fallback table used when a face has no glyph-name table of its own
// (§4.5's "reverse the glyph names from the builtin encoding" step, mupdf's
// pdf_win_ansi fallback array).
func winAnsiGlyphName(code byte) (textencoding.GlyphName, bool) {
	winAnsiFallbackOnce.Do(func() {
		winAnsiFallback, _ = textencoding.NewSimpleTextEncoder("WinAnsiEncoding", nil)
	})
	if winAnsiFallback == nil {
		return "", false
	}
	r, ok := winAnsiFallback.CharcodeToRune(textencoding.CharCode(code))
	if !ok {
		return "", false
	}
	return textencoding.RuneToGlyph(r)
}

// loadSimpleFont implements the Simple-Font Encoding Resolver (§4.5) for
// Type1, MMType1, and TrueType font dictionaries: it loads the font
// program and descriptor, resolves the 256-entry code-to-glyph encoding
// table, builds the identity code-to-CID mapping simple fonts always use,
// and reads the Widths array (or the face's own advances when absent).
func (ctx *Context) loadSimpleFont(d *core.PdfObjectDictionary) (*FontDescriptor, error) {
	baseFont, _ := core.GetNameVal(d.Get("BaseFont"))
	descObj := d.Get("FontDescriptor")

	desc, err := loadFontDescriptor(descObj, baseFont, "", ctx.Provider)
	if err != nil {
		return nil, err
	}

	// cp936 workaround (§4.5): only applies when the descriptor has no
	// usable embedded program (i.e. the font resolved to a builtin or
	// substitute face rather than the PDF's own FontFile*, mirroring the
	// original's "!*fontdesc->font->name" guard -- an embedded font that
	// happens to share one of these mis-encoded names is real and must not
	// be discarded), there is no ToUnicode stream, /Encoding names
	// WinAnsiEncoding verbatim, and the descriptor's raw Flags is exactly 4.
	if substitute, ok := cp936Fonts[baseFont]; ok && !desc.IsEmbedded && d.Get("ToUnicode") == nil {
		encName, _ := core.GetNameVal(d.Get("Encoding"))
		if rawFlags := rawDescriptorFlags(descObj); encName == "WinAnsiEncoding" && rawFlags == 4 {
			common.Log.Debug("workaround for producer lying about Chinese font encoding: %q -> %q", baseFont, substitute)
			cjkDesc, cjkErr := loadFontDescriptor(descObj, substitute, "Adobe-GB1", ctx.Provider)
			if cjkErr == nil {
				cjkDesc.Encoding, _ = cmap.LoadPredefinedCMap("GBK-EUC-H")
				cjkDesc.ToUnicode, _ = cmap.LoadPredefinedCMap("Adobe-GB1-UCS2")
				cjkDesc.ToTTFCmap, _ = cmap.LoadPredefinedCMap("Adobe-GB1-UCS2")
				if err := loadSimpleWidths(cjkDesc, d); err != nil {
					return nil, err
				}
				return cjkDesc, nil
			}
			common.Log.Debug("cp936 workaround font load failed, falling back to normal path: %v", cjkErr)
		}
	}

	symbolic := desc.IsSymbolic()
	face := desc.Program.Face
	if face != nil {
		selectFaceCharmap(face)
	}

	estrings, err := resolveSimpleEncoding(d, desc.IsEmbedded, symbolic)
	if err != nil {
		return nil, err
	}

	etable := make([]uint16, 256)
	for i := 0; i < 256; i++ {
		etable[i] = uint16(ftCharIndex(face, rune(i)))
	}
	for i := 0; i < 256; i++ {
		name := estrings[i]
		if name == "" {
			continue
		}
		code := rune(i)
		if r, ok := textencoding.GlyphToRune(name); ok {
			code = r
		}
		if gid := ftCharIndexAt(face, code, name); gid != 0 {
			etable[i] = uint16(gid)
		}
	}
	for i := 0; i < 256; i++ {
		if etable[i] == 0 || estrings[i] != "" {
			continue
		}
		if name, ok := face.GlyphName(textencoding.GID(etable[i])); ok {
			estrings[i] = name
		} else if name, ok := winAnsiGlyphName(byte(i)); ok {
			estrings[i] = name
		}
	}

	desc.Encoding = cmap.NewIdentityCMap(0, 1)
	desc.CidToGid = etable

	if err := loadToUnicode(desc, d, estrings, ""); err != nil {
		return nil, err
	}

	if err := loadSimpleWidths(desc, d); err != nil {
		return nil, err
	}

	return desc, nil
}

// rawDescriptorFlags reads the /Flags entry straight off a FontDescriptor
// dictionary for the cp936 workaround's trigger check, independent of
// whatever name/program the normal loader path resolved.
func rawDescriptorFlags(descObj core.PdfObject) int {
	d, ok := core.GetDict(core.ResolveReference(descObj))
	if !ok {
		return 0
	}
	flags, _ := core.GetIntVal(d.Get("Flags"))
	return flags
}

// resolveSimpleEncoding builds the 256-entry code-to-glyph-name table from
// the font dictionary's /Encoding entry (§4.5): a bare name, a dictionary
// with /BaseEncoding and/or /Differences, or nothing at all. Differences
// entries always take priority over the base table, applied after it.
func resolveSimpleEncoding(d *core.PdfObjectDictionary, isEmbedded, symbolic bool) ([256]textencoding.GlyphName, error) {
	var estrings [256]textencoding.GlyphName

	encObj := core.ResolveReference(d.Get("Encoding"))
	if encObj == nil {
		return estrings, nil
	}

	if baseName, ok := core.GetNameVal(encObj); ok {
		fillBaseEncoding(&estrings, baseName)
		return estrings, nil
	}

	encDict, ok := core.GetDict(encObj)
	if !ok {
		return estrings, nil
	}

	if baseName, ok := core.GetNameVal(encDict.Get("BaseEncoding")); ok {
		fillBaseEncoding(&estrings, baseName)
	} else if !isEmbedded && !symbolic {
		fillBaseEncoding(&estrings, "StandardEncoding")
	}

	if diffArr, ok := core.GetArray(encDict.Get("Differences")); ok {
		applyDifferencesArray(&estrings, diffArr)
	}

	return estrings, nil
}

// fillBaseEncoding populates `estrings` from a registered simple encoding's
// code-to-rune table, converting each rune back to its AGL glyph name.
func fillBaseEncoding(estrings *[256]textencoding.GlyphName, baseName string) {
	enc, err := textencoding.NewSimpleTextEncoder(baseName, nil)
	if err != nil {
		common.Log.Debug("WARN: unknown base encoding %q: %v", baseName, err)
		return
	}
	for _, code := range enc.Charcodes() {
		if int(code) < 0 || int(code) > 255 {
			continue
		}
		r, ok := enc.CharcodeToRune(code)
		if !ok {
			continue
		}
		if name, ok := textencoding.RuneToGlyph(r); ok {
			estrings[code] = name
		}
	}
}

// applyDifferencesArray walks a PDF /Differences array -- alternating
// integer code resets and glyph names -- clamping the running code to
// [0, 255] the way mupdf's loader does.
func applyDifferencesArray(estrings *[256]textencoding.GlyphName, diff *core.PdfObjectArray) {
	k := 0
	for i := 0; i < diff.Len(); i++ {
		item := diff.Get(i)
		if n, ok := core.GetIntVal(item); ok {
			k = n
		}
		if name, ok := core.GetNameVal(item); ok {
			if k < 0 {
				k = 0
			}
			if k > 255 {
				k = 255
			}
			estrings[k] = textencoding.GlyphName(name)
			k++
		}
	}
}

// loadSimpleWidths implements the §4.5 Widths step: read FirstChar/LastChar
// and the Widths array when present (malformed ranges collapse to a single
// degenerate entry exactly as mupdf's loader does), else fall back to the
// resolved face's own advance widths for every code.
func loadSimpleWidths(desc *FontDescriptor, d *core.PdfObjectDictionary) error {
	missing := int(desc.Metrics.MissingWidth)
	desc.Hmtx = NewHmtxTable(missing)
	desc.DefaultHmtx = missing

	widths, ok := core.GetArray(d.Get("Widths"))
	if ok {
		first, _ := core.GetIntVal(d.Get("FirstChar"))
		last, _ := core.GetIntVal(d.Get("LastChar"))
		if first < 0 || last > 255 || first > last {
			first, last = 0, 0
		}
		for i := 0; i <= last-first; i++ {
			w, _ := core.GetIntVal(widths.Get(i))
			desc.Hmtx.AddHmtx(uint32(i+first), uint32(i+first), w)
		}
	} else if desc.Program != nil && desc.Program.Face != nil && desc.CidToGid != nil {
		face := desc.Program.Face
		for i := 0; i < 256; i++ {
			gid := textencoding.GID(desc.CidToGid[i])
			desc.Hmtx.AddHmtx(uint32(i), uint32(i), face.AdvanceWidth(gid))
		}
	}
	desc.Hmtx.End()
	desc.WidthTable = BuildWidthTable(desc)
	return nil
}

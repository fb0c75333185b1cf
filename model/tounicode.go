/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/internal/cmap"
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
)

// loadToUnicode implements the ToUnicode resolution priority from §4.7: an
// embedded /ToUnicode CMap stream wins outright; otherwise, for simple
// fonts, the resolved glyph names are mapped back to Unicode through the
// Adobe Glyph List; otherwise, for CID fonts with a known collection, the
// predefined "<Registry>-<Ordering>-UCS2" CMap supplies a collection-wide
// fallback. `estrings` is the 256-entry code-to-glyph table built by the
// Simple-Font Encoding Resolver, nil for CID fonts.
func loadToUnicode(desc *FontDescriptor, d *core.PdfObjectDictionary, estrings [256]textencoding.GlyphName, ros string) error {
	if tuObj := d.Get("ToUnicode"); tuObj != nil {
		if stream, ok := core.GetStream(core.ResolveReference(tuObj)); ok {
			data, err := core.DecodeStream(stream)
			if err != nil {
				common.Log.Debug("WARN: ToUnicode stream decode failed, falling back: %v", err)
			} else {
				cm, err := cmap.LoadCmapFromData(data, false)
				if err != nil {
					common.Log.Debug("WARN: ToUnicode CMap parse failed, falling back: %v", err)
				} else {
					desc.ToUnicode = cm
					return nil
				}
			}
		}
	}

	if hasEstrings(estrings) {
		codeToRune := make(map[cmap.CharCode]rune)
		for code, name := range estrings {
			if name == "" {
				continue
			}
			if r, ok := textencoding.GlyphToRune(name); ok {
				codeToRune[cmap.CharCode(code)] = r
			}
		}
		if len(codeToRune) > 0 {
			desc.ToUnicode = cmap.NewToUnicodeCMap(codeToRune)
			return nil
		}
	}

	if ros != "" {
		ucsName := ros + "-UCS2"
		if cmap.IsPredefinedCMap(ucsName) {
			cm, err := cmap.LoadPredefinedCMap(ucsName)
			if err == nil {
				desc.ToUnicode = cm
				return nil
			}
			common.Log.Debug("WARN: predefined ToUnicode CMap %q failed to load: %v", ucsName, err)
		}
	}

	return nil
}

func hasEstrings(estrings [256]textencoding.GlyphName) bool {
	for _, name := range estrings {
		if name != "" {
			return true
		}
	}
	return false
}

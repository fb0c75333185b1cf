/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/internal/cmap"
)

// loadType3Font implements the Type3 procedural-font stub from §10: Type3
// glyphs are PDF content streams keyed by name in /CharProcs, not outlines,
// so this loader reuses the Simple-Font encoding resolver's steps 3-4
// (BaseEncoding + Differences, no face to query) and scales /Widths from
// glyph space into the usual 1000-unit em through /FontMatrix, without a
// FontProgram of any kind.
func (ctx *Context) loadType3Font(d *core.PdfObjectDictionary) (*FontDescriptor, error) {
	desc := &FontDescriptor{
		Program: &FontProgram{Source: ProgramNone},
	}

	estrings, err := resolveSimpleEncoding(d, false, false)
	if err != nil {
		return nil, err
	}

	desc.Encoding = cmap.NewIdentityCMap(0, 1)

	if err := loadToUnicode(desc, d, estrings, ""); err != nil {
		return nil, err
	}

	scale := type3MatrixScale(d.Get("FontMatrix"))

	missing := int(desc.Metrics.MissingWidth)
	desc.Hmtx = NewHmtxTable(missing)
	desc.DefaultHmtx = missing

	if widths, ok := core.GetArray(d.Get("Widths")); ok {
		first, _ := core.GetIntVal(d.Get("FirstChar"))
		last, _ := core.GetIntVal(d.Get("LastChar"))
		if first < 0 || last > 255 || first > last {
			first, last = 0, 0
		}
		for i := 0; i <= last-first; i++ {
			w, _ := core.GetNumberAsFloat(widths.Get(i))
			desc.Hmtx.AddHmtx(uint32(i+first), uint32(i+first), int(w*scale))
		}
	}
	desc.Hmtx.End()

	return desc, nil
}

// type3MatrixScale extracts the horizontal scale factor (a, in the usual
// [a b c d e f] PDF matrix layout) from /FontMatrix and converts it to the
// 1000-unit em space Widths are reported in elsewhere in this module,
// defaulting to the common Type3 matrix's own scale (1/1000) when absent
// or malformed.
func type3MatrixScale(obj core.PdfObject) float64 {
	arr, ok := core.GetArray(obj)
	if !ok || arr.Len() < 1 {
		return 1.0
	}
	a, err := core.GetNumberAsFloat(arr.Get(0))
	if err != nil || a == 0 {
		return 1.0
	}
	return a * 1000
}

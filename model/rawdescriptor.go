/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
)

// PdfFontDescriptor is the unresolved dictionary view of a PDF
// /FontDescriptor: the direct input to the Descriptor Loader (§4.4). Every
// entry is kept as the raw core.PdfObject so the loader coerces only what
// it needs, matching the teacher's own font.go PdfFontDescriptor.
type PdfFontDescriptor struct {
	FontName     core.PdfObject
	Flags        core.PdfObject
	ItalicAngle  core.PdfObject
	Ascent       core.PdfObject
	Descent      core.PdfObject
	CapHeight    core.PdfObject
	XHeight      core.PdfObject
	MissingWidth core.PdfObject
	FontFile     core.PdfObject // Type1 (PFB)
	FontFile2    core.PdfObject // TrueType
	FontFile3    core.PdfObject // Type1C / CIDFontType0C / OpenType-CFF

	flags        int
	missingWidth float64
}

// newPdfFontDescriptorFromPdfObject loads a PdfFontDescriptor from a
// PdfObject, which can be a *core.PdfIndirectObject or a
// *core.PdfObjectDictionary. A nil `obj` yields a zero-value descriptor
// (§4.3's "no FontDescriptor" path for simple fonts without one).
func newPdfFontDescriptorFromPdfObject(obj core.PdfObject) (*PdfFontDescriptor, error) {
	desc := &PdfFontDescriptor{}
	if obj == nil {
		return desc, nil
	}

	d, ok := core.GetDict(core.ResolveReference(obj))
	if !ok {
		common.Log.Debug("ERROR: FontDescriptor not given by a dictionary (%T)", obj)
		return desc, core.ErrTypeError
	}

	desc.FontName = d.Get("FontName")
	desc.Flags = d.Get("Flags")
	desc.ItalicAngle = d.Get("ItalicAngle")
	desc.Ascent = d.Get("Ascent")
	desc.Descent = d.Get("Descent")
	desc.CapHeight = d.Get("CapHeight")
	desc.XHeight = d.Get("XHeight")
	desc.MissingWidth = d.Get("MissingWidth")
	desc.FontFile = d.Get("FontFile")
	desc.FontFile2 = d.Get("FontFile2")
	desc.FontFile3 = d.Get("FontFile3")

	if flags, ok := core.GetIntVal(desc.Flags); ok {
		desc.flags = flags
	}
	if mw, err := core.GetNumberAsFloat(desc.MissingWidth); err == nil {
		desc.missingWidth = mw
	}
	return desc, nil
}

// fontNameVal returns the raw /FontName value as a string, or "" if absent.
func (raw *PdfFontDescriptor) fontNameVal() string {
	name, _ := core.GetNameVal(raw.FontName)
	return name
}

// metrics builds the FontMetrics struct from the raw descriptor numbers,
// defaulting every absent entry to zero (§4.4).
func (raw *PdfFontDescriptor) metrics() FontMetrics {
	italicAngle, _ := core.GetNumberAsFloat(raw.ItalicAngle)
	ascent, _ := core.GetNumberAsFloat(raw.Ascent)
	descent, _ := core.GetNumberAsFloat(raw.Descent)
	capHeight, _ := core.GetNumberAsFloat(raw.CapHeight)
	xHeight, _ := core.GetNumberAsFloat(raw.XHeight)
	return FontMetrics{
		ItalicAngle:  italicAngle,
		Ascent:       ascent,
		Descent:      descent,
		CapHeight:    capHeight,
		XHeight:      xHeight,
		MissingWidth: raw.missingWidth,
	}
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"strings"

	"github.com/inkwell-pdf/fontkit/core"
)

// loadFontDescriptor implements the Descriptor Loader (§4.4): it resolves
// the effective font name, reads the scalar metrics and flags off the raw
// /FontDescriptor dictionary, derives the style hints the Font-Program
// Loader needs, and assembles a FontDescriptor around whatever FontProgram
// results. `baseFont` is the font resource's own /BaseFont name; `ros` is
// the CID collection string ("Adobe-GB1" etc.), empty for simple fonts.
func loadFontDescriptor(descObj core.PdfObject, baseFont, ros string, provider FontProvider) (*FontDescriptor, error) {
	raw, err := newPdfFontDescriptorFromPdfObject(descObj)
	if err != nil {
		return nil, fmt.Errorf("cannot read font descriptor: %w", err)
	}

	origName := selectFontName(raw.fontNameVal(), baseFont)
	canonicalName := CanonicalStdFontName(origName)

	flags := raw.flags
	mono := flags&FlagFixedPitch != 0
	serif := flags&FlagSerif != 0
	bold := strings.Contains(origName, "Bold") || flags&FlagForceBold != 0
	italic := strings.Contains(origName, "Italic") || strings.Contains(origName, "Oblique") || flags&FlagItalic != 0

	prog, err := loadFontProgram(raw, canonicalName, ros, mono, serif, bold, italic, provider)
	if err != nil {
		return nil, err
	}

	desc := &FontDescriptor{
		Program:    prog,
		Flags:      uint32(flags),
		Metrics:    raw.metrics(),
		IsEmbedded: prog.Source == ProgramEmbedded,
	}

	if _, isTTF := prog.Face.(*ttfFace); isTTF {
		desc.RequiresHinting = prog.Face.IsTricky() || IsDynaLabTricky(origName)
	}

	return desc, nil
}

// selectFontName implements the name-selection rule from §4.4: if
// `baseFont` has no comma, or it has a `+` subset-tag prefix, the
// /FontName entry on the descriptor is preferred over /BaseFont (mupdf's
// comment: "without the comma, pdf_load_font_descriptor would prefer
// /FontName over /BaseFont"). Otherwise, and whenever /FontName is absent,
// /BaseFont is used directly.
func selectFontName(fontName, baseFont string) string {
	if !strings.Contains(baseFont, ",") || strings.Contains(baseFont, "+") {
		if fontName != "" {
			return fontName
		}
	}
	return baseFont
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/model"
)

func parseFontDict(t *testing.T, raw string) core.PdfObject {
	t.Helper()
	parser := core.NewParserFromString(raw)
	obj, err := parser.ParseDict()
	require.NoError(t, err)
	return obj
}

func TestLoadSimpleFontStandard14(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type1
		/BaseFont /Helvetica
		/Encoding /WinAnsiEncoding
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.NotNil(t, desc)
	require.NotNil(t, desc.Encoding)
	require.Equal(t, 0, desc.WritingMode)
}

func TestLoadSimpleFontWithWidths(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type1
		/BaseFont /AOMFKK+Helvetica
		/FirstChar 71
		/LastChar 79
		/Widths [ 778 722 278 500 667 556 833 722 778 ]
		/Encoding /WinAnsiEncoding
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.NotNil(t, desc.Hmtx)
	require.NotEmpty(t, desc.Hmtx.HmtxRanges())
}

func TestLoadCIDFontIdentity(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type0
		/BaseFont /Helvetica
		/Encoding /Identity-H
		/DescendantFonts [
			<< /Type /Font
				/Subtype /CIDFontType2
				/BaseFont /Helvetica
				/CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >>
				/DW 1000
				/W [ 3 [ 278 722 722 ] 20 25 556 ]
			>>
		]
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.NotNil(t, desc.Encoding)
	require.Equal(t, 0, desc.WritingMode)
	require.Equal(t, 1000, desc.DefaultHmtx)
	require.NotEmpty(t, desc.Hmtx.HmtxRanges())
}

func TestLoadCIDFontVertical(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type0
		/BaseFont /Helvetica
		/Encoding /Identity-V
		/DescendantFonts [
			<< /Type /Font
				/Subtype /CIDFontType2
				/BaseFont /Helvetica
				/CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >>
				/DW 1000
				/DW2 [ 880 -1000 ]
			>>
		]
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.Equal(t, 1, desc.WritingMode)
	require.NotNil(t, desc.Vmtx)
	require.Equal(t, -1000, desc.DefaultVmtx)
}

func TestLoadType3Font(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type3
		/FontBBox [ 0 0 1000 1000 ]
		/FontMatrix [ 0.001 0 0 0.001 0 0 ]
		/FirstChar 65
		/LastChar 66
		/Widths [ 1000 900 ]
		/CharProcs << /A 10 0 R /B 11 0 R >>
		/Encoding << /Differences [ 65 /A /B ] >>
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.Nil(t, desc.Program.Face)
	require.Equal(t, model.ProgramNone, desc.Program.Source)
	require.NotEmpty(t, desc.Hmtx.HmtxRanges())
}

func TestLoadFontMissingSubtypeFallsBackByShape(t *testing.T) {
	ctx := model.NewContext(nil)

	cidLike := parseFontDict(t, `<< /Type /Font
		/BaseFont /Helvetica
		/Encoding /Identity-H
		/DescendantFonts [
			<< /Type /Font
				/Subtype /CIDFontType2
				/BaseFont /Helvetica
				/CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >>
			>>
		]
	>>`)
	desc, err := ctx.LoadFont(cidLike)
	require.NoError(t, err)
	require.NotNil(t, desc)

	type3Like := parseFontDict(t, `<< /Type /Font
		/FontMatrix [ 0.001 0 0 0.001 0 0 ]
		/CharProcs << /A 10 0 R >>
	>>`)
	desc, err = ctx.LoadFont(type3Like)
	require.NoError(t, err)
	require.Equal(t, model.ProgramNone, desc.Program.Source)
}

func TestLoadFontRejectsNonDict(t *testing.T) {
	ctx := model.NewContext(nil)
	_, err := ctx.LoadFont(core.MakeInteger(5))
	require.Error(t, err)
}

func TestLoadFontCachesByReference(t *testing.T) {
	parser := core.NewParserFromString(`
1 0 obj
<< /Type /Font
	/Subtype /Type1
	/BaseFont /Helvetica
	/Encoding /WinAnsiEncoding
>>
endobj
`)
	obj, err := parser.ParseIndirectObject()
	require.NoError(t, err)

	ctx := model.NewContext(nil)
	first, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	second, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestLoadSimpleFontDifferencesOverrideBaseEncoding(t *testing.T) {
	ctx := model.NewContext(nil)
	obj := parseFontDict(t, `<< /Type /Font
		/Subtype /Type1
		/BaseFont /Helvetica
		/Encoding << /BaseEncoding /WinAnsiEncoding /Differences [ 65 /bullet ] >>
	>>`)

	desc, err := ctx.LoadFont(obj)
	require.NoError(t, err)
	require.NotNil(t, desc.ToUnicode)
}

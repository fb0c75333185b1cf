/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"

	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/internal/cmap"
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
)

// cjkUCSCollections lists the CID collections with a bundled
// "<collection>-UCS2" predefined CMap, used both for the to-TrueType-cmap
// bridge on substitute CID fonts (§4.6) and for the ToUnicode collection
// fallback (§4.7).
var cjkUCSCollections = map[string]bool{
	"Adobe-CNS1":   true,
	"Adobe-GB1":    true,
	"Adobe-Japan1": true,
	"Adobe-Japan2": true,
	"Adobe-Korea1": true,
}

// loadCIDFont implements the CID Font Loader (§4.6) for a Type0 font
// dictionary: resolve DescendantFonts[0], build the CID collection string,
// load the descriptor, resolve the code-to-CID Encoding, the CIDToGIDMap
// policy, the W/W2 width tables, and ToUnicode.
func (ctx *Context) loadCIDFont(d *core.PdfObjectDictionary) (*FontDescriptor, error) {
	dfonts, ok := core.GetArray(d.Get("DescendantFonts"))
	if !ok || dfonts.Len() == 0 {
		return nil, fmt.Errorf("cid font is missing descendant fonts: %w", core.ErrTypeError)
	}
	dfont, ok := core.GetDict(core.ResolveReference(dfonts.Get(0)))
	if !ok {
		return nil, fmt.Errorf("cid font descendant is not a dictionary: %w", core.ErrTypeError)
	}

	subtype, _ := core.GetNameVal(dfont.Get("Subtype"))
	if subtype != "CIDFontType0" && subtype != "CIDFontType2" {
		return nil, fmt.Errorf("unknown cid font type %q: %w", subtype, core.ErrNotSupported)
	}

	baseFont, _ := core.GetNameVal(dfont.Get("BaseFont"))
	ros := cidCollectionString(dfont.Get("CIDSystemInfo"))

	descObj := dfont.Get("FontDescriptor")
	if descObj == nil {
		return nil, fmt.Errorf("cid font is missing font descriptor: %w", core.ErrTypeError)
	}

	desc, err := loadFontDescriptor(descObj, baseFont, ros, ctx.Provider)
	if err != nil {
		return nil, err
	}

	encObj := core.ResolveReference(d.Get("Encoding"))
	enc, err := resolveCIDEncoding(encObj)
	if err != nil {
		return nil, err
	}
	desc.Encoding = enc
	desc.WritingMode = enc.WMode

	if _, isTTF := desc.Program.Face.(*ttfFace); isTTF {
		if err := resolveCIDToGIDMap(desc, dfont, ros); err != nil {
			return nil, err
		}
	}

	if err := loadToUnicode(desc, d, [256]textencoding.GlyphName{}, ros); err != nil {
		return nil, err
	}

	loadCIDWidths(desc, dfont)
	if desc.WritingMode == 1 {
		loadCIDVWidths(desc, dfont)
	}

	return desc, nil
}

// cidCollectionString builds the "<Registry>-<Ordering>" collection string
// from a CIDSystemInfo dictionary, truncated the way mupdf's 64-byte stack
// buffers effectively did (§4.6's "collection string truncation").
func cidCollectionString(obj core.PdfObject) string {
	d, ok := core.GetDict(core.ResolveReference(obj))
	if !ok {
		return ""
	}
	registry, _ := core.GetStringVal(d.Get("Registry"))
	ordering, _ := core.GetStringVal(d.Get("Ordering"))
	registry = truncateCollectionField(registry)
	ordering = truncateCollectionField(ordering)
	return registry + "-" + ordering
}

// truncateCollectionField caps a Registry/Ordering string at 63 bytes.
func truncateCollectionField(s string) string {
	const max = 63
	if len(s) > max {
		return s[:max]
	}
	return s
}

// resolveCIDEncoding implements §4.6's Encoding resolution: Identity-H/V
// build an identity CMap, a named predefined CMap is loaded from the
// bundled table, and an indirect stream is parsed as an embedded CID CMap.
func resolveCIDEncoding(encObj core.PdfObject) (*cmap.CMap, error) {
	if encObj == nil {
		return nil, fmt.Errorf("font missing encoding: %w", core.ErrTypeError)
	}

	if name, ok := core.GetNameVal(encObj); ok {
		switch name {
		case "Identity-H":
			return cmap.NewIdentityCMap(0, 2), nil
		case "Identity-V":
			return cmap.NewIdentityCMap(1, 2), nil
		default:
			cm, err := cmap.LoadPredefinedCMap(name)
			if err != nil {
				return nil, fmt.Errorf("cannot load predefined cmap %q: %w", name, err)
			}
			return cm, nil
		}
	}

	stream, ok := core.GetStream(encObj)
	if !ok {
		return nil, fmt.Errorf("font encoding is neither a name nor a stream: %w", core.ErrTypeError)
	}
	data, err := core.DecodeStream(stream)
	if err != nil {
		return nil, fmt.Errorf("cannot decode embedded cmap stream: %w", err)
	}
	cm, err := cmap.LoadCmapFromDataCID(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse embedded cmap stream: %w", err)
	}
	return cm, nil
}

// resolveCIDToGIDMap implements §4.6's CIDToGIDMap policy, which only
// applies to CIDFontType2 (TrueType outlines): an embedded stream of raw
// big-endian uint16 pairs is used directly; otherwise, for a substitute
// face (no embedded program), a ToTTFCmap bridges CID through Unicode to
// the substitute's own cmap via the collection's "<ros>-UCS2" predefined
// CMap when the collection is one of the five known CJK ROS values.
func resolveCIDToGIDMap(desc *FontDescriptor, dfont *core.PdfObjectDictionary, ros string) error {
	cidToGIDObj := core.ResolveReference(dfont.Get("CIDToGIDMap"))
	if stream, ok := core.GetStream(cidToGIDObj); ok {
		data, err := core.DecodeStream(stream)
		if err != nil {
			return fmt.Errorf("cannot decode CIDToGIDMap stream: %w", err)
		}
		gids := make([]uint16, len(data)/2)
		for i := range gids {
			gids[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
		}
		desc.CidToGid = gids
		return nil
	}

	if desc.Program.Source != ProgramSubstitute {
		return nil
	}

	if !cjkUCSCollections[ros] {
		common.Log.Debug("WARN: no to-TrueType-cmap bridge for unknown cid collection %q", ros)
		return nil
	}
	cm, err := cmap.LoadPredefinedCMap(ros + "-UCS2")
	if err != nil {
		common.Log.Debug("WARN: cannot load %s-UCS2 cmap for substitute CID font: %v", ros, err)
		return nil
	}
	desc.ToTTFCmap = cm
	return nil
}

// loadCIDWidths implements the W array grammar from §4.6: each run is
// either `c [w0 w1 ... wn]` (consecutive codes starting at c) or
// `c0 c1 w` (every code in [c0, c1] gets width w).
func loadCIDWidths(desc *FontDescriptor, dfont *core.PdfObjectDictionary) {
	dw := 1000
	if v, ok := core.GetIntVal(dfont.Get("DW")); ok {
		dw = v
	}
	desc.Hmtx = NewHmtxTable(dw)
	desc.DefaultHmtx = dw

	if arr, ok := core.GetArray(dfont.Get("W")); ok {
		n := arr.Len()
		for i := 0; i < n; {
			c0, _ := core.GetIntVal(arr.Get(i))
			if i+1 >= n {
				break
			}
			if sub, ok := core.GetArray(arr.Get(i + 1)); ok {
				for k := 0; k < sub.Len(); k++ {
					w, _ := core.GetIntVal(sub.Get(k))
					desc.Hmtx.AddHmtx(uint32(c0+k), uint32(c0+k), w)
				}
				i += 2
			} else {
				if i+2 >= n {
					break
				}
				c1, _ := core.GetIntVal(arr.Get(i + 1))
				w, _ := core.GetIntVal(arr.Get(i + 2))
				desc.Hmtx.AddHmtx(uint32(c0), uint32(c1), w)
				i += 3
			}
		}
	}
	desc.Hmtx.End()
	desc.WidthTable = BuildWidthTable(desc)
}

// loadCIDVWidths implements the W2/DW2 vertical metrics from §4.6, parsed
// with the same consecutive-run / explicit-range grammar as W but carrying
// an additional (originX, originY) pair per entry.
func loadCIDVWidths(desc *FontDescriptor, dfont *core.PdfObjectDictionary) {
	dw2y, dw2w := 880, -1000
	if arr, ok := core.GetArray(dfont.Get("DW2")); ok && arr.Len() >= 2 {
		if v, ok := core.GetIntVal(arr.Get(0)); ok {
			dw2y = v
		}
		if v, ok := core.GetIntVal(arr.Get(1)); ok {
			dw2w = v
		}
	}
	desc.Vmtx = NewVmtxTable(dw2y, dw2w)
	desc.DefaultVmtx = dw2w

	if arr, ok := core.GetArray(dfont.Get("W2")); ok {
		n := arr.Len()
		for i := 0; i < n; {
			c0, _ := core.GetIntVal(arr.Get(i))
			if i+1 >= n {
				break
			}
			if sub, ok := core.GetArray(arr.Get(i + 1)); ok {
				m := sub.Len()
				for k := 0; k*3 < m; k++ {
					w, _ := core.GetIntVal(sub.Get(k * 3))
					x, _ := core.GetIntVal(sub.Get(k*3 + 1))
					y, _ := core.GetIntVal(sub.Get(k*3 + 2))
					desc.Vmtx.AddVmtx(uint32(c0+k), uint32(c0+k), w, x, y)
				}
				i += 2
			} else {
				if i+4 >= n {
					break
				}
				c1, _ := core.GetIntVal(arr.Get(i + 1))
				w, _ := core.GetIntVal(arr.Get(i + 2))
				x, _ := core.GetIntVal(arr.Get(i + 3))
				y, _ := core.GetIntVal(arr.Get(i + 4))
				desc.Vmtx.AddVmtx(uint32(c0), uint32(c1), w, x, y)
				i += 5
			}
		}
	}
	desc.Vmtx.End()
}

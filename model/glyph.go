/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/inkwell-pdf/fontkit/internal/cmap"
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
)

// FontCIDToGID implements the glyph resolver from §4.8: given a descriptor
// and a CID, yield the glyph index to paint.
//
//  1. No face (Type3 / procedural) -> identity, the CID is returned as-is.
//  2. ToTTFCmap set (substituted CID face) -> map CID to Unicode via
//     ToTTFCmap, then resolve via ft_char_index.
//  3. CidToGid array non-empty -> bounds-checked lookup, out-of-range is 0.
//  4. Otherwise (including an empty CidToGid) -> identity.
func FontCIDToGID(desc *FontDescriptor, cid uint32) uint16 {
	if desc.Program == nil || desc.Program.Face == nil {
		return uint16(cid)
	}

	if desc.ToTTFCmap != nil {
		s, ok := desc.ToTTFCmap.CharcodeToUnicode(cmap.CharCode(cid))
		if !ok || len(s) == 0 {
			return 0
		}
		r := []rune(s)[0]
		return uint16(ftCharIndex(desc.Program.Face, r))
	}

	if len(desc.CidToGid) > 0 {
		if int(cid) < 0 || int(cid) >= len(desc.CidToGid) {
			return 0
		}
		return desc.CidToGid[cid]
	}

	return uint16(cid)
}

// ftCharIndexAt resolves a single-byte/name-keyed glyph lookup for the
// simple-font encoding resolver, given an already-built etable seed value
// and a named glyph to try when the seeded value is zero.
func ftCharIndexAt(face Face, code rune, name textencoding.GlyphName) textencoding.GID {
	if gid := ftCharIndex(face, code); gid != 0 {
		return gid
	}
	if name != "" {
		return face.NameIndex(name)
	}
	return 0
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// An embedded Type1 font program is a stream containing cleartext PostScript
// (font dictionary + 256-entry built-in /Encoding) followed by an
// eexec-encrypted binary segment (the /CharStrings dict of glyph outlines).
// It appears in PDF files as the /FontFile entry of a /FontDescriptor. This
// module never paints outlines, so the binary segment is only walked far
// enough to recover each glyph's name and its position in the CharStrings
// table -- that ordinal position becomes the synthetic GID the Face
// interface hands back, since Type1 programs have no native glyph-index
// concept of their own.
//
// Reference: PDF32000-1:2008 9.9, Adobe Type 1 Font Format (eexec
// encryption, CharStrings encoding) §7.

package model

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
	"github.com/inkwell-pdf/fontkit/internal/textencoding"
)

// fontFile holds what this module needs out of an embedded Type1 program:
// its built-in /Encoding (as a SimpleEncoder) and the glyph-name ordering
// recovered from its CharStrings table, used to synthesize GIDs.
type fontFile struct {
	name       string
	subtype    string
	encoder    textencoding.SimpleEncoder
	glyphNames []textencoding.GlyphName
}

// String returns a human readable description of `fontfile`.
func (fontfile *fontFile) String() string {
	encoding := "[None]"
	if fontfile.encoder != nil {
		encoding = fontfile.encoder.String()
	}
	return fmt.Sprintf("FONTFILE{%#q encoder=%s glyphs=%d}", fontfile.name, encoding, len(fontfile.glyphNames))
}

// glyphIndex returns the 1-based CharStrings-table index of `name`, or 0 if
// the font's CharStrings dict was never recovered or doesn't define it. 0
// doubles as the "not found" GID, matching every other Face implementation
// in this package.
func (fontfile *fontFile) glyphIndex(name textencoding.GlyphName) int {
	for i, n := range fontfile.glyphNames {
		if n == name {
			return i + 1
		}
	}
	return 0
}

// glyphNameAt returns the glyph name at 1-based CharStrings index `gid`.
func (fontfile *fontFile) glyphNameAt(gid int) (textencoding.GlyphName, bool) {
	if gid < 1 || gid > len(fontfile.glyphNames) {
		return "", false
	}
	return fontfile.glyphNames[gid-1], true
}

// newFontFileFromPdfObject loads a FontFile from a PdfObject.  Can either be a
// *PdfIndirectObject or a *PdfObjectDictionary.
func newFontFileFromPdfObject(obj core.PdfObject) (*fontFile, error) {
	common.Log.Trace("newFontFileFromPdfObject: obj=%s", obj)
	fontfile := &fontFile{}

	obj = core.TraceToDirectObject(obj)

	streamObj, ok := obj.(*core.PdfObjectStream)
	if !ok {
		common.Log.Debug("ERROR: FontFile must be a stream (%T)", obj)
		return nil, core.ErrTypeError
	}
	d := streamObj.PdfObjectDictionary
	data, err := core.DecodeStream(streamObj)
	if err != nil {
		return nil, err
	}

	subtype, ok := core.GetNameVal(d.Get("Subtype"))
	if ok {
		fontfile.subtype = subtype
		if subtype == "Type1C" {
			common.Log.Debug("Type1C fonts are not parsed by this engine's Type1 loader")
			return nil, ErrType1CFontNotSupported
		}
	}

	length1, _ := core.GetIntVal(d.Get("Length1"))
	length2, _ := core.GetIntVal(d.Get("Length2"))

	if length1 > len(data) {
		length1 = len(data)
	}
	if length1+length2 > len(data) {
		length2 = len(data) - length1
	}

	segment1 := data[:length1]
	var segment2 []byte
	if length2 > 0 {
		segment2 = data[length1 : length1+length2]
	}

	// empty streams are ignored
	if length1 > 0 && length2 > 0 {
		err := fontfile.loadFromSegments(segment1, segment2)
		if err != nil {
			return nil, err
		}
	}

	return fontfile, nil
}

// loadFromSegments loads the cleartext dictionary/encoding from `segment1`
// and the CharStrings glyph ordering from the eexec-encrypted `segment2`.
func (fontfile *fontFile) loadFromSegments(segment1, segment2 []byte) error {
	common.Log.Trace("loadFromSegments: %d %d", len(segment1), len(segment2))
	if err := fontfile.parseASCIIPart(segment1); err != nil {
		return err
	}
	if len(segment2) == 0 {
		return nil
	}

	binary := segment2
	if !isBinary(segment2) {
		// Some producers emit the encrypted segment as 2-char ASCII hex
		// (the PFA convention) instead of raw binary.
		decoded, err := hexDecodeEexecSegment(segment2)
		if err != nil {
			common.Log.Debug("WARN: FontFile binary segment is neither binary nor hex eexec data: %v", err)
			return nil
		}
		binary = decoded
	}

	plain := decodeEexec(binary)
	fontfile.glyphNames = parseCharstringNames(plain)
	if len(fontfile.glyphNames) == 0 {
		common.Log.Debug("WARN: FontFile %q: no CharStrings glyph names recovered", fontfile.name)
	}
	return nil
}

// parseASCIIPart parses the ASCII part of the FontFile.
func (fontfile *fontFile) parseASCIIPart(data []byte) error {
	// The start of a FontFile looks like
	//     %!PS-AdobeFont-1.0: MyArial 003.002
	//     %%Title: MyArial
	// or
	//     %!FontType1-1.0
	if len(data) < 2 || string(data[:2]) != "%!" {
		return errors.New("invalid start of ASCII segment")
	}

	keySection, encodingSection, err := getASCIISections(data)
	if err != nil {
		return err
	}
	keyValues := getKeyValues(keySection)

	fontfile.name = keyValues["FontName"]
	if fontfile.name == "" {
		common.Log.Debug(" FontFile has no /FontName")
	}

	if encodingSection != "" {
		encodings, err := getEncodings(encodingSection)
		if err != nil {
			return err
		}
		encoder, err := textencoding.NewCustomSimpleTextEncoder(encodings, nil)
		if err != nil {
			common.Log.Debug("ERROR: unknown glyph in built-in /Encoding: %v", err)
			return nil
		}
		fontfile.encoder = encoder
	}
	return nil
}

var (
	reDictBegin   = regexp.MustCompile(`\d+ dict\s+(dup\s+)?begin`)
	reKeyVal      = regexp.MustCompile(`^\s*/(\S+?)\s+(.+?)\s+def\s*$`)
	reEncoding    = regexp.MustCompile(`^\s*dup\s+(\d+)\s*/(\w+?)(?:\.\d+)?\s+put$`)
	encodingBegin = "/Encoding 256 array"
	encodingEnd   = "readonly def"
)

// getASCIISections returns two sections of `data`, the ASCII part of the FontFile
//   - the general key values in `keySection`
//   - the encoding in `encodingSection`
func getASCIISections(data []byte) (keySection, encodingSection string, err error) {
	common.Log.Trace("getASCIISections: %d ", len(data))
	loc := reDictBegin.FindIndex(data)
	if loc == nil {
		common.Log.Debug("ERROR: getASCIISections. No dict.")
		return "", "", core.ErrTypeError
	}
	i0 := loc[1]
	i := strings.Index(string(data[i0:]), encodingBegin)
	if i < 0 {
		keySection = string(data[i0:])
		return keySection, "", nil
	}
	i1 := i0 + i
	keySection = string(data[i0:i1])

	i2 := i1
	i = strings.Index(string(data[i2:]), encodingEnd)
	if i < 0 {
		common.Log.Debug("ERROR: getASCIISections. err=%v", err)
		return "", "", core.ErrTypeError
	}
	i3 := i2 + i
	encodingSection = string(data[i2:i3])
	return keySection, encodingSection, nil
}

// ~/testdata/private/invoice61781040.pdf has \r line endings
var reEndline = regexp.MustCompile(`[\n\r]+`)

// getKeyValues returns the map encoded in `data`.
func getKeyValues(data string) map[string]string {
	lines := reEndline.Split(data, -1)
	keyValues := map[string]string{}
	for _, line := range lines {
		matches := reKeyVal.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		k, v := matches[1], matches[2]
		keyValues[k] = v
	}
	return keyValues
}

// getEncodings returns the encodings encoded in `data`.
func getEncodings(data string) (map[textencoding.CharCode]textencoding.GlyphName, error) {
	lines := strings.Split(data, "\n")
	keyValues := make(map[textencoding.CharCode]textencoding.GlyphName)
	for _, line := range lines {
		matches := reEncoding.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		k, glyph := matches[1], matches[2]
		code, err := strconv.Atoi(k)
		if err != nil {
			common.Log.Debug("ERROR: Bad encoding line. %q", line)
			return nil, core.ErrTypeError
		}
		keyValues[textencoding.CharCode(code)] = textencoding.GlyphName(glyph)
	}
	common.Log.Trace("getEncodings: keyValues=%#v", keyValues)
	return keyValues, nil
}

// decodeEexec returns the decoding of the eexec bytes `data`.
func decodeEexec(data []byte) []byte {
	const c1 = 52845
	const c2 = 22719

	seed := 55665 // eexec key
	// Run the seed through the encoder 4 times
	for _, b := range data[:4] {
		seed = (int(b)+seed)*c1 + c2
	}
	decoded := make([]byte, len(data)-4)
	for i, b := range data[4:] {
		decoded[i] = byte(int(b) ^ seed>>8)
		seed = (int(b)+seed)*c1 + c2
	}
	return decoded
}

// isBinary returns true if `data` is binary. See Adobe Type 1 Font Format specification
// 7.2 eexec encryption
func isBinary(data []byte) bool {
	if len(data) < 4 {
		return true
	}
	for _, b := range data[:4] {
		r := rune(b)
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// hexDecodeEexecSegment decodes a whitespace-separated ASCII-hex eexec
// segment (the PFA convention) into the raw encrypted bytes decodeEexec
// expects.
func hexDecodeEexecSegment(data []byte) ([]byte, error) {
	clean := make([]byte, 0, len(data))
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
			clean = append(clean, b)
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			continue
		default:
			return nil, fmt.Errorf("non-hex byte %#x in ASCII-hex eexec segment", b)
		}
	}
	if len(clean)%2 != 0 {
		return nil, errors.New("odd-length ASCII-hex eexec segment")
	}
	out := make([]byte, len(clean)/2)
	if _, err := hex.Decode(out, clean); err != nil {
		return nil, err
	}
	return out, nil
}

// charstringEntry matches one "/name length RD" or "/name length -|" header
// opening a length-prefixed binary charstring in a decrypted CharStrings
// dict. The binary body itself is never matched by regexp (it's arbitrary
// bytes); parseCharstringNames only uses this to find where each entry
// starts and how many raw bytes to skip.
var charstringEntry = regexp.MustCompile(`/(\S+)\s+(\d+)\s+(RD|-\|)[ ]`)

// parseCharstringNames walks the decrypted eexec segment and returns every
// glyph name defined in its /CharStrings dict, in definition order. Each
// entry has the form "/name length RD <length raw bytes> ND" (or the
// "-|"/"|-" operator aliases); the name's position in this list becomes its
// synthetic GID, since Type1 programs carry no glyph-index table of their
// own.
func parseCharstringNames(data []byte) []textencoding.GlyphName {
	idx := bytes.Index(data, []byte("/CharStrings"))
	if idx < 0 {
		return nil
	}
	data = data[idx:]
	if i := bytes.Index(data, []byte("begin")); i >= 0 {
		data = data[i+len("begin"):]
	}

	var names []textencoding.GlyphName
	for {
		loc := charstringEntry.FindSubmatchIndex(data)
		if loc == nil {
			break
		}
		name := string(data[loc[2]:loc[3]])
		length, err := strconv.Atoi(string(data[loc[4]:loc[5]]))
		if err != nil {
			break
		}
		bodyStart := loc[1]
		if bodyStart+length > len(data) {
			break
		}
		names = append(names, textencoding.GlyphName(name))
		data = data[bodyStart+length:]
	}
	return names
}

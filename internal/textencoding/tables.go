/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// Byte-to-rune tables for the simple encodings named in PDF32000-1:2008
// Annex D. WinAnsiEncoding, SymbolEncoding and ZapfDingbatsEncoding below are
// transcribed from the glyph-list generator data bundled with this package's
// test corpus; StandardEncoding and MacRomanEncoding reproduce Annex D's
// Latin-text tables; MacExpertEncoding covers the subset of Expert glyphs
// simple-font resources actually reference (fractions and punctuation)
// rather than its full specialty-ligature complement.

func init() {
	RegisterSimpleEncoding("StandardEncoding", newSimpleMapping("StandardEncoding", standardEncoding).NewEncoder)
	RegisterSimpleEncoding("WinAnsiEncoding", newSimpleMapping("WinAnsiEncoding", winAnsiEncoding).NewEncoder)
	RegisterSimpleEncoding("MacRomanEncoding", newSimpleMapping("MacRomanEncoding", macRomanEncoding).NewEncoder)
	RegisterSimpleEncoding("MacExpertEncoding", newSimpleMapping("MacExpertEncoding", macExpertEncoding).NewEncoder)
	RegisterSimpleEncoding("SymbolEncoding", newSimpleMapping("SymbolEncoding", symbolEncoding).NewEncoder)
	RegisterSimpleEncoding("ZapfDingbatsEncoding", newSimpleMapping("ZapfDingbatsEncoding", zapfDingbatsEncoding).NewEncoder)
}

// standardEncoding is Adobe's StandardEncoding (PDF32000-1:2008 Annex D.2).
var standardEncoding = map[byte]rune{
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#',
	0x24: '$', 0x25: '%', 0x26: '&', 0x27: '’',
	0x28: '(', 0x29: ')', 0x2a: '*', 0x2b: '+',
	0x2c: ',', 0x2d: '-', 0x2e: '.', 0x2f: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3',
	0x34: '4', 0x35: '5', 0x36: '6', 0x37: '7',
	0x38: '8', 0x39: '9', 0x3a: ':', 0x3b: ';',
	0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C',
	0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K',
	0x4c: 'L', 0x4d: 'M', 0x4e: 'N', 0x4f: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S',
	0x54: 'T', 0x55: 'U', 0x56: 'V', 0x57: 'W',
	0x58: 'X', 0x59: 'Y', 0x5a: 'Z', 0x5b: '[',
	0x5c: '\\', 0x5d: ']', 0x5e: '^', 0x5f: '_',
	0x60: '‘', 0x61: 'a', 0x62: 'b', 0x63: 'c',
	0x64: 'd', 0x65: 'e', 0x66: 'f', 0x67: 'g',
	0x68: 'h', 0x69: 'i', 0x6a: 'j', 0x6b: 'k',
	0x6c: 'l', 0x6d: 'm', 0x6e: 'n', 0x6f: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's',
	0x74: 't', 0x75: 'u', 0x76: 'v', 0x77: 'w',
	0x78: 'x', 0x79: 'y', 0x7a: 'z', 0x7b: '{',
	0x7c: '|', 0x7d: '}', 0x7e: '~',
	0xa1: '¡', 0xa2: '¢', 0xa3: '£', 0xa4: '⁄',
	0xa5: '¥', 0xa6: 'ƒ', 0xa7: '§', 0xa8: '¤',
	0xaa: '“', 0xab: '«', 0xac: '‹',
	0xad: '›', 0xae: 'ﬁ', 0xaf: 'ﬂ',
	0xb1: '–', 0xb2: '†', 0xb3: '‡', 0xb4: '·',
	0xb6: '¶', 0xb7: '•', 0xb8: '‚', 0xb9: '„',
	0xba: '”', 0xbb: '»', 0xbc: '…', 0xbd: '‰',
	0xbf: '¿',
	0xc1: '`', 0xc2: '´', 0xc3: 'ˆ', 0xc4: '˜',
	0xc5: '¯', 0xc6: '˘', 0xc7: '˙', 0xc8: '¨',
	0xca: '˚', 0xcb: '¸', 0xcd: '˝', 0xce: '˛',
	0xcf: 'ˇ',
	0xd0: '—', 0xe1: 'Æ', 0xe3: 'ª', 0xe8: 'Ł',
	0xe9: 'Ø', 0xea: 'Œ', 0xeb: 'º', 0xf1: 'æ',
	0xf5: 'ı', 0xf8: 'ł', 0xf9: 'ø', 0xfa: 'œ',
	0xfb: 'ß',
}

// macRomanEncoding is the classic Macintosh Roman encoding (PDF32000-1:2008
// Annex D.2), used by Type1 fonts with no explicit Encoding entry on a Mac.
var macRomanEncoding = map[byte]rune{
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#',
	0x24: '$', 0x25: '%', 0x26: '&', 0x27: '\'',
	0x28: '(', 0x29: ')', 0x2a: '*', 0x2b: '+',
	0x2c: ',', 0x2d: '-', 0x2e: '.', 0x2f: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3',
	0x34: '4', 0x35: '5', 0x36: '6', 0x37: '7',
	0x38: '8', 0x39: '9', 0x3a: ':', 0x3b: ';',
	0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C',
	0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K',
	0x4c: 'L', 0x4d: 'M', 0x4e: 'N', 0x4f: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S',
	0x54: 'T', 0x55: 'U', 0x56: 'V', 0x57: 'W',
	0x58: 'X', 0x59: 'Y', 0x5a: 'Z', 0x5b: '[',
	0x5c: '\\', 0x5d: ']', 0x5e: '^', 0x5f: '_',
	0x60: '`', 0x61: 'a', 0x62: 'b', 0x63: 'c',
	0x64: 'd', 0x65: 'e', 0x66: 'f', 0x67: 'g',
	0x68: 'h', 0x69: 'i', 0x6a: 'j', 0x6b: 'k',
	0x6c: 'l', 0x6d: 'm', 0x6e: 'n', 0x6f: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's',
	0x74: 't', 0x75: 'u', 0x76: 'v', 0x77: 'w',
	0x78: 'x', 0x79: 'y', 0x7a: 'z', 0x7b: '{',
	0x7c: '|', 0x7d: '}', 0x7e: '~',
	0x80: 'Ä', 0x81: 'Å', 0x82: 'Ç', 0x83: 'É',
	0x84: 'Ñ', 0x85: 'Ö', 0x86: 'Ü', 0x87: 'á',
	0x88: 'à', 0x89: 'â', 0x8a: 'ä', 0x8b: 'ã',
	0x8c: 'å', 0x8d: 'ç', 0x8e: 'é', 0x8f: 'è',
	0x90: 'ê', 0x91: 'ë', 0x92: 'í', 0x93: 'ì',
	0x94: 'î', 0x95: 'ï', 0x96: 'ñ', 0x97: 'ó',
	0x98: 'ò', 0x99: 'ô', 0x9a: 'ö', 0x9b: 'õ',
	0x9c: 'ú', 0x9d: 'ù', 0x9e: 'û', 0x9f: 'ü',
	0xa0: '†', 0xa1: '°', 0xa2: '¢', 0xa3: '£',
	0xa4: '§', 0xa5: '•', 0xa6: '¶', 0xa7: 'ß',
	0xa8: '®', 0xa9: '©', 0xaa: '™', 0xab: '´',
	0xac: '¨', 0xad: '≠', 0xae: 'Æ', 0xaf: 'Ø',
	0xb0: '∞', 0xb1: '±', 0xb2: '≤', 0xb3: '≥',
	0xb4: '¥', 0xb5: 'µ', 0xb6: '∂', 0xb7: '∑',
	0xb8: '∏', 0xb9: 'π', 0xba: '∫', 0xbb: 'ª',
	0xbc: 'º', 0xbd: 'Ω', 0xbe: 'æ', 0xbf: 'ø',
	0xc0: '¿', 0xc1: '¡', 0xc2: '¬', 0xc3: '√',
	0xc4: 'ƒ', 0xc5: '≈', 0xc6: '∆', 0xc7: '«',
	0xc8: '»', 0xc9: '…', 0xca: ' ', 0xcb: 'À',
	0xcc: 'Ã', 0xcd: 'Õ', 0xce: 'Œ', 0xcf: 'œ',
	0xd0: '–', 0xd1: '—', 0xd2: '“', 0xd3: '”',
	0xd4: '‘', 0xd5: '’', 0xd6: '÷', 0xd7: '◊',
	0xd8: 'ÿ', 0xd9: 'Ÿ', 0xda: '⁄', 0xdb: '€',
	0xdc: '‹', 0xdd: '›', 0xde: 'ﬁ', 0xdf: 'ﬂ',
	0xe0: '‡', 0xe1: '·', 0xe2: '‚', 0xe3: '„',
	0xe4: '‰', 0xe5: 'Â', 0xe6: 'Ê', 0xe7: 'Á',
	0xe8: 'Ë', 0xe9: 'È', 0xea: 'Í', 0xeb: 'Î',
	0xec: 'Ï', 0xed: 'Ì', 0xee: 'Ó', 0xef: 'Ô',
	0xf1: 'Ò', 0xf2: 'Ú', 0xf3: 'Û', 0xf4: 'Ù',
	0xf5: 'ı', 0xf6: 'ˆ', 0xf7: '˜', 0xf8: '¯',
	0xf9: '˘', 0xfa: '˙', 0xfb: '˚', 0xfc: '¸',
	0xfd: '˝', 0xfe: '˛', 0xff: 'ˇ',
}

// macExpertEncoding covers the glyph names simple-font resources commonly
// reference from Adobe's Expert encoding: figure punctuation and fractions.
// The full small-caps/old-style-figure glyph complement has no single-rune
// Unicode equivalent and is not reproduced here (see DESIGN.md).
var macExpertEncoding = map[byte]rune{
	0x20: ' ',
	0x28: '⁽', // parenleftsuperior
	0x29: '⁾', // parenrightsuperior
	0x2c: ',',
	0x2d: '-',
	0x2e: '.',
	0x2f: '⁄', // fraction
	0x3a: ':',
	0x3b: ';',
	0x3f: '?',
}

var winAnsiEncoding = map[byte]rune{
	0x20: '\u0020', // space
	0x21: '\u0021', // exclam
	0x22: '\u0022', // quotedbl
	0x23: '\u0023', // numbersign
	0x24: '\u0024', // dollar
	0x25: '\u0025', // percent
	0x26: '\u0026', // ampersand
	0x27: '\u0027', // quotesingle
	0x28: '\u0028', // parenleft
	0x29: '\u0029', // parenright
	0x2a: '\u002a', // asterisk
	0x2b: '\u002b', // plus
	0x2c: '\u002c', // comma
	0x2d: '\u002d', // hyphen
	0x2e: '\u002e', // period
	0x2f: '\u002f', // slash
	0x30: '\u0030', // zero
	0x31: '\u0031', // one
	0x32: '\u0032', // two
	0x33: '\u0033', // three
	0x34: '\u0034', // four
	0x35: '\u0035', // five
	0x36: '\u0036', // six
	0x37: '\u0037', // seven
	0x38: '\u0038', // eight
	0x39: '\u0039', // nine
	0x3a: '\u003a', // colon
	0x3b: '\u003b', // semicolon
	0x3c: '\u003c', // less
	0x3d: '\u003d', // equal
	0x3e: '\u003e', // greater
	0x3f: '\u003f', // question
	0x40: '\u0040', // at
	0x41: '\u0041', // A
	0x42: '\u0042', // B
	0x43: '\u0043', // C
	0x44: '\u0044', // D
	0x45: '\u0045', // E
	0x46: '\u0046', // F
	0x47: '\u0047', // G
	0x48: '\u0048', // H
	0x49: '\u0049', // I
	0x4a: '\u004a', // J
	0x4b: '\u004b', // K
	0x4c: '\u004c', // L
	0x4d: '\u004d', // M
	0x4e: '\u004e', // N
	0x4f: '\u004f', // O
	0x50: '\u0050', // P
	0x51: '\u0051', // Q
	0x52: '\u0052', // R
	0x53: '\u0053', // S
	0x54: '\u0054', // T
	0x55: '\u0055', // U
	0x56: '\u0056', // V
	0x57: '\u0057', // W
	0x58: '\u0058', // X
	0x59: '\u0059', // Y
	0x5a: '\u005a', // Z
	0x5b: '\u005b', // bracketleft
	0x5c: '\u005c', // backslash
	0x5d: '\u005d', // bracketright
	0x5e: '\u005e', // asciicircum
	0x5f: '\u005f', // underscore
	0x60: '\u0060', // grave
	0x61: '\u0061', // a
	0x62: '\u0062', // b
	0x63: '\u0063', // c
	0x64: '\u0064', // d
	0x65: '\u0065', // e
	0x66: '\u0066', // f
	0x67: '\u0067', // g
	0x68: '\u0068', // h
	0x69: '\u0069', // i
	0x6a: '\u006a', // j
	0x6b: '\u006b', // k
	0x6c: '\u006c', // l
	0x6d: '\u006d', // m
	0x6e: '\u006e', // n
	0x6f: '\u006f', // o
	0x70: '\u0070', // p
	0x71: '\u0071', // q
	0x72: '\u0072', // r
	0x73: '\u0073', // s
	0x74: '\u0074', // t
	0x75: '\u0075', // u
	0x76: '\u0076', // v
	0x77: '\u0077', // w
	0x78: '\u0078', // x
	0x79: '\u0079', // y
	0x7a: '\u007a', // z
	0x7b: '\u007b', // braceleft
	0x7c: '\u007c', // bar
	0x7d: '\u007d', // braceright
	0x7e: '\u007e', // asciitilde
	0x7f: '\u2022', // bullet
	0x80: '\u20ac', // Euro
	0x81: '\u2022', // bullet
	0x82: '\u201a', // quotesinglbase
	0x83: '\u0192', // florin
	0x84: '\u201e', // quotedblbase
	0x85: '\u2026', // ellipsis
	0x86: '\u2020', // dagger
	0x87: '\u2021', // daggerdbl
	0x88: '\u02c6', // circumflex
	0x89: '\u2030', // perthousand
	0x8a: '\u0160', // Scaron
	0x8b: '\u2039', // guilsinglleft
	0x8c: '\u0152', // OE
	0x8d: '\u2022', // bullet
	0x8e: '\u017d', // Zcaron
	0x8f: '\u2022', // bullet
	0x90: '\u2022', // bullet
	0x91: '\u2018', // quoteleft
	0x92: '\u2019', // quoteright
	0x93: '\u201c', // quotedblleft
	0x94: '\u201d', // quotedblright
	0x95: '\u2022', // bullet
	0x96: '\u2013', // endash
	0x97: '\u2014', // emdash
	0x98: '\u02dc', // tilde
	0x99: '\u2122', // trademark
	0x9a: '\u0161', // scaron
	0x9b: '\u203a', // guilsinglright
	0x9c: '\u0153', // oe
	0x9d: '\u2022', // bullet
	0x9e: '\u017e', // zcaron
	0x9f: '\u0178', // Ydieresis
	0xa0: '\u0020', // space
	0xa1: '\u00a1', // exclamdown
	0xa2: '\u00a2', // cent
	0xa3: '\u00a3', // sterling
	0xa4: '\u00a4', // currency
	0xa5: '\u00a5', // yen
	0xa6: '\u00a6', // brokenbar
	0xa7: '\u00a7', // section
	0xa8: '\u00a8', // dieresis
	0xa9: '\u00a9', // copyright
	0xaa: '\u00aa', // ordfeminine
	0xab: '\u00ab', // guillemotleft
	0xac: '\u00ac', // logicalnot
	0xad: '\u002d', // hyphen
	0xae: '\u00ae', // registered
	0xaf: '\u00af', // macron
	0xb0: '\u00b0', // degree
	0xb1: '\u00b1', // plusminus
	0xb2: '\u00b2', // twosuperior
	0xb3: '\u00b3', // threesuperior
	0xb4: '\u00b4', // acute
	0xb5: '\u00b5', // mu
	0xb6: '\u00b6', // paragraph
	0xb7: '\u00b7', // periodcentered
	0xb8: '\u00b8', // cedilla
	0xb9: '\u00b9', // onesuperior
	0xba: '\u00ba', // ordmasculine
	0xbb: '\u00bb', // guillemotright
	0xbc: '\u00bc', // onequarter
	0xbd: '\u00bd', // onehalf
	0xbe: '\u00be', // threequarters
	0xbf: '\u00bf', // questiondown
	0xc0: '\u00c0', // Agrave
	0xc1: '\u00c1', // Aacute
	0xc2: '\u00c2', // Acircumflex
	0xc3: '\u00c3', // Atilde
	0xc4: '\u00c4', // Adieresis
	0xc5: '\u00c5', // Aring
	0xc6: '\u00c6', // AE
	0xc7: '\u00c7', // Ccedilla
	0xc8: '\u00c8', // Egrave
	0xc9: '\u00c9', // Eacute
	0xca: '\u00ca', // Ecircumflex
	0xcb: '\u00cb', // Edieresis
	0xcc: '\u00cc', // Igrave
	0xcd: '\u00cd', // Iacute
	0xce: '\u00ce', // Icircumflex
	0xcf: '\u00cf', // Idieresis
	0xd0: '\u00d0', // Eth
	0xd1: '\u00d1', // Ntilde
	0xd2: '\u00d2', // Ograve
	0xd3: '\u00d3', // Oacute
	0xd4: '\u00d4', // Ocircumflex
	0xd5: '\u00d5', // Otilde
	0xd6: '\u00d6', // Odieresis
	0xd7: '\u00d7', // multiply
	0xd8: '\u00d8', // Oslash
	0xd9: '\u00d9', // Ugrave
	0xda: '\u00da', // Uacute
	0xdb: '\u00db', // Ucircumflex
	0xdc: '\u00dc', // Udieresis
	0xdd: '\u00dd', // Yacute
	0xde: '\u00de', // Thorn
	0xdf: '\u00df', // germandbls
	0xe0: '\u00e0', // agrave
	0xe1: '\u00e1', // aacute
	0xe2: '\u00e2', // acircumflex
	0xe3: '\u00e3', // atilde
	0xe4: '\u00e4', // adieresis
	0xe5: '\u00e5', // aring
	0xe6: '\u00e6', // ae
	0xe7: '\u00e7', // ccedilla
	0xe8: '\u00e8', // egrave
	0xe9: '\u00e9', // eacute
	0xea: '\u00ea', // ecircumflex
	0xeb: '\u00eb', // edieresis
	0xec: '\u00ec', // igrave
	0xed: '\u00ed', // iacute
	0xee: '\u00ee', // icircumflex
	0xef: '\u00ef', // idieresis
	0xf0: '\u00f0', // eth
	0xf1: '\u00f1', // ntilde
	0xf2: '\u00f2', // ograve
	0xf3: '\u00f3', // oacute
	0xf4: '\u00f4', // ocircumflex
	0xf5: '\u00f5', // otilde
	0xf6: '\u00f6', // odieresis
	0xf7: '\u00f7', // divide
	0xf8: '\u00f8', // oslash
	0xf9: '\u00f9', // ugrave
	0xfa: '\u00fa', // uacute
	0xfb: '\u00fb', // ucircumflex
	0xfc: '\u00fc', // udieresis
	0xfd: '\u00fd', // yacute
	0xfe: '\u00fe', // thorn
	0xff: '\u00ff', // ydieresis
}

var symbolEncoding = map[byte]rune{
	0x20: '\u0020', // space
	0x21: '\u0021', // exclam
	0x22: '\u2200', // universal
	0x23: '\u0023', // numbersign
	0x24: '\u2203', // existential
	0x25: '\u0025', // percent
	0x26: '\u0026', // ampersand
	0x27: '\u220b', // suchthat
	0x28: '\u0028', // parenleft
	0x29: '\u0029', // parenright
	0x2a: '\u2217', // asteriskmath
	0x2b: '\u002b', // plus
	0x2c: '\u002c', // comma
	0x2d: '\u2212', // minus
	0x2e: '\u002e', // period
	0x2f: '\u002f', // slash
	0x30: '\u0030', // zero
	0x31: '\u0031', // one
	0x32: '\u0032', // two
	0x33: '\u0033', // three
	0x34: '\u0034', // four
	0x35: '\u0035', // five
	0x36: '\u0036', // six
	0x37: '\u0037', // seven
	0x38: '\u0038', // eight
	0x39: '\u0039', // nine
	0x3a: '\u003a', // colon
	0x3b: '\u003b', // semicolon
	0x3c: '\u003c', // less
	0x3d: '\u003d', // equal
	0x3e: '\u003e', // greater
	0x3f: '\u003f', // question
	0x40: '\u2245', // congruent
	0x41: '\u0391', // Alpha
	0x42: '\u0392', // Beta
	0x43: '\u03a7', // Chi
	0x44: '\u2206', // Delta
	0x45: '\u0395', // Epsilon
	0x46: '\u03a6', // Phi
	0x47: '\u0393', // Gamma
	0x48: '\u0397', // Eta
	0x49: '\u0399', // Iota
	0x4a: '\u03d1', // theta1
	0x4b: '\u039a', // Kappa
	0x4c: '\u039b', // Lambda
	0x4d: '\u039c', // Mu
	0x4e: '\u039d', // Nu
	0x4f: '\u039f', // Omicron
	0x50: '\u03a0', // Pi
	0x51: '\u0398', // Theta
	0x52: '\u03a1', // Rho
	0x53: '\u03a3', // Sigma
	0x54: '\u03a4', // Tau
	0x55: '\u03a5', // Upsilon
	0x56: '\u03c2', // sigma1
	0x57: '\u2126', // Omega
	0x58: '\u039e', // Xi
	0x59: '\u03a8', // Psi
	0x5a: '\u0396', // Zeta
	0x5b: '\u005b', // bracketleft
	0x5c: '\u2234', // therefore
	0x5d: '\u005d', // bracketright
	0x5e: '\u22a5', // perpendicular
	0x5f: '\u005f', // underscore
	0x60: '\uf8e5', // radicalex
	0x61: '\u03b1', // alpha
	0x62: '\u03b2', // beta
	0x63: '\u03c7', // chi
	0x64: '\u03b4', // delta
	0x65: '\u03b5', // epsilon
	0x66: '\u03c6', // phi
	0x67: '\u03b3', // gamma
	0x68: '\u03b7', // eta
	0x69: '\u03b9', // iota
	0x6a: '\u03d5', // phi1
	0x6b: '\u03ba', // kappa
	0x6c: '\u03bb', // lambda
	0x6d: '\u00b5', // mu
	0x6e: '\u03bd', // nu
	0x6f: '\u03bf', // omicron
	0x70: '\u03c0', // pi
	0x71: '\u03b8', // theta
	0x72: '\u03c1', // rho
	0x73: '\u03c3', // sigma
	0x74: '\u03c4', // tau
	0x75: '\u03c5', // upsilon
	0x76: '\u03d6', // omega1
	0x77: '\u03c9', // omega
	0x78: '\u03be', // xi
	0x79: '\u03c8', // psi
	0x7a: '\u03b6', // zeta
	0x7b: '\u007b', // braceleft
	0x7c: '\u007c', // bar
	0x7d: '\u007d', // braceright
	0x7e: '\u223c', // similar
	0xa0: '\u20ac', // Euro
	0xa1: '\u03d2', // Upsilon1
	0xa2: '\u2032', // minute
	0xa3: '\u2264', // lessequal
	0xa4: '\u2044', // fraction
	0xa5: '\u221e', // infinity
	0xa6: '\u0192', // florin
	0xa7: '\u2663', // club
	0xa8: '\u2666', // diamond
	0xa9: '\u2665', // heart
	0xaa: '\u2660', // spade
	0xab: '\u2194', // arrowboth
	0xac: '\u2190', // arrowleft
	0xad: '\u2191', // arrowup
	0xae: '\u2192', // arrowright
	0xaf: '\u2193', // arrowdown
	0xb0: '\u00b0', // degree
	0xb1: '\u00b1', // plusminus
	0xb2: '\u2033', // second
	0xb3: '\u2265', // greaterequal
	0xb4: '\u00d7', // multiply
	0xb5: '\u221d', // proportional
	0xb6: '\u2202', // partialdiff
	0xb7: '\u2022', // bullet
	0xb8: '\u00f7', // divide
	0xb9: '\u2260', // notequal
	0xba: '\u2261', // equivalence
	0xbb: '\u2248', // approxequal
	0xbc: '\u2026', // ellipsis
	0xbd: '\uf8e6', // arrowvertex
	0xbe: '\uf8e7', // arrowhorizex
	0xbf: '\u21b5', // carriagereturn
	0xc0: '\u2135', // aleph
	0xc1: '\u2111', // Ifraktur
	0xc2: '\u211c', // Rfraktur
	0xc3: '\u2118', // weierstrass
	0xc4: '\u2297', // circlemultiply
	0xc5: '\u2295', // circleplus
	0xc6: '\u2205', // emptyset
	0xc7: '\u2229', // intersection
	0xc8: '\u222a', // union
	0xc9: '\u2283', // propersuperset
	0xca: '\u2287', // reflexsuperset
	0xcb: '\u2284', // notsubset
	0xcc: '\u2282', // propersubset
	0xcd: '\u2286', // reflexsubset
	0xce: '\u2208', // element
	0xcf: '\u2209', // notelement
	0xd0: '\u2220', // angle
	0xd1: '\u2207', // gradient
	0xd2: '\uf6da', // registerserif
	0xd3: '\uf6d9', // copyrightserif
	0xd4: '\uf6db', // trademarkserif
	0xd5: '\u220f', // product
	0xd6: '\u221a', // radical
	0xd7: '\u22c5', // dotmath
	0xd8: '\u00ac', // logicalnot
	0xd9: '\u2227', // logicaland
	0xda: '\u2228', // logicalor
	0xdb: '\u21d4', // arrowdblboth
	0xdc: '\u21d0', // arrowdblleft
	0xdd: '\u21d1', // arrowdblup
	0xde: '\u21d2', // arrowdblright
	0xdf: '\u21d3', // arrowdbldown
	0xe0: '\u25ca', // lozenge
	0xe1: '\u2329', // angleleft
	0xe2: '\uf8e8', // registersans
	0xe3: '\uf8e9', // copyrightsans
	0xe4: '\uf8ea', // trademarksans
	0xe5: '\u2211', // summation
	0xe6: '\uf8eb', // parenlefttp
	0xe7: '\uf8ec', // parenleftex
	0xe8: '\uf8ed', // parenleftbt
	0xe9: '\uf8ee', // bracketlefttp
	0xea: '\uf8ef', // bracketleftex
	0xeb: '\uf8f0', // bracketleftbt
	0xec: '\uf8f1', // bracelefttp
	0xed: '\uf8f2', // braceleftmid
	0xee: '\uf8f3', // braceleftbt
	0xef: '\uf8f4', // braceex
	0xf1: '\u232a', // angleright
	0xf2: '\u222b', // integral
	0xf3: '\u2320', // integraltp
	0xf4: '\uf8f5', // integralex
	0xf5: '\u2321', // integralbt
	0xf6: '\uf8f6', // parenrighttp
	0xf7: '\uf8f7', // parenrightex
	0xf8: '\uf8f8', // parenrightbt
	0xf9: '\uf8f9', // bracketrighttp
	0xfa: '\uf8fa', // bracketrightex
	0xfb: '\uf8fb', // bracketrightbt
	0xfc: '\uf8fc', // bracerighttp
	0xfd: '\uf8fd', // bracerightmid
	0xfe: '\uf8fe', // bracerightbt
}

var zapfDingbatsEncoding = map[byte]rune{
	0x20: '\u0020', // space
	0x21: '\u2701', // a1
	0x22: '\u2702', // a2
	0x23: '\u2703', // a202
	0x24: '\u2704', // a3
	0x25: '\u260e', // a4
	0x26: '\u2706', // a5
	0x27: '\u2707', // a119
	0x28: '\u2708', // a118
	0x29: '\u2709', // a117
	0x2a: '\u261b', // a11
	0x2b: '\u261e', // a12
	0x2c: '\u270c', // a13
	0x2d: '\u270d', // a14
	0x2e: '\u270e', // a15
	0x2f: '\u270f', // a16
	0x30: '\u2710', // a105
	0x31: '\u2711', // a17
	0x32: '\u2712', // a18
	0x33: '\u2713', // a19
	0x34: '\u2714', // a20
	0x35: '\u2715', // a21
	0x36: '\u2716', // a22
	0x37: '\u2717', // a23
	0x38: '\u2718', // a24
	0x39: '\u2719', // a25
	0x3a: '\u271a', // a26
	0x3b: '\u271b', // a27
	0x3c: '\u271c', // a28
	0x3d: '\u271d', // a6
	0x3e: '\u271e', // a7
	0x3f: '\u271f', // a8
	0x40: '\u2720', // a9
	0x41: '\u2721', // a10
	0x42: '\u2722', // a29
	0x43: '\u2723', // a30
	0x44: '\u2724', // a31
	0x45: '\u2725', // a32
	0x46: '\u2726', // a33
	0x47: '\u2727', // a34
	0x48: '\u2605', // a35
	0x49: '\u2729', // a36
	0x4a: '\u272a', // a37
	0x4b: '\u272b', // a38
	0x4c: '\u272c', // a39
	0x4d: '\u272d', // a40
	0x4e: '\u272e', // a41
	0x4f: '\u272f', // a42
	0x50: '\u2730', // a43
	0x51: '\u2731', // a44
	0x52: '\u2732', // a45
	0x53: '\u2733', // a46
	0x54: '\u2734', // a47
	0x55: '\u2735', // a48
	0x56: '\u2736', // a49
	0x57: '\u2737', // a50
	0x58: '\u2738', // a51
	0x59: '\u2739', // a52
	0x5a: '\u273a', // a53
	0x5b: '\u273b', // a54
	0x5c: '\u273c', // a55
	0x5d: '\u273d', // a56
	0x5e: '\u273e', // a57
	0x5f: '\u273f', // a58
	0x60: '\u2740', // a59
	0x61: '\u2741', // a60
	0x62: '\u2742', // a61
	0x63: '\u2743', // a62
	0x64: '\u2744', // a63
	0x65: '\u2745', // a64
	0x66: '\u2746', // a65
	0x67: '\u2747', // a66
	0x68: '\u2748', // a67
	0x69: '\u2749', // a68
	0x6a: '\u274a', // a69
	0x6b: '\u274b', // a70
	0x6c: '\u25cf', // a71
	0x6d: '\u274d', // a72
	0x6e: '\u25a0', // a73
	0x6f: '\u274f', // a74
	0x70: '\u2750', // a203
	0x71: '\u2751', // a75
	0x72: '\u2752', // a204
	0x73: '\u25b2', // a76
	0x74: '\u25bc', // a77
	0x75: '\u25c6', // a78
	0x76: '\u2756', // a79
	0x77: '\u25d7', // a81
	0x78: '\u2758', // a82
	0x79: '\u2759', // a83
	0x7a: '\u275a', // a84
	0x7b: '\u275b', // a97
	0x7c: '\u275c', // a98
	0x7d: '\u275d', // a99
	0x7e: '\u275e', // a100
	0x80: '\uf8d7', // a89
	0x81: '\uf8d8', // a90
	0x82: '\uf8d9', // a93
	0x83: '\uf8da', // a94
	0x84: '\uf8db', // a91
	0x85: '\uf8dc', // a92
	0x86: '\uf8dd', // a205
	0x87: '\uf8de', // a85
	0x88: '\uf8df', // a206
	0x89: '\uf8e0', // a86
	0x8a: '\uf8e1', // a87
	0x8b: '\uf8e2', // a88
	0x8c: '\uf8e3', // a95
	0x8d: '\uf8e4', // a96
	0xa1: '\u2761', // a101
	0xa2: '\u2762', // a102
	0xa3: '\u2763', // a103
	0xa4: '\u2764', // a104
	0xa5: '\u2765', // a106
	0xa6: '\u2766', // a107
	0xa7: '\u2767', // a108
	0xa8: '\u2663', // a112
	0xa9: '\u2666', // a111
	0xaa: '\u2665', // a110
	0xab: '\u2660', // a109
	0xac: '\u2460', // a120
	0xad: '\u2461', // a121
	0xae: '\u2462', // a122
	0xaf: '\u2463', // a123
	0xb0: '\u2464', // a124
	0xb1: '\u2465', // a125
	0xb2: '\u2466', // a126
	0xb3: '\u2467', // a127
	0xb4: '\u2468', // a128
	0xb5: '\u2469', // a129
	0xb6: '\u2776', // a130
	0xb7: '\u2777', // a131
	0xb8: '\u2778', // a132
	0xb9: '\u2779', // a133
	0xba: '\u277a', // a134
	0xbb: '\u277b', // a135
	0xbc: '\u277c', // a136
	0xbd: '\u277d', // a137
	0xbe: '\u277e', // a138
	0xbf: '\u277f', // a139
	0xc0: '\u2780', // a140
	0xc1: '\u2781', // a141
	0xc2: '\u2782', // a142
	0xc3: '\u2783', // a143
	0xc4: '\u2784', // a144
	0xc5: '\u2785', // a145
	0xc6: '\u2786', // a146
	0xc7: '\u2787', // a147
	0xc8: '\u2788', // a148
	0xc9: '\u2789', // a149
	0xca: '\u278a', // a150
	0xcb: '\u278b', // a151
	0xcc: '\u278c', // a152
	0xcd: '\u278d', // a153
	0xce: '\u278e', // a154
	0xcf: '\u278f', // a155
	0xd0: '\u2790', // a156
	0xd1: '\u2791', // a157
	0xd2: '\u2792', // a158
	0xd3: '\u2793', // a159
	0xd4: '\u2794', // a160
	0xd5: '\u2192', // a161
	0xd6: '\u2194', // a163
	0xd7: '\u2195', // a164
	0xd8: '\u2798', // a196
	0xd9: '\u2799', // a165
	0xda: '\u279a', // a192
	0xdb: '\u279b', // a166
	0xdc: '\u279c', // a167
	0xdd: '\u279d', // a168
	0xde: '\u279e', // a169
	0xdf: '\u279f', // a170
	0xe0: '\u27a0', // a171
	0xe1: '\u27a1', // a172
	0xe2: '\u27a2', // a173
	0xe3: '\u27a3', // a162
	0xe4: '\u27a4', // a174
	0xe5: '\u27a5', // a175
	0xe6: '\u27a6', // a176
	0xe7: '\u27a7', // a177
	0xe8: '\u27a8', // a178
	0xe9: '\u27a9', // a179
	0xea: '\u27aa', // a193
	0xeb: '\u27ab', // a180
	0xec: '\u27ac', // a199
	0xed: '\u27ad', // a181
	0xee: '\u27ae', // a200
	0xef: '\u27af', // a182
	0xf1: '\u27b1', // a201
	0xf2: '\u27b2', // a183
	0xf3: '\u27b3', // a184
	0xf4: '\u27b4', // a197
	0xf5: '\u27b5', // a185
	0xf6: '\u27b6', // a194
	0xf7: '\u27b7', // a198
	0xf8: '\u27b8', // a186
	0xf9: '\u27b9', // a195
	0xfa: '\u27ba', // a187
	0xfb: '\u27bb', // a188
	0xfc: '\u27bc', // a189
	0xfd: '\u27bd', // a190
	0xfe: '\u27be', // a191
}

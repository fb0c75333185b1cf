/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"fmt"
	"strconv"
	"strings"
)

// glyphlistGlyphToRuneMap seeds the Adobe Glyph List lookup used by
// GlyphToRune/RuneToGlyph and by TrueTypeFontEncoder.GlyphToCharcode. It is
// built from the same base-encoding glyph names as StandardEncoding,
// WinAnsiEncoding, SymbolEncoding and ZapfDingbatsEncoding (§9 "AGL";
// grounded in the glyph-list generator's base-encoding tables bundled with
// this package's test corpus). Where more than one glyph name maps to the
// same rune (a Symbol name and a ZapfDingbats "aNNN" name, e.g. "club" and
// "a112"), every name keeps its own glyph->rune entry and the Symbol name is
// the one RuneToGlyph returns.
var glyphlistGlyphToRuneMap = map[GlyphName]rune{
	"space": '\u0020',
	"exclam": '\u0021',
	"universal": '\u2200',
	"numbersign": '\u0023',
	"existential": '\u2203',
	"percent": '\u0025',
	"ampersand": '\u0026',
	"suchthat": '\u220b',
	"parenleft": '\u0028',
	"parenright": '\u0029',
	"asteriskmath": '\u2217',
	"plus": '\u002b',
	"comma": '\u002c',
	"minus": '\u2212',
	"period": '\u002e',
	"slash": '\u002f',
	"zero": '\u0030',
	"one": '\u0031',
	"two": '\u0032',
	"three": '\u0033',
	"four": '\u0034',
	"five": '\u0035',
	"six": '\u0036',
	"seven": '\u0037',
	"eight": '\u0038',
	"nine": '\u0039',
	"colon": '\u003a',
	"semicolon": '\u003b',
	"less": '\u003c',
	"equal": '\u003d',
	"greater": '\u003e',
	"question": '\u003f',
	"congruent": '\u2245',
	"Alpha": '\u0391',
	"Beta": '\u0392',
	"Chi": '\u03a7',
	"Delta": '\u2206',
	"Epsilon": '\u0395',
	"Phi": '\u03a6',
	"Gamma": '\u0393',
	"Eta": '\u0397',
	"Iota": '\u0399',
	"theta1": '\u03d1',
	"Kappa": '\u039a',
	"Lambda": '\u039b',
	"Mu": '\u039c',
	"Nu": '\u039d',
	"Omicron": '\u039f',
	"Pi": '\u03a0',
	"Theta": '\u0398',
	"Rho": '\u03a1',
	"Sigma": '\u03a3',
	"Tau": '\u03a4',
	"Upsilon": '\u03a5',
	"sigma1": '\u03c2',
	"Omega": '\u2126',
	"Xi": '\u039e',
	"Psi": '\u03a8',
	"Zeta": '\u0396',
	"bracketleft": '\u005b',
	"therefore": '\u2234',
	"bracketright": '\u005d',
	"perpendicular": '\u22a5',
	"underscore": '\u005f',
	"radicalex": '\uf8e5',
	"alpha": '\u03b1',
	"beta": '\u03b2',
	"chi": '\u03c7',
	"delta": '\u03b4',
	"epsilon": '\u03b5',
	"phi": '\u03c6',
	"gamma": '\u03b3',
	"eta": '\u03b7',
	"iota": '\u03b9',
	"phi1": '\u03d5',
	"kappa": '\u03ba',
	"lambda": '\u03bb',
	"mu": '\u00b5',
	"nu": '\u03bd',
	"omicron": '\u03bf',
	"pi": '\u03c0',
	"theta": '\u03b8',
	"rho": '\u03c1',
	"sigma": '\u03c3',
	"tau": '\u03c4',
	"upsilon": '\u03c5',
	"omega1": '\u03d6',
	"omega": '\u03c9',
	"xi": '\u03be',
	"psi": '\u03c8',
	"zeta": '\u03b6',
	"braceleft": '\u007b',
	"bar": '\u007c',
	"braceright": '\u007d',
	"similar": '\u223c',
	"Euro": '\u20ac',
	"Upsilon1": '\u03d2',
	"minute": '\u2032',
	"lessequal": '\u2264',
	"fraction": '\u2044',
	"infinity": '\u221e',
	"florin": '\u0192',
	"club": '\u2663',
	"diamond": '\u2666',
	"heart": '\u2665',
	"spade": '\u2660',
	"arrowboth": '\u2194',
	"arrowleft": '\u2190',
	"arrowup": '\u2191',
	"arrowright": '\u2192',
	"arrowdown": '\u2193',
	"degree": '\u00b0',
	"plusminus": '\u00b1',
	"second": '\u2033',
	"greaterequal": '\u2265',
	"multiply": '\u00d7',
	"proportional": '\u221d',
	"partialdiff": '\u2202',
	"bullet": '\u2022',
	"divide": '\u00f7',
	"notequal": '\u2260',
	"equivalence": '\u2261',
	"approxequal": '\u2248',
	"ellipsis": '\u2026',
	"arrowvertex": '\uf8e6',
	"arrowhorizex": '\uf8e7',
	"carriagereturn": '\u21b5',
	"aleph": '\u2135',
	"Ifraktur": '\u2111',
	"Rfraktur": '\u211c',
	"weierstrass": '\u2118',
	"circlemultiply": '\u2297',
	"circleplus": '\u2295',
	"emptyset": '\u2205',
	"intersection": '\u2229',
	"union": '\u222a',
	"propersuperset": '\u2283',
	"reflexsuperset": '\u2287',
	"notsubset": '\u2284',
	"propersubset": '\u2282',
	"reflexsubset": '\u2286',
	"element": '\u2208',
	"notelement": '\u2209',
	"angle": '\u2220',
	"gradient": '\u2207',
	"registerserif": '\uf6da',
	"copyrightserif": '\uf6d9',
	"trademarkserif": '\uf6db',
	"product": '\u220f',
	"radical": '\u221a',
	"dotmath": '\u22c5',
	"logicalnot": '\u00ac',
	"logicaland": '\u2227',
	"logicalor": '\u2228',
	"arrowdblboth": '\u21d4',
	"arrowdblleft": '\u21d0',
	"arrowdblup": '\u21d1',
	"arrowdblright": '\u21d2',
	"arrowdbldown": '\u21d3',
	"lozenge": '\u25ca',
	"angleleft": '\u2329',
	"registersans": '\uf8e8',
	"copyrightsans": '\uf8e9',
	"trademarksans": '\uf8ea',
	"summation": '\u2211',
	"parenlefttp": '\uf8eb',
	"parenleftex": '\uf8ec',
	"parenleftbt": '\uf8ed',
	"bracketlefttp": '\uf8ee',
	"bracketleftex": '\uf8ef',
	"bracketleftbt": '\uf8f0',
	"bracelefttp": '\uf8f1',
	"braceleftmid": '\uf8f2',
	"braceleftbt": '\uf8f3',
	"braceex": '\uf8f4',
	"angleright": '\u232a',
	"integral": '\u222b',
	"integraltp": '\u2320',
	"integralex": '\uf8f5',
	"integralbt": '\u2321',
	"parenrighttp": '\uf8f6',
	"parenrightex": '\uf8f7',
	"parenrightbt": '\uf8f8',
	"bracketrighttp": '\uf8f9',
	"bracketrightex": '\uf8fa',
	"bracketrightbt": '\uf8fb',
	"bracerighttp": '\uf8fc',
	"bracerightmid": '\uf8fd',
	"bracerightbt": '\uf8fe',
	"quotedbl": '\u0022',
	"dollar": '\u0024',
	"quotesingle": '\u0027',
	"asterisk": '\u002a',
	"hyphen": '\u002d',
	"at": '\u0040',
	"A": '\u0041',
	"B": '\u0042',
	"C": '\u0043',
	"D": '\u0044',
	"E": '\u0045',
	"F": '\u0046',
	"G": '\u0047',
	"H": '\u0048',
	"I": '\u0049',
	"J": '\u004a',
	"K": '\u004b',
	"L": '\u004c',
	"M": '\u004d',
	"N": '\u004e',
	"O": '\u004f',
	"P": '\u0050',
	"Q": '\u0051',
	"R": '\u0052',
	"S": '\u0053',
	"T": '\u0054',
	"U": '\u0055',
	"V": '\u0056',
	"W": '\u0057',
	"X": '\u0058',
	"Y": '\u0059',
	"Z": '\u005a',
	"backslash": '\u005c',
	"asciicircum": '\u005e',
	"grave": '\u0060',
	"a": '\u0061',
	"b": '\u0062',
	"c": '\u0063',
	"d": '\u0064',
	"e": '\u0065',
	"f": '\u0066',
	"g": '\u0067',
	"h": '\u0068',
	"i": '\u0069',
	"j": '\u006a',
	"k": '\u006b',
	"l": '\u006c',
	"m": '\u006d',
	"n": '\u006e',
	"o": '\u006f',
	"p": '\u0070',
	"q": '\u0071',
	"r": '\u0072',
	"s": '\u0073',
	"t": '\u0074',
	"u": '\u0075',
	"v": '\u0076',
	"w": '\u0077',
	"x": '\u0078',
	"y": '\u0079',
	"z": '\u007a',
	"asciitilde": '\u007e',
	"quotesinglbase": '\u201a',
	"quotedblbase": '\u201e',
	"dagger": '\u2020',
	"daggerdbl": '\u2021',
	"circumflex": '\u02c6',
	"perthousand": '\u2030',
	"Scaron": '\u0160',
	"guilsinglleft": '\u2039',
	"OE": '\u0152',
	"Zcaron": '\u017d',
	"quoteleft": '\u2018',
	"quoteright": '\u2019',
	"quotedblleft": '\u201c',
	"quotedblright": '\u201d',
	"endash": '\u2013',
	"emdash": '\u2014',
	"tilde": '\u02dc',
	"trademark": '\u2122',
	"scaron": '\u0161',
	"guilsinglright": '\u203a',
	"oe": '\u0153',
	"zcaron": '\u017e',
	"Ydieresis": '\u0178',
	"exclamdown": '\u00a1',
	"cent": '\u00a2',
	"sterling": '\u00a3',
	"currency": '\u00a4',
	"yen": '\u00a5',
	"brokenbar": '\u00a6',
	"section": '\u00a7',
	"dieresis": '\u00a8',
	"copyright": '\u00a9',
	"ordfeminine": '\u00aa',
	"guillemotleft": '\u00ab',
	"registered": '\u00ae',
	"macron": '\u00af',
	"twosuperior": '\u00b2',
	"threesuperior": '\u00b3',
	"acute": '\u00b4',
	"paragraph": '\u00b6',
	"periodcentered": '\u00b7',
	"cedilla": '\u00b8',
	"onesuperior": '\u00b9',
	"ordmasculine": '\u00ba',
	"guillemotright": '\u00bb',
	"onequarter": '\u00bc',
	"onehalf": '\u00bd',
	"threequarters": '\u00be',
	"questiondown": '\u00bf',
	"Agrave": '\u00c0',
	"Aacute": '\u00c1',
	"Acircumflex": '\u00c2',
	"Atilde": '\u00c3',
	"Adieresis": '\u00c4',
	"Aring": '\u00c5',
	"AE": '\u00c6',
	"Ccedilla": '\u00c7',
	"Egrave": '\u00c8',
	"Eacute": '\u00c9',
	"Ecircumflex": '\u00ca',
	"Edieresis": '\u00cb',
	"Igrave": '\u00cc',
	"Iacute": '\u00cd',
	"Icircumflex": '\u00ce',
	"Idieresis": '\u00cf',
	"Eth": '\u00d0',
	"Ntilde": '\u00d1',
	"Ograve": '\u00d2',
	"Oacute": '\u00d3',
	"Ocircumflex": '\u00d4',
	"Otilde": '\u00d5',
	"Odieresis": '\u00d6',
	"Oslash": '\u00d8',
	"Ugrave": '\u00d9',
	"Uacute": '\u00da',
	"Ucircumflex": '\u00db',
	"Udieresis": '\u00dc',
	"Yacute": '\u00dd',
	"Thorn": '\u00de',
	"germandbls": '\u00df',
	"agrave": '\u00e0',
	"aacute": '\u00e1',
	"acircumflex": '\u00e2',
	"atilde": '\u00e3',
	"adieresis": '\u00e4',
	"aring": '\u00e5',
	"ae": '\u00e6',
	"ccedilla": '\u00e7',
	"egrave": '\u00e8',
	"eacute": '\u00e9',
	"ecircumflex": '\u00ea',
	"edieresis": '\u00eb',
	"igrave": '\u00ec',
	"iacute": '\u00ed',
	"icircumflex": '\u00ee',
	"idieresis": '\u00ef',
	"eth": '\u00f0',
	"ntilde": '\u00f1',
	"ograve": '\u00f2',
	"oacute": '\u00f3',
	"ocircumflex": '\u00f4',
	"otilde": '\u00f5',
	"odieresis": '\u00f6',
	"oslash": '\u00f8',
	"ugrave": '\u00f9',
	"uacute": '\u00fa',
	"ucircumflex": '\u00fb',
	"udieresis": '\u00fc',
	"yacute": '\u00fd',
	"thorn": '\u00fe',
	"ydieresis": '\u00ff',
	"a1": '\u2701',
	"a2": '\u2702',
	"a202": '\u2703',
	"a3": '\u2704',
	"a4": '\u260e',
	"a5": '\u2706',
	"a119": '\u2707',
	"a118": '\u2708',
	"a117": '\u2709',
	"a11": '\u261b',
	"a12": '\u261e',
	"a13": '\u270c',
	"a14": '\u270d',
	"a15": '\u270e',
	"a16": '\u270f',
	"a105": '\u2710',
	"a17": '\u2711',
	"a18": '\u2712',
	"a19": '\u2713',
	"a20": '\u2714',
	"a21": '\u2715',
	"a22": '\u2716',
	"a23": '\u2717',
	"a24": '\u2718',
	"a25": '\u2719',
	"a26": '\u271a',
	"a27": '\u271b',
	"a28": '\u271c',
	"a6": '\u271d',
	"a7": '\u271e',
	"a8": '\u271f',
	"a9": '\u2720',
	"a10": '\u2721',
	"a29": '\u2722',
	"a30": '\u2723',
	"a31": '\u2724',
	"a32": '\u2725',
	"a33": '\u2726',
	"a34": '\u2727',
	"a35": '\u2605',
	"a36": '\u2729',
	"a37": '\u272a',
	"a38": '\u272b',
	"a39": '\u272c',
	"a40": '\u272d',
	"a41": '\u272e',
	"a42": '\u272f',
	"a43": '\u2730',
	"a44": '\u2731',
	"a45": '\u2732',
	"a46": '\u2733',
	"a47": '\u2734',
	"a48": '\u2735',
	"a49": '\u2736',
	"a50": '\u2737',
	"a51": '\u2738',
	"a52": '\u2739',
	"a53": '\u273a',
	"a54": '\u273b',
	"a55": '\u273c',
	"a56": '\u273d',
	"a57": '\u273e',
	"a58": '\u273f',
	"a59": '\u2740',
	"a60": '\u2741',
	"a61": '\u2742',
	"a62": '\u2743',
	"a63": '\u2744',
	"a64": '\u2745',
	"a65": '\u2746',
	"a66": '\u2747',
	"a67": '\u2748',
	"a68": '\u2749',
	"a69": '\u274a',
	"a70": '\u274b',
	"a71": '\u25cf',
	"a72": '\u274d',
	"a73": '\u25a0',
	"a74": '\u274f',
	"a203": '\u2750',
	"a75": '\u2751',
	"a204": '\u2752',
	"a76": '\u25b2',
	"a77": '\u25bc',
	"a78": '\u25c6',
	"a79": '\u2756',
	"a81": '\u25d7',
	"a82": '\u2758',
	"a83": '\u2759',
	"a84": '\u275a',
	"a97": '\u275b',
	"a98": '\u275c',
	"a99": '\u275d',
	"a100": '\u275e',
	"a89": '\uf8d7',
	"a90": '\uf8d8',
	"a93": '\uf8d9',
	"a94": '\uf8da',
	"a91": '\uf8db',
	"a92": '\uf8dc',
	"a205": '\uf8dd',
	"a85": '\uf8de',
	"a206": '\uf8df',
	"a86": '\uf8e0',
	"a87": '\uf8e1',
	"a88": '\uf8e2',
	"a95": '\uf8e3',
	"a96": '\uf8e4',
	"a101": '\u2761',
	"a102": '\u2762',
	"a103": '\u2763',
	"a104": '\u2764',
	"a106": '\u2765',
	"a107": '\u2766',
	"a108": '\u2767',
	"a112": '\u2663',
	"a111": '\u2666',
	"a110": '\u2665',
	"a109": '\u2660',
	"a120": '\u2460',
	"a121": '\u2461',
	"a122": '\u2462',
	"a123": '\u2463',
	"a124": '\u2464',
	"a125": '\u2465',
	"a126": '\u2466',
	"a127": '\u2467',
	"a128": '\u2468',
	"a129": '\u2469',
	"a130": '\u2776',
	"a131": '\u2777',
	"a132": '\u2778',
	"a133": '\u2779',
	"a134": '\u277a',
	"a135": '\u277b',
	"a136": '\u277c',
	"a137": '\u277d',
	"a138": '\u277e',
	"a139": '\u277f',
	"a140": '\u2780',
	"a141": '\u2781',
	"a142": '\u2782',
	"a143": '\u2783',
	"a144": '\u2784',
	"a145": '\u2785',
	"a146": '\u2786',
	"a147": '\u2787',
	"a148": '\u2788',
	"a149": '\u2789',
	"a150": '\u278a',
	"a151": '\u278b',
	"a152": '\u278c',
	"a153": '\u278d',
	"a154": '\u278e',
	"a155": '\u278f',
	"a156": '\u2790',
	"a157": '\u2791',
	"a158": '\u2792',
	"a159": '\u2793',
	"a160": '\u2794',
	"a161": '\u2192',
	"a163": '\u2194',
	"a164": '\u2195',
	"a196": '\u2798',
	"a165": '\u2799',
	"a192": '\u279a',
	"a166": '\u279b',
	"a167": '\u279c',
	"a168": '\u279d',
	"a169": '\u279e',
	"a170": '\u279f',
	"a171": '\u27a0',
	"a172": '\u27a1',
	"a173": '\u27a2',
	"a162": '\u27a3',
	"a174": '\u27a4',
	"a175": '\u27a5',
	"a176": '\u27a6',
	"a177": '\u27a7',
	"a178": '\u27a8',
	"a179": '\u27a9',
	"a193": '\u27aa',
	"a180": '\u27ab',
	"a199": '\u27ac',
	"a181": '\u27ad',
	"a200": '\u27ae',
	"a182": '\u27af',
	"a201": '\u27b1',
	"a183": '\u27b2',
	"a184": '\u27b3',
	"a197": '\u27b4',
	"a185": '\u27b5',
	"a194": '\u27b6',
	"a198": '\u27b7',
	"a186": '\u27b8',
	"a195": '\u27b9',
	"a187": '\u27ba',
	"a188": '\u27bb',
	"a189": '\u27bc',
	"a190": '\u27bd',
	"a191": '\u27be',
}

// glyphAliases maps alternate glyph spellings to an entry already present in
// glyphlistGlyphToRuneMap, for names that differ from the AGL's canonical
// spelling but are common in the wild (PDF producers are not required to
// follow the AGL naming convention exactly).
var glyphAliases = map[GlyphName]GlyphName{
	"nbspace":    "space",
	"nbhyphen":   "hyphen",
	"middledot":  "periodcentered",
}

var glyphlistRuneToGlyphMap = buildRuneToGlyphMap()

func buildRuneToGlyphMap() map[rune]GlyphName {
	m := make(map[rune]GlyphName, len(glyphlistGlyphToRuneMap))
	// Go map iteration order is random, so where two names share a rune the
	// choice is made explicitly: a ZapfDingbats "aNNN" name never replaces
	// another name, and any other name replaces an "aNNN" name.
	isDingbat := func(n GlyphName) bool {
		return len(n) > 1 && n[0] == 'a' && n[1] >= '0' && n[1] <= '9'
	}
	for name, r := range glyphlistGlyphToRuneMap {
		if prev, ok := m[r]; !ok || (isDingbat(prev) && !isDingbat(name)) {
			m[r] = name
		}
	}
	return m
}

// GlyphToRune returns the rune for an AGL (or AGL-like) glyph name. It
// follows the Adobe Glyph List Specification's recommended algorithm: exact
// table match, then alias resolution, then the "uniXXXX"/"uXXXXXX"
// hex-codepoint convention, then a final attempt after stripping a
// dot-suffixed variant tag (e.g. "A.sc" -> "A").
func GlyphToRune(glyph GlyphName) (rune, bool) {
	if r, ok := glyphlistGlyphToRuneMap[glyph]; ok {
		return r, true
	}
	if alias, ok := glyphAliases[glyph]; ok {
		if r, ok := glyphlistGlyphToRuneMap[alias]; ok {
			return r, true
		}
	}
	if r, ok := parseUniGlyphName(glyph); ok {
		return r, true
	}
	if i := strings.IndexByte(string(glyph), '.'); i > 0 {
		return GlyphToRune(glyph[:i])
	}
	return 0, false
}

// RuneToGlyph returns the canonical AGL glyph name for `r`, falling back to
// the "uniXXXX" convention when `r` has no AGL entry (matching the
// uninvertible-fallback behavior IdentityEncoder uses for composite fonts).
func RuneToGlyph(r rune) (GlyphName, bool) {
	if name, ok := glyphlistRuneToGlyphMap[r]; ok {
		return name, true
	}
	if r == ' ' {
		return "space", true
	}
	return GlyphName(fmt.Sprintf("uni%.4X", r)), true
}

// parseUniGlyphName decodes the AGL "uniXXXX" (exactly 4 hex digits) and
// "uXXXXXX" (4-6 hex digits) glyph-name conventions for codepoints with no
// named AGL entry.
func parseUniGlyphName(glyph GlyphName) (rune, bool) {
	s := string(glyph)
	switch {
	case strings.HasPrefix(s, "uni") && len(s) == 7:
		v, err := strconv.ParseUint(s[3:], 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(v), true
	case strings.HasPrefix(s, "u") && len(s) >= 5 && len(s) <= 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(v), true
	}
	return 0, false
}

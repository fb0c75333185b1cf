/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "strings"

// std14Aliases is the process-wide immutable alias matrix for the 14
// standard fonts (§4.2, §9 "Global name-alias table"). Matching strips
// internal spaces from both sides before a case-sensitive comparison.
var std14Aliases = map[string][]string{
	"Courier":               {"CourierNew", "CourierNewPSMT"},
	"Courier-Bold":          {"CourierNew,Bold", "Courier,Bold", "CourierNewPS-BoldMT"},
	"Courier-Oblique":       {"CourierNew,Italic", "Courier,Italic", "CourierNewPS-ItalicMT"},
	"Courier-BoldOblique":   {"CourierNew,BoldItalic", "Courier,BoldItalic", "CourierNewPS-BoldItalicMT"},
	"Helvetica":             {"Arial", "ArialMT"},
	"Helvetica-Bold":        {"Arial,Bold", "Arial-BoldMT"},
	"Helvetica-Oblique":     {"Arial,Italic", "Arial-ItalicMT"},
	"Helvetica-BoldOblique": {"Arial,BoldItalic", "Arial-BoldItalicMT"},
	"Times-Roman":           {"TimesNewRoman", "Times"},
	"Times-Bold":            {"TimesNewRoman,Bold", "Times,Bold"},
	"Times-Italic":          {"TimesNewRoman,Italic", "Times,Italic"},
	"Times-BoldItalic":      {"TimesNewRoman,BoldItalic", "Times,BoldItalic"},
	"Symbol":                {},
	"ZapfDingbats":          {"Wingdings"},
}

var std14AliasLookup map[string]string

func init() {
	std14AliasLookup = make(map[string]string)
	for canonical, aliases := range std14Aliases {
		std14AliasLookup[stripSpaces(canonical)] = canonical
		for _, alias := range aliases {
			std14AliasLookup[stripSpaces(alias)] = canonical
		}
	}
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// CanonicalStdFontName returns the canonical standard-14 name for `name`
// if it (or a space-insensitive variant of it) matches one of the 14
// fonts' canonical name or aliases, else returns `name` unchanged (§4.2).
func CanonicalStdFontName(name string) string {
	if canonical, ok := std14AliasLookup[stripSpaces(name)]; ok {
		return canonical
	}
	return name
}

// IsStd14Name reports whether CanonicalStdFontName would change `name`,
// i.e. a builtin face is available for it.
func IsStd14Name(name string) bool {
	_, ok := std14AliasLookup[stripSpaces(name)]
	return ok
}

// dynaLabMarkers are the substrings that mark a TrueType font name as
// "DynaLab-tricky": these CJK font vendors ship outlines that render
// incorrectly without native hinting (§4.2, §9).
var dynaLabMarkers = []string{"HuaTian", "MingLi", "+DF", "DF", "DLC", "+DLC"}

// IsDynaLabTricky reports whether `name` matches one of the known DynaLab
// marker substrings, requiring the hinting-required hint to be set (§4.4).
func IsDynaLabTricky(name string) bool {
	for _, marker := range dynaLabMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

package usecase

import (
	"regexp"
	"strings"
)

var (
	aliasPattern    = regexp.MustCompile(`\((.*?)\)`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)
)

// DeriveTradingSymbol maps a display name to a trading symbol. A
// parenthesized alias wins ("Tata Consultancy Services (TCS)" -> "TCS");
// otherwise the first whitespace-delimited token is upper-cased and stripped
// of non-alphanumeric characters ("Dr. Reddy's Laboratories" -> "DR").
//
// The heuristic is known to misresolve multi-word names without an alias
// (e.g. "Larsen & Toubro" -> "LARSEN", not "LT"). Such symbols surface as
// catalog lookup misses downstream; derivation itself never fails.
func DeriveTradingSymbol(displayName string) string {
	if m := aliasPattern.FindStringSubmatch(displayName); m != nil {
		return strings.ToUpper(m[1])
	}
	fields := strings.Fields(displayName)
	if len(fields) == 0 {
		return ""
	}
	symbol := strings.ToUpper(fields[0])
	return nonAlphanumeric.ReplaceAllString(symbol, "")
}

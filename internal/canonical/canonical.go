// Package canonical assigns a stable logical name to scattered schedule
// rows that describe the same real-world happening. "FORMULA 1 QATAR
// AIRWAYS BRITISH GRAND PRIX 2026 - Practice 1" and "British GP Race" both
// resolve to "British Grand Prix", which is what the clustering engine
// keys on.
//
// Resolution is data driven: an ordered list of location rules, optionally
// refined by title substrings for countries that host more than one race,
// with a title-suffix extraction fallback for rows whose location never
// matches. New entries are additive; callers can prepend their own rules.
package canonical

import (
	"regexp"
	"strings"

	"github.com/dmoren/sportcal/internal/textfold"
)

// TestSessionName labels off-season test running, which has no circuit
// identity worth disambiguating.
const TestSessionName = "Pre-Season Testing"

// FallbackName is used when a row is worth keeping but carries no usable
// title at all.
const FallbackName = "Event"

// TitleRule refines a location match using a title substring.
type TitleRule struct {
	Match string `yaml:"match"`
	Name  string `yaml:"name"`
}

// LocationRule maps a location substring to a canonical name, optionally
// disambiguated by title before falling back to the rule's own name.
type LocationRule struct {
	Match   string      `yaml:"match"`
	Name    string      `yaml:"name"`
	ByTitle []TitleRule `yaml:"by_title,omitempty"`
}

var (
	// Placeholder rows editors leave behind to hold a date or mark a gap.
	// Dash-only placeholders are handled separately in Resolve, since
	// folding collapses hyphens away before this pattern runs.
	noiseRe = regexp.MustCompile(`^(?:tbd|tbc|n/a|none|off|no (?:race|event|game)s?|placeholder)$`)

	testRe = regexp.MustCompile(`\b(?:pre season )?test(?:ing)?\b`)

	// Trailing session descriptors: "... - Practice 1", "... Sprint
	// Qualifying", "... FP2". Stripping one of these from a title leaves
	// the name of the happening itself.
	sessionSuffixRe = regexp.MustCompile(`(?i)[\s:–-]*(?:(?:sprint\s+)?(?:qualifying|qualification|shootout|race)|practice(?:\s*\d+)?|fp\d+|sprint)\s*$`)

	decorationRe = regexp.MustCompile(`[🏁🏎️⏱️🔥📅•]`)
	yearRe       = regexp.MustCompile(`\s*\b\d{4}\b\s*`)
	formula1Re   = regexp.MustCompile(`(?i)^\s*FORMULA\s*1\s*`)
	sponsorRe    = regexp.MustCompile(`(?i)\b(QATAR AIRWAYS|HEINEKEN|ARAMCO|CRYPTO\.COM|STC|MSC CRUISES|LENOVO|PIRELLI|AWS|ETIHAD AIRWAYS|GULF AIR|LOUIS VUITTON|MOËT & CHANDON|SINGAPORE AIRLINES|TAG HEUER)\b`)
	spacesRe     = regexp.MustCompile(`\s{2,}`)
)

// Clean strips decoration, series prefixes, sponsor names, and bare years
// from a raw title, leaving the human-meaningful part.
func Clean(title string) string {
	t := decorationRe.ReplaceAllString(title, "")
	t = formula1Re.ReplaceAllString(t, "")
	t = yearRe.ReplaceAllString(t, " ")
	t = sponsorRe.ReplaceAllString(t, "")
	t = spacesRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Resolver resolves (location, title) pairs to canonical names.
type Resolver struct {
	rules []LocationRule
}

// NewResolver builds a resolver from the default race-calendar table, with
// extra rules checked first so configuration can override or extend it.
func NewResolver(extra ...LocationRule) *Resolver {
	rules := make([]LocationRule, 0, len(extra)+len(defaultRules))
	rules = append(rules, extra...)
	rules = append(rules, defaultRules...)
	return &Resolver{rules: rules}
}

// Resolve returns the canonical name for a row, or false when the row is
// noise and should be dropped from clustering. Same inputs always produce
// the same output.
func (r *Resolver) Resolve(location, title string) (string, bool) {
	cleaned := Clean(title)
	folded := textfold.Fold(cleaned)

	if folded == "" && strings.TrimSpace(location) == "" {
		return "", false
	}
	if trimmed := strings.TrimSpace(title); trimmed != "" && strings.Trim(trimmed, "-–—") == "" {
		return "", false
	}
	if noiseRe.MatchString(folded) {
		return "", false
	}
	if testRe.MatchString(folded) {
		return TestSessionName, true
	}

	if loc := textfold.Fold(location); loc != "" {
		for _, rule := range r.rules {
			if !strings.Contains(loc, rule.Match) {
				continue
			}
			for _, tr := range rule.ByTitle {
				if strings.Contains(folded, tr.Match) {
					return tr.Name, true
				}
			}
			return rule.Name, true
		}
	}

	// No location match: if the title ends in a recognized session
	// descriptor, everything before it names the happening.
	if stripped := strings.TrimSpace(sessionSuffixRe.ReplaceAllString(cleaned, "")); stripped != "" && stripped != cleaned {
		return stripped, true
	}

	if cleaned != "" {
		return cleaned, true
	}
	return FallbackName, true
}

// defaultRules covers the standard Formula 1 race calendar. City-specific
// entries come before their country so that "Imola" wins over "Italy".
// Matches are against the folded location, so entries are lowercase and
// accent free.
var defaultRules = []LocationRule{
	{Match: "bahrain", Name: "Bahrain Grand Prix"},
	{Match: "saudi", Name: "Saudi Arabian Grand Prix"},
	{Match: "jeddah", Name: "Saudi Arabian Grand Prix"},
	{Match: "melbourne", Name: "Australian Grand Prix"},
	{Match: "australia", Name: "Australian Grand Prix"},
	{Match: "suzuka", Name: "Japanese Grand Prix"},
	{Match: "japan", Name: "Japanese Grand Prix"},
	{Match: "shanghai", Name: "Chinese Grand Prix"},
	{Match: "china", Name: "Chinese Grand Prix"},
	// "lusail" contains the substring "usa", so these must precede the
	// United States entries.
	{Match: "lusail", Name: "Qatar Grand Prix"},
	{Match: "qatar", Name: "Qatar Grand Prix"},
	{Match: "miami", Name: "Miami Grand Prix"},
	{Match: "las vegas", Name: "Las Vegas Grand Prix"},
	{Match: "austin", Name: "United States Grand Prix"},
	{Match: "united states", Name: "United States Grand Prix", ByTitle: []TitleRule{
		{Match: "miami", Name: "Miami Grand Prix"},
		{Match: "vegas", Name: "Las Vegas Grand Prix"},
	}},
	{Match: "usa", Name: "United States Grand Prix", ByTitle: []TitleRule{
		{Match: "miami", Name: "Miami Grand Prix"},
		{Match: "vegas", Name: "Las Vegas Grand Prix"},
	}},
	{Match: "imola", Name: "Emilia Romagna Grand Prix"},
	{Match: "monza", Name: "Italian Grand Prix"},
	{Match: "italy", Name: "Italian Grand Prix", ByTitle: []TitleRule{
		{Match: "imola", Name: "Emilia Romagna Grand Prix"},
		{Match: "emilia", Name: "Emilia Romagna Grand Prix"},
	}},
	{Match: "monaco", Name: "Monaco Grand Prix"},
	{Match: "montreal", Name: "Canadian Grand Prix"},
	{Match: "canada", Name: "Canadian Grand Prix"},
	{Match: "madrid", Name: "Madrid Grand Prix"},
	{Match: "barcelona", Name: "Spanish Grand Prix"},
	{Match: "spain", Name: "Spanish Grand Prix", ByTitle: []TitleRule{
		{Match: "madrid", Name: "Madrid Grand Prix"},
	}},
	{Match: "spielberg", Name: "Austrian Grand Prix"},
	{Match: "austria", Name: "Austrian Grand Prix"},
	{Match: "silverstone", Name: "British Grand Prix"},
	{Match: "united kingdom", Name: "British Grand Prix"},
	{Match: "great britain", Name: "British Grand Prix"},
	{Match: "england", Name: "British Grand Prix"},
	{Match: "budapest", Name: "Hungarian Grand Prix"},
	{Match: "hungary", Name: "Hungarian Grand Prix"},
	{Match: "spa", Name: "Belgian Grand Prix"},
	{Match: "belgium", Name: "Belgian Grand Prix"},
	{Match: "zandvoort", Name: "Dutch Grand Prix"},
	{Match: "netherlands", Name: "Dutch Grand Prix"},
	{Match: "baku", Name: "Azerbaijan Grand Prix"},
	{Match: "azerbaijan", Name: "Azerbaijan Grand Prix"},
	{Match: "singapore", Name: "Singapore Grand Prix"},
	{Match: "mexico", Name: "Mexico City Grand Prix"},
	{Match: "sao paulo", Name: "São Paulo Grand Prix"},
	{Match: "interlagos", Name: "São Paulo Grand Prix"},
	{Match: "brazil", Name: "São Paulo Grand Prix"},
	{Match: "yas marina", Name: "Abu Dhabi Grand Prix"},
	{Match: "abu dhabi", Name: "Abu Dhabi Grand Prix"},
	{Match: "united arab emirates", Name: "Abu Dhabi Grand Prix"},
	{Match: "uae", Name: "Abu Dhabi Grand Prix"},
}

package event

import (
	"regexp"
	"strings"

	"github.com/dmoren/sportcal/internal/textfold"
)

// SessionKind is the coarse stage of a multi-part happening, derived
// purely from the row title.
type SessionKind string

const (
	Practice         SessionKind = "Practice"
	Qualifying       SessionKind = "Qualifying"
	Sprint           SessionKind = "Sprint"
	SprintQualifying SessionKind = "SprintQualifying"
	Race             SessionKind = "Race"
	Other            SessionKind = "Other"
)

var (
	raceWord = regexp.MustCompile(`\brace\b`)
	fpToken  = regexp.MustCompile(`\bfp\d+\b`)
)

// Classify maps a title to its SessionKind. Matching happens on the
// lowercased, diacritic-stripped title; the first rule that matches wins.
func Classify(title string) SessionKind {
	t := textfold.Fold(title)
	switch {
	case strings.Contains(t, "sprint qualification"),
		strings.Contains(t, "sprint qualifying"):
		return SprintQualifying
	case strings.Contains(t, "sprint"):
		// Covers "sprint race", "sprint shootout", and a bare "sprint".
		return Sprint
	case strings.Contains(t, "qualifying"):
		return Qualifying
	case raceWord.MatchString(t):
		return Race
	case strings.Contains(t, "practice"), fpToken.MatchString(t):
		return Practice
	default:
		return Other
	}
}

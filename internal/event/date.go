package event

import (
	"regexp"
	"strconv"
	"time"
)

// Date strings in the sheets are whatever the editor last typed: ISO
// timestamps, "Sunday July 5", "5 Jul 2026", or bare numerics like
// "13/02/2026". ParseInstant tries ISO first, then a list of known
// human-readable layouts, then the numeric forms.

var (
	isoRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2}))?(Z|[+-]\d{2}:?\d{2})?)?$`)

	numericRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})(?:[ T](\d{1,2}):(\d{2}))?$`)
)

// looseLayouts are tried in order after the ISO rule. All are parsed in
// local time, matching how a bare ISO date is treated.
var looseLayouts = []string{
	"January 2, 2006 15:04",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006 15:04",
	"2 January 2006",
	"2 Jan 2006",
	"2006/01/02 15:04",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseInstant parses free-text date/time into an absolute instant.
// A bare date becomes local midnight. Returns false when no rule yields a
// valid calendar date.
//
// Ambiguous numeric dates follow the documented heuristic: if the first
// group is greater than 12 it is the day, otherwise it is the month. Source
// sheets may rely on either convention; this is a known limitation, not
// something to second-guess per row.
func ParseInstant(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}

	if m := isoRe.FindStringSubmatch(text); m != nil {
		return parseISO(m)
	}

	for _, layout := range looseLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, true
		}
	}

	if m := numericRe.FindStringSubmatch(text); m != nil {
		return parseNumeric(m)
	}

	return time.Time{}, false
}

func parseISO(m []string) (time.Time, bool) {
	year := atoi(m[1])
	month := atoi(m[2])
	day := atoi(m[3])
	if !validDate(year, month, day) {
		return time.Time{}, false
	}

	hour, minute, sec := 0, 0, 0
	if m[4] != "" {
		hour, minute = atoi(m[4]), atoi(m[5])
		if m[6] != "" {
			sec = atoi(m[6])
		}
		if hour > 23 || minute > 59 || sec > 59 {
			return time.Time{}, false
		}
	}

	loc := time.Local
	if tz := m[7]; tz != "" {
		if tz == "Z" || tz == "z" {
			loc = time.UTC
		} else {
			// Offsets arrive as +HH:MM or +HHMM.
			sign := 1
			if tz[0] == '-' {
				sign = -1
			}
			digits := tz[1:]
			if len(digits) == 5 {
				digits = digits[:2] + digits[3:]
			}
			offH, offM := atoi(digits[:2]), atoi(digits[2:])
			loc = time.FixedZone(tz, sign*(offH*3600+offM*60))
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc), true
}

func parseNumeric(m []string) (time.Time, bool) {
	first, second := atoi(m[1]), atoi(m[2])
	year := atoi(m[3])
	if len(m[3]) <= 2 {
		year += 2000
	}

	day, month := second, first
	if first > 12 {
		day, month = first, second
	}
	if !validDate(year, month, day) {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if m[4] != "" {
		hour, minute = atoi(m[4]), atoi(m[5])
		if hour > 23 || minute > 59 {
			return time.Time{}, false
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

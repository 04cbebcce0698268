// Package event defines the normalized calendar event produced from one
// spreadsheet row, and the pure text-to-event transforms: loose date
// parsing and session classification.
package event

import (
	"time"

	"github.com/dmoren/sportcal/internal/table"
)

// Event is one dated schedule entry for a sport.
type Event struct {
	Title    string
	Start    time.Time
	End      time.Time
	Location string
	SportKey string
}

// Day returns the event's start truncated to day precision.
func (e Event) Day() time.Time {
	return time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, e.Start.Location())
}

// Kind classifies the event's session stage from its title.
func (e Event) Kind() SessionKind {
	return Classify(e.Title)
}

// FromRecords converts parsed spreadsheet records into events, in input
// order. Rows with a blank or unresolvable title or start, or an
// unparseable start date, are skipped. A missing end date, or one at or
// before the start, becomes start plus one day.
func FromRecords(records []table.Record, aliases table.Aliases, sportKey string) []Event {
	events := make([]Event, 0, len(records))
	for _, rec := range records {
		title := table.Pick(rec, aliases.Title)
		startRaw := table.Pick(rec, aliases.Start)
		if title == "" || startRaw == "" {
			continue
		}

		start, ok := ParseInstant(startRaw)
		if !ok {
			continue
		}

		var end time.Time
		if endRaw := table.Pick(rec, aliases.End); endRaw != "" {
			end, _ = ParseInstant(endRaw)
		}
		if end.IsZero() || !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}

		events = append(events, Event{
			Title:    title,
			Start:    start,
			End:      end,
			Location: table.Pick(rec, aliases.Location),
			SportKey: sportKey,
		})
	}
	return events
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmoren/sportcal/internal/calendar"
	"github.com/dmoren/sportcal/internal/config"
	"github.com/dmoren/sportcal/internal/event"
	"github.com/dmoren/sportcal/internal/highlight"
	"github.com/dmoren/sportcal/internal/ingest"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// EventJSON is the wire shape of one calendar event.
type EventJSON struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
	SportKey string `json:"sportKey"`
}

// SportJSON is one sport's slice of the JSON output.
type SportJSON struct {
	Key        string           `json:"key"`
	Label      string           `json:"label"`
	Events     []EventJSON      `json:"events"`
	Highlights []highlight.Card `json:"highlights"`
}

// OutputJSON is the top-level JSON output.
type OutputJSON struct {
	Month  string      `json:"month"`
	Sports []SportJSON `json:"sports"`
}

// WriteOutput renders results for the selected sports in the requested
// format.
func WriteOutput(w io.Writer, sports []config.Sport, results map[string]ingest.Result, month time.Time, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, sports, results, month)
	case FormatICS:
		return writeICS(w, sports, results)
	default:
		return writeText(w, sports, results, month)
	}
}

func writeText(w io.Writer, sports []config.Sport, results map[string]ingest.Result, month time.Time) error {
	monthName := month.Format("January 2006")
	for _, sport := range sports {
		res := results[sport.Key]
		cards := highlight.Build(res.Groups, month)

		fmt.Fprintf(w, "%s — %s\n", sport.Label, monthName)
		if len(cards) == 0 {
			fmt.Fprintln(w, "  (no highlights)")
			fmt.Fprintln(w)
			continue
		}
		for _, c := range cards {
			fmt.Fprintf(w, "  %s  %s  [%s]\n", c.Title, c.DateRange, c.Tag)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeJSON(w io.Writer, sports []config.Sport, results map[string]ingest.Result, month time.Time) error {
	out := OutputJSON{
		Month:  month.Format("2006-01"),
		Sports: make([]SportJSON, 0, len(sports)),
	}
	for _, sport := range sports {
		res := results[sport.Key]

		events := make([]EventJSON, 0, len(res.Events))
		for _, ev := range res.Events {
			events = append(events, toEventJSON(ev))
		}

		cards := highlight.Build(res.Groups, month)
		if cards == nil {
			cards = []highlight.Card{}
		}

		out.Sports = append(out.Sports, SportJSON{
			Key:        sport.Key,
			Label:      sport.Label,
			Events:     events,
			Highlights: cards,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeICS(w io.Writer, sports []config.Sport, results map[string]ingest.Result) error {
	var events []event.Event
	for _, sport := range sports {
		events = append(events, results[sport.Key].Events...)
	}
	_, err := io.WriteString(w, calendar.Generate(events))
	return err
}

func toEventJSON(ev event.Event) EventJSON {
	end := ""
	if !ev.End.IsZero() {
		end = ev.End.Format(time.RFC3339)
	}
	return EventJSON{
		Title:    ev.Title,
		Start:    ev.Start.Format(time.RFC3339),
		End:      end,
		Location: ev.Location,
		SportKey: ev.SportKey,
	}
}

package highlight

import (
	"testing"
	"time"

	"github.com/dmoren/sportcal/internal/cluster"
	"github.com/dmoren/sportcal/internal/event"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.Local)
}

func group(title string, anchor, start, end time.Time, stages ...event.SessionKind) cluster.Group {
	g := cluster.Group{
		Key:    title,
		Title:  title,
		Start:  start,
		End:    end,
		Anchor: anchor,
		Stages: make(map[event.SessionKind]bool),
	}
	for _, s := range stages {
		g.Stages[s] = true
	}
	return g
}

func TestBuildFiltersByAnchorMonth(t *testing.T) {
	groups := []cluster.Group{
		group("British Grand Prix", date(time.July, 5), date(time.July, 3), date(time.July, 5), event.Race),
		group("Austrian Grand Prix", date(time.June, 28), date(time.June, 26), date(time.June, 28), event.Race),
		// Practice starts in June but the race anchors it to July.
		group("Hungarian Grand Prix", date(time.July, 2), date(time.June, 30), date(time.July, 2), event.Race),
	}

	cards := Build(groups, date(time.July, 1))
	if len(cards) != 2 {
		t.Fatalf("Build() returned %d cards, want 2", len(cards))
	}
	// Sorted by anchor ascending.
	if cards[0].Title != "Hungarian Grand Prix" || cards[1].Title != "British Grand Prix" {
		t.Errorf("order = [%s, %s], want Hungarian then British", cards[0].Title, cards[1].Title)
	}
}

func TestBuildEmptyMonth(t *testing.T) {
	groups := []cluster.Group{
		group("British Grand Prix", date(time.July, 5), date(time.July, 3), date(time.July, 5), event.Race),
	}
	if cards := Build(groups, date(time.September, 1)); len(cards) != 0 {
		t.Errorf("Build() for empty month returned %d cards, want 0", len(cards))
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want string
	}{
		{"same day", date(time.July, 5), date(time.July, 5), "5 Jul 2026"},
		{"same month", date(time.July, 3), date(time.July, 5), "3–5 Jul 2026"},
		{"cross month", date(time.June, 30), date(time.July, 2), "30 Jun – 2 Jul 2026"},
		{
			"cross year",
			time.Date(2026, time.December, 30, 0, 0, 0, 0, time.Local),
			time.Date(2027, time.January, 2, 0, 0, 0, 0, time.Local),
			"30 Dec 2026 – 2 Jan 2027",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.a, tt.b); got != tt.want {
				t.Errorf("FormatRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name   string
		stages []event.SessionKind
		want   string
	}{
		{"race and quali", []event.SessionKind{event.Race, event.Qualifying, event.Practice}, "Race / Quali"},
		{"full sprint weekend", []event.SessionKind{event.Race, event.SprintQualifying, event.Sprint}, "Race / Quali / Sprint"},
		{"practice only", []event.SessionKind{event.Practice}, "Practice"},
		{"nothing recognized", nil, "Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := group("x", date(time.July, 5), date(time.July, 5), date(time.July, 5), tt.stages...)
			if got := Tag(&g); got != tt.want {
				t.Errorf("Tag() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Package highlight turns weekend groups into the per-month cards shown
// next to the calendar grid.
package highlight

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmoren/sportcal/internal/cluster"
	"github.com/dmoren/sportcal/internal/event"
)

// Card is one display-ready highlight for a month.
type Card struct {
	Title     string `json:"title"`
	DateRange string `json:"dateRange"`
	Tag       string `json:"tag"`
}

// Build selects the groups anchored in the same year-month as month and
// orders them by anchor date. A weekend whose practice starts in June but
// whose race falls in July belongs to July. Returns an empty slice when
// nothing matches.
func Build(groups []cluster.Group, month time.Time) []Card {
	var picked []cluster.Group
	for _, g := range groups {
		if g.Anchor.Year() == month.Year() && g.Anchor.Month() == month.Month() {
			picked = append(picked, g)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Anchor.Before(picked[j].Anchor)
	})

	cards := make([]Card, 0, len(picked))
	for _, g := range picked {
		cards = append(cards, Card{
			Title:     g.Title,
			DateRange: FormatRange(g.Start, g.End),
			Tag:       Tag(&g),
		})
	}
	return cards
}

// FormatRange renders an inclusive day range, collapsing the same-day and
// same-month cases.
func FormatRange(a, b time.Time) string {
	switch {
	case a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day():
		return fmt.Sprintf("%d %s %d", a.Day(), a.Format("Jan"), a.Year())
	case a.Year() == b.Year() && a.Month() == b.Month():
		return fmt.Sprintf("%d–%d %s %d", a.Day(), b.Day(), a.Format("Jan"), a.Year())
	case a.Year() == b.Year():
		return fmt.Sprintf("%d %s – %d %s %d", a.Day(), a.Format("Jan"), b.Day(), b.Format("Jan"), b.Year())
	default:
		return fmt.Sprintf("%d %s %d – %d %s %d", a.Day(), a.Format("Jan"), a.Year(), b.Day(), b.Format("Jan"), b.Year())
	}
}

// Tag summarizes which headline stages a group contains, preferring
// Race over Quali over Sprint. A practice-only weekend says so; a group
// with no recognized stage at all is a plain "Event".
func Tag(g *cluster.Group) string {
	var parts []string
	if g.HasRace() {
		parts = append(parts, "Race")
	}
	if g.HasQuali() {
		parts = append(parts, "Quali")
	}
	if g.HasSprint() {
		parts = append(parts, "Sprint")
	}
	if len(parts) == 0 {
		if g.Stages[event.Practice] {
			return "Practice"
		}
		return "Event"
	}
	return strings.Join(parts, " / ")
}

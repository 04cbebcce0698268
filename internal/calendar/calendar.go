// Package calendar exports events as iCalendar data so a sport's schedule
// can be subscribed to from an ordinary calendar client.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dmoren/sportcal/internal/event"
)

// EventUID derives a deterministic UID so re-exports update rather than
// duplicate entries in subscribing clients.
func EventUID(ev event.Event) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s", ev.SportKey, ev.Title, ev.Start.Format("2006-01-02"))
	return fmt.Sprintf("%x@sportcal", h.Sum(nil))
}

// Generate renders events as an iCalendar document. Sessions become
// all-day entries spanning their start and end days, matching how the
// sheets record them.
func Generate(events []event.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//sportcal//sportcal//EN")

	now := time.Now().UTC()
	for _, ev := range events {
		ve := cal.AddEvent(EventUID(ev))
		ve.SetDtStampTime(now)
		ve.SetAllDayStartAt(ev.Start)
		ve.SetAllDayEndAt(ev.End)
		ve.SetSummary(ev.Title)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
	}
	return cal.Serialize()
}

// Package cluster reconstructs logical "weekend" groups from per-session
// schedule rows. Sheets list every practice, qualifying, and race as its
// own row with no shared identifier, so the only reliable way to recover
// "this is one happening" is to group rows that share a canonical name and
// sit close together in time.
package cluster

import (
	"sort"
	"time"

	"github.com/dmoren/sportcal/internal/event"
	"github.com/dmoren/sportcal/internal/textfold"
)

// Gap thresholds between consecutive same-name rows. Motorsport weekends
// are compact, so a tighter window avoids merging back-to-back rounds at
// the same circuit; other sports get a looser one. Both are policy
// knobs, not laws: callers pass whichever applies.
const (
	MotorsportGapDays = 10
	GenericGapDays    = 14
)

// Input is an event annotated with its canonical identity.
type Input struct {
	Event event.Event
	Key   string // folded canonical name, the grouping key
	Name  string // display form of the canonical name
}

// Group is one reconstructed happening: a run of same-key events within
// the gap threshold, deduplicated per (day, kind, title).
type Group struct {
	Key     string
	Title   string
	Start   time.Time // earliest member day
	End     time.Time // latest member day
	Anchor  time.Time // earliest Race day, else Start
	Stages  map[event.SessionKind]bool
	Members []event.Event
}

// HasRace reports whether any member is a race session.
func (g *Group) HasRace() bool { return g.Stages[event.Race] }

// HasQuali reports whether any member is a qualifying or sprint-qualifying
// session.
func (g *Group) HasQuali() bool {
	return g.Stages[event.Qualifying] || g.Stages[event.SprintQualifying]
}

// HasSprint reports whether any member is a sprint-format session.
func (g *Group) HasSprint() bool {
	return g.Stages[event.Sprint] || g.Stages[event.SprintQualifying]
}

// Build groups inputs into weekends. Inputs are sorted stably by
// (key, day); a new group opens when the key changes or the day gap from
// the previous event exceeds gapDays. Within a group, repeated
// (day, kind, normalized title) rows are discarded.
func Build(inputs []Input, gapDays int) []Group {
	if gapDays <= 0 {
		gapDays = GenericGapDays
	}

	sorted := make([]Input, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}
		return sorted[i].Event.Day().Before(sorted[j].Event.Day())
	})

	var groups []Group
	var cur *Group
	var prevDay time.Time
	var raceDay time.Time
	seen := make(map[string]bool)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Anchor = cur.Start
		if !raceDay.IsZero() {
			cur.Anchor = raceDay
		}
		groups = append(groups, *cur)
	}

	for _, in := range sorted {
		day := in.Event.Day()
		kind := in.Event.Kind()

		if cur == nil || in.Key != cur.Key || daysBetween(prevDay, day) > gapDays {
			flush()
			cur = &Group{
				Key:    in.Key,
				Title:  in.Name,
				Start:  day,
				End:    day,
				Stages: make(map[event.SessionKind]bool),
			}
			raceDay = time.Time{}
			seen = make(map[string]bool)
		}
		prevDay = day

		triple := day.Format("2006-01-02") + "|" + string(kind) + "|" + textfold.Fold(in.Event.Title)
		if seen[triple] {
			continue
		}
		seen[triple] = true

		if day.Before(cur.Start) {
			cur.Start = day
		}
		if day.After(cur.End) {
			cur.End = day
		}
		cur.Stages[kind] = true
		if kind == event.Race && (raceDay.IsZero() || day.Before(raceDay)) {
			raceDay = day
		}
		cur.Members = append(cur.Members, in.Event)
	}
	flush()

	return groups
}

// daysBetween counts whole calendar days between two instants, immune to
// DST-shortened days.
func daysBetween(a, b time.Time) int {
	d := dayOrdinal(b) - dayOrdinal(a)
	if d < 0 {
		d = -d
	}
	return d
}

func dayOrdinal(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

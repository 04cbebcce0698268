package event

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantHour  int
		wantFail  bool
	}{
		{
			name:      "bare ISO date",
			text:      "2026-07-03",
			wantYear:  2026,
			wantMonth: time.July,
			wantDay:   3,
		},
		{
			name:      "ISO with time",
			text:      "2026-07-03 14:30",
			wantYear:  2026,
			wantMonth: time.July,
			wantDay:   3,
			wantHour:  14,
		},
		{
			name:      "ISO with T and seconds",
			text:      "2026-07-03T14:30:15",
			wantYear:  2026,
			wantMonth: time.July,
			wantDay:   3,
			wantHour:  14,
		},
		{
			name:      "long month name",
			text:      "July 5, 2026",
			wantYear:  2026,
			wantMonth: time.July,
			wantDay:   5,
		},
		{
			name:      "short month name",
			text:      "Jul 5 2026",
			wantYear:  2026,
			wantMonth: time.July,
			wantDay:   5,
		},
		{
			name:      "day first when first group exceeds twelve",
			text:      "13/02/2026",
			wantYear:  2026,
			wantMonth: time.February,
			wantDay:   13,
		},
		{
			name:      "month first when ambiguous",
			text:      "02/03/2026",
			wantYear:  2026,
			wantMonth: time.February,
			wantDay:   3,
		},
		{
			name:      "two digit year",
			text:      "02-03-26",
			wantYear:  2026,
			wantMonth: time.February,
			wantDay:   3,
		},
		{
			name:      "numeric with time",
			text:      "5/6/26 19:30",
			wantYear:  2026,
			wantMonth: time.May,
			wantDay:   6,
			wantHour:  19,
		},
		{name: "three digit year rejected", text: "1/2/202", wantFail: true},
		{name: "month thirteen rejected", text: "13-13-2026", wantFail: true},
		{name: "day thirty two rejected", text: "1/32/2026", wantFail: true},
		{name: "april thirty one rejected", text: "31/04/2026", wantFail: true},
		{name: "iso month out of range rejected", text: "2026-13-01", wantFail: true},
		{name: "garbage rejected", text: "next weekend sometime", wantFail: true},
		{name: "empty rejected", text: "", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInstant(tt.text)
			if tt.wantFail {
				if ok {
					t.Fatalf("ParseInstant(%q) = %v, want failure", tt.text, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ParseInstant(%q) failed, want success", tt.text)
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay || got.Hour() != tt.wantHour {
				t.Errorf("ParseInstant(%q) = %v, want %d-%02d-%02d hour %d",
					tt.text, got, tt.wantYear, tt.wantMonth, tt.wantDay, tt.wantHour)
			}
		})
	}
}

func TestParseInstantBareDateIsLocalMidnight(t *testing.T) {
	got, ok := ParseInstant("2026-07-03")
	if !ok {
		t.Fatal("ParseInstant failed")
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("bare date parsed to %v, want midnight", got)
	}
	if got.Location() != time.Local {
		t.Errorf("bare date location = %v, want local", got.Location())
	}
}

func TestParseInstantZone(t *testing.T) {
	utc, ok := ParseInstant("2026-07-03T12:00:00Z")
	if !ok {
		t.Fatal("ParseInstant failed for Z suffix")
	}
	offset, ok := ParseInstant("2026-07-03T14:00:00+02:00")
	if !ok {
		t.Fatal("ParseInstant failed for +02:00 offset")
	}
	if !utc.Equal(offset) {
		t.Errorf("12:00Z (%v) and 14:00+02:00 (%v) should be the same instant", utc, offset)
	}

	compact, ok := ParseInstant("2026-07-03T14:00:00+0200")
	if !ok {
		t.Fatal("ParseInstant failed for +0200 offset")
	}
	if !utc.Equal(compact) {
		t.Errorf("compact offset parsed to %v, want %v", compact, utc)
	}
}

package sheet

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pubURL = "https://docs.google.com/spreadsheets/d/e/2PACX-abc123/pubhtml"

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"publish url", pubURL, "2PACX-abc123", false},
		{"csv export url", "https://docs.google.com/spreadsheets/d/e/2PACX-abc123/pub?output=csv", "2PACX-abc123", false},
		{"not a publish url", "https://example.com/sheet.csv", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpreadsheetID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SpreadsheetID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SpreadsheetID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestSource(t *testing.T, handler http.HandlerFunc) *SheetSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := NewSheetSource(pubURL)
	if err != nil {
		t.Fatal(err)
	}
	src.client = srv.Client()
	src.base = srv.URL
	return src
}

func TestSheetSourceFetch(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sheet"); got != "F1_race" {
			t.Errorf("sheet query = %q, want F1_race", got)
		}
		if ua := r.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, UserAgent)
		}
		fmt.Fprint(w, "title,start\nRace,2026-07-05\n")
	})

	body, err := src.Fetch("F1_race")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(body, "Race") {
		t.Errorf("Fetch() body = %q, want the CSV text", body)
	}
}

func TestSheetSourceFetchBadStatus(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	if _, err := src.Fetch("F1_race"); err == nil {
		t.Fatal("Fetch() error = nil, want status error")
	}
}

func TestTabs(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<ul id="sheet-menu">
<li><a href="#0">F1_race</a></li>
<li><a href="#1">NASCAR</a></li>
<li><a href="#2">NFL</a></li>
</ul></body></html>`)
	})

	tabs, err := src.Tabs()
	if err != nil {
		t.Fatalf("Tabs() error = %v", err)
	}
	want := []string{"F1_race", "NASCAR", "NFL"}
	if len(tabs) != len(want) {
		t.Fatalf("Tabs() = %v, want %v", tabs, want)
	}
	for i := range want {
		if tabs[i] != want[i] {
			t.Errorf("Tabs()[%d] = %q, want %q", i, tabs[i], want[i])
		}
	}
}

func TestMissingTabs(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<ul id="sheet-menu">
<li><a href="#0">F1_race</a></li>
<li><a href="#1">NHL</a></li>
</ul></body></html>`)
	})

	missing, err := src.MissingTabs([]string{"F1_race", "nhl", "NASCAR"})
	if err != nil {
		t.Fatalf("MissingTabs() error = %v", err)
	}
	// Case-insensitive: "nhl" matches the published NHL tab.
	if len(missing) != 1 || missing[0] != "NASCAR" {
		t.Errorf("MissingTabs() = %v, want [NASCAR]", missing)
	}
}

func TestMissingTabsFetchError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	if _, err := src.MissingTabs([]string{"F1_race"}); err == nil {
		t.Fatal("MissingTabs() error = nil, want fetch error")
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "F1_race.csv"), []byte("title,start\nRace,2026-07-05\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := DirSource(dir)
	body, err := src.Fetch("F1_race")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(body, "Race") {
		t.Errorf("Fetch() body = %q, want the CSV text", body)
	}

	if _, err := src.Fetch("NHL"); err == nil {
		t.Error("Fetch() for missing file = nil error, want error")
	}
}

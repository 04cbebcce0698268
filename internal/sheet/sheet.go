// Package sheet fetches raw CSV tables. The production source is a Google
// Sheets "publish to web" spreadsheet, one tab per sport; a directory of
// .csv files works as a drop-in replacement for local runs and tests.
package sheet

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	UserAgent = "sportcal/1.0 (github.com/dmoren/sportcal)"
	Timeout   = 30 * time.Second
)

// Source yields the raw CSV text for a named table.
type Source interface {
	Fetch(name string) (string, error)
}

var pubIDRe = regexp.MustCompile(`/d/e/([^/]+)`)

// SpreadsheetID extracts the publish ID from a publish-to-web URL.
func SpreadsheetID(pubURL string) (string, error) {
	m := pubIDRe.FindStringSubmatch(pubURL)
	if m == nil {
		return "", fmt.Errorf("not a published spreadsheet URL: %q", pubURL)
	}
	return m[1], nil
}

// SheetSource fetches tabs of one published spreadsheet over HTTP.
type SheetSource struct {
	client *http.Client
	id     string
	base   string // overridable in tests
}

// NewSheetSource creates a source for the given publish URL.
func NewSheetSource(pubURL string) (*SheetSource, error) {
	id, err := SpreadsheetID(pubURL)
	if err != nil {
		return nil, err
	}
	return &SheetSource{
		client: &http.Client{Timeout: Timeout},
		id:     id,
		base:   "https://docs.google.com",
	}, nil
}

// Fetch downloads one tab as CSV.
func (s *SheetSource) Fetch(name string) (string, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/e/%s/pub?output=csv&sheet=%s",
		s.base, s.id, url.QueryEscape(name))
	return s.get(u)
}

// Tabs discovers the published tab names by parsing the pubhtml page's
// sheet menu. Useful for checking a configured sheet name actually exists
// before an ingest run.
func (s *SheetSource) Tabs() ([]string, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/e/%s/pubhtml", s.base, s.id)

	body, err := s.get(u)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing pubhtml: %w", err)
	}

	var tabs []string
	doc.Find("#sheet-menu li a").Each(func(i int, sel *goquery.Selection) {
		if name := strings.TrimSpace(sel.Text()); name != "" {
			tabs = append(tabs, name)
		}
	})
	if len(tabs) == 0 {
		// Single-tab spreadsheets publish without a menu.
		if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
			tabs = append(tabs, title)
		}
	}
	return tabs, nil
}

// MissingTabs reports which of the given sheet names are not published as
// tabs of the spreadsheet, comparing case-insensitively. Ingestion checks
// the configured sheets against this before fetching, so a renamed tab
// shows up as one clear warning instead of a per-sport fetch failure.
func (s *SheetSource) MissingTabs(names []string) ([]string, error) {
	tabs, err := s.Tabs()
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		found := false
		for _, tab := range tabs {
			if strings.EqualFold(tab, name) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

func (s *SheetSource) get(u string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// DirSource reads tables from <dir>/<name>.csv.
type DirSource string

// Fetch reads one named CSV file from the directory.
func (d DirSource) Fetch(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(string(d), name+".csv"))
	if err != nil {
		return "", fmt.Errorf("reading table %q: %w", name, err)
	}
	return string(data), nil
}

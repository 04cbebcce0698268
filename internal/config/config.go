// Package config holds everything about ingestion that is policy rather
// than code: which sports exist, which sheet each one lives in, how their
// header spellings map to semantic columns, how wide the weekend
// clustering window is, and any extra canonical-name rules.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmoren/sportcal/internal/canonical"
	"github.com/dmoren/sportcal/internal/cluster"
	"github.com/dmoren/sportcal/internal/table"
)

// Sport categories controlling the default clustering window.
const (
	CategoryMotorsport = "motorsport"
	CategoryGeneral    = "general"
)

// Sport describes one ingested table.
type Sport struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Sheet    string `yaml:"sheet"`
	Category string `yaml:"category"`
	// GapDays overrides the category's clustering window when positive.
	GapDays int `yaml:"gap_days,omitempty"`
	// Aliases are extra header spellings tried before the built-in ones.
	Aliases *table.Aliases `yaml:"aliases,omitempty"`
}

// Gap returns the clustering window for this sport in days.
func (s Sport) Gap() int {
	if s.GapDays > 0 {
		return s.GapDays
	}
	if s.Category == CategoryMotorsport {
		return cluster.MotorsportGapDays
	}
	return cluster.GenericGapDays
}

// AliasSet returns the sport's full alias table: sport-specific spellings
// first (first match wins), then the shared defaults.
func (s Sport) AliasSet() table.Aliases {
	out := defaultAliases
	if s.Aliases != nil {
		out = table.Aliases{
			Title:    append(append([]string{}, s.Aliases.Title...), defaultAliases.Title...),
			Start:    append(append([]string{}, s.Aliases.Start...), defaultAliases.Start...),
			End:      append(append([]string{}, s.Aliases.End...), defaultAliases.End...),
			Location: append(append([]string{}, s.Aliases.Location...), defaultAliases.Location...),
		}
	}
	return out
}

// Config is the top-level application configuration.
type Config struct {
	// Source is the Google Sheets publish-to-web URL.
	Source string `yaml:"source"`
	// Sports lists the ingested tables.
	Sports []Sport `yaml:"sports"`
	// Canonical holds extra name rules checked before the built-in race
	// calendar table.
	Canonical []canonical.LocationRule `yaml:"canonical,omitempty"`
}

// Sport looks up a sport by key.
func (c *Config) Sport(key string) (Sport, bool) {
	for _, s := range c.Sports {
		if s.Key == key {
			return s, true
		}
	}
	return Sport{}, false
}

// Default returns the built-in configuration covering the published
// schedule spreadsheet's standard tabs.
func Default() *Config {
	return &Config{
		Sports: []Sport{
			{Key: "f1", Label: "F1", Sheet: "F1_race", Category: CategoryMotorsport},
			{Key: "nascar", Label: "NASCAR", Sheet: "NASCAR", Category: CategoryMotorsport},
			{Key: "nfl", Label: "NFL", Sheet: "NFL", Category: CategoryGeneral,
				Aliases: &table.Aliases{Start: []string{"kickoff"}}},
			{Key: "nhl", Label: "NHL", Sheet: "NHL", Category: CategoryGeneral,
				Aliases: &table.Aliases{Start: []string{"puck drop"}}},
			{Key: "nba", Label: "NBA", Sheet: "NBA", Category: CategoryGeneral,
				Aliases: &table.Aliases{Start: []string{"tip off"}}},
			{Key: "mlb", Label: "MLB", Sheet: "MLB", Category: CategoryGeneral,
				Aliases: &table.Aliases{Start: []string{"first pitch"}}},
			{Key: "other", Label: "Other", Sheet: "Other", Category: CategoryGeneral},
		},
	}
}

// defaultAliases are the header spellings every sheet is tried against,
// in priority order.
var defaultAliases = table.Aliases{
	Title:    []string{"title", "event", "name", "race", "match", "game", "summary"},
	Start:    []string{"start", "start date", "date", "start time", "datetime", "when"},
	End:      []string{"end", "end date", "end time", "finish", "until"},
	Location: []string{"location", "venue", "city", "country"},
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults. Missing fields are filled from the defaults so a partial
// config (say, just a source URL) behaves sensibly.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Normalize fills missing values with defaults.
func (c *Config) Normalize() {
	if len(c.Sports) == 0 {
		c.Sports = Default().Sports
	}
	for i := range c.Sports {
		if c.Sports[i].Label == "" {
			c.Sports[i].Label = c.Sports[i].Key
		}
		if c.Sports[i].Sheet == "" {
			c.Sports[i].Sheet = c.Sports[i].Key
		}
		if c.Sports[i].Category == "" {
			c.Sports[i].Category = CategoryGeneral
		}
	}
}

// Package cli implements the sportcal command: load the configured sport
// sheets, rebuild events and weekend highlights, and print them.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoren/sportcal/internal/config"
	"github.com/dmoren/sportcal/internal/ingest"
	"github.com/dmoren/sportcal/internal/logger"
	"github.com/dmoren/sportcal/internal/sheet"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagSport   string
	flagMonth   string
	flagConfig  string
	flagSource  string
	flagDir     string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sportcal",
		Short: "Build calendar events and monthly highlights from sport schedule sheets",
		Long: `Ingests loosely-structured schedule tables (one published sheet per
sport), normalizes them into dated events, reconstructs race weekends from
scattered per-session rows, and prints the highlights for a month.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagSport, "sport", "all", "Sport key (e.g. f1) or 'all'")
	cmd.Flags().StringVar(&flagMonth, "month", "", "Month to highlight as YYYY-MM (default current)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagSource, "source", "", "Published spreadsheet URL (overrides config)")
	cmd.Flags().StringVar(&flagDir, "dir", "", "Read tables from <dir>/<sheet>.csv instead of fetching")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or ics")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'ics')", flagFormat)
	}

	month, err := parseMonth(flagMonth)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)

	loader := ingest.NewLoader(src, cfg, log)

	sports, err := selectSports(cfg)
	if err != nil {
		return err
	}

	if ss, ok := src.(*sheet.SheetSource); ok {
		warnMissingTabs(ss, sports, log)
	}

	results := make(map[string]ingest.Result, len(sports))
	if flagSport == "all" {
		results = loader.LoadAll()
	} else {
		res, loadErr := loader.Load(sports[0])
		if loadErr != nil {
			// Table-level defect: warn and degrade to an empty set, the
			// same treatment LoadAll gives a failed sibling.
			log.Warn("skipping sport table", logger.Fields{
				"sport": sports[0].Key,
				"cause": loadErr.Error(),
			})
			res = ingest.Result{}
		}
		results[sports[0].Key] = res
	}

	return WriteOutput(cmd.OutOrStdout(), sports, results, month, format)
}

// warnMissingTabs checks the configured sheet names against the tabs the
// spreadsheet actually publishes. A mismatch still proceeds (the fetch will
// fail and degrade per sport), but the warning names the real problem.
func warnMissingTabs(src *sheet.SheetSource, sports []config.Sport, log *logger.Logger) {
	names := make([]string, 0, len(sports))
	for _, s := range sports {
		names = append(names, s.Sheet)
	}

	missing, err := src.MissingTabs(names)
	if err != nil {
		log.Debug("tab discovery failed", logger.Fields{"cause": err.Error()})
		return
	}
	for _, name := range missing {
		log.Warn("configured sheet is not a published tab", logger.Fields{"sheet": name})
	}
}

func parseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return t, nil
}

func buildSource(cfg *config.Config) (sheet.Source, error) {
	if flagDir != "" {
		return sheet.DirSource(flagDir), nil
	}
	if cfg.Source == "" {
		return nil, fmt.Errorf("no source configured (set source in config, or pass --source or --dir)")
	}
	return sheet.NewSheetSource(cfg.Source)
}

func selectSports(cfg *config.Config) ([]config.Sport, error) {
	if flagSport == "all" {
		sports := make([]config.Sport, len(cfg.Sports))
		copy(sports, cfg.Sports)
		sort.SliceStable(sports, func(i, j int) bool { return sports[i].Key < sports[j].Key })
		return sports, nil
	}
	s, ok := cfg.Sport(flagSport)
	if !ok {
		return nil, fmt.Errorf("unknown sport %q", flagSport)
	}
	return []config.Sport{s}, nil
}

// Package ingest runs the full pipeline for each configured sport: fetch
// the raw table, parse it, normalize rows into events, resolve canonical
// names, and cluster weekends. Failures are isolated per table: a sheet
// that cannot be fetched or whose required columns never resolve yields an
// empty result and a warning, never an error that touches sibling sports.
package ingest

import (
	"fmt"
	"sync"

	"github.com/dmoren/sportcal/internal/cache"
	"github.com/dmoren/sportcal/internal/canonical"
	"github.com/dmoren/sportcal/internal/cluster"
	"github.com/dmoren/sportcal/internal/config"
	"github.com/dmoren/sportcal/internal/event"
	"github.com/dmoren/sportcal/internal/logger"
	"github.com/dmoren/sportcal/internal/sheet"
	"github.com/dmoren/sportcal/internal/table"
	"github.com/dmoren/sportcal/internal/textfold"
)

// Result is everything derived from one sport's table in one load.
type Result struct {
	Events []event.Event
	Groups []cluster.Group
}

// Loader owns the per-sport pipeline and its result cache.
type Loader struct {
	src      sheet.Source
	cfg      *config.Config
	resolver *canonical.Resolver
	log      *logger.Logger
	results  *cache.Cache[Result]
}

// NewLoader wires a loader from a source and configuration.
func NewLoader(src sheet.Source, cfg *config.Config, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Default()
	}
	return &Loader{
		src:      src,
		cfg:      cfg,
		resolver: canonical.NewResolver(cfg.Canonical...),
		log:      log,
		results:  cache.New[Result](),
	}
}

// Load runs the pipeline for one sport, reusing a cached result when one
// exists. The returned error is always a table-level defect; callers
// treat it as "zero events for that sport".
func (l *Loader) Load(sport config.Sport) (Result, error) {
	if res, ok := l.results.Get(sport.Key); ok {
		return res, nil
	}

	res, err := l.load(sport)
	if err != nil {
		return Result{}, err
	}
	l.results.Put(sport.Key, res)
	return res, nil
}

// LoadAll loads every configured sport concurrently and joins before
// returning. A failed sport appears in the map with an empty Result.
func (l *Loader) LoadAll() map[string]Result {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]Result, len(l.cfg.Sports))
	)

	for _, sport := range l.cfg.Sports {
		wg.Add(1)
		go func(sport config.Sport) {
			defer wg.Done()

			res, err := l.Load(sport)
			if err != nil {
				l.log.Warn("skipping sport table", logger.Fields{
					"sport": sport.Key,
					"sheet": sport.Sheet,
					"cause": err.Error(),
				})
				res = Result{}
			}

			mu.Lock()
			results[sport.Key] = res
			mu.Unlock()
		}(sport)
	}
	wg.Wait()

	return results
}

// Invalidate drops one sport's cached result so the next Load recomputes.
func (l *Loader) Invalidate(sportKey string) {
	l.results.Invalidate(sportKey)
}

// InvalidateAll drops every cached result.
func (l *Loader) InvalidateAll() {
	l.results.Reset()
}

func (l *Loader) load(sport config.Sport) (Result, error) {
	text, err := l.src.Fetch(sport.Sheet)
	if err != nil {
		return Result{}, fmt.Errorf("fetching sheet %q: %w", sport.Sheet, err)
	}

	records := table.Parse(text)
	if len(records) == 0 {
		return Result{}, nil
	}

	aliases := sport.AliasSet()
	if !table.HasColumns(records[0], aliases.Title, aliases.Start) {
		return Result{}, fmt.Errorf("sheet %q: required title/start columns not found", sport.Sheet)
	}

	events := event.FromRecords(records, aliases, sport.Key)

	inputs := make([]cluster.Input, 0, len(events))
	for _, ev := range events {
		name, ok := l.resolver.Resolve(ev.Location, ev.Title)
		if !ok {
			continue
		}
		inputs = append(inputs, cluster.Input{
			Event: ev,
			Key:   textfold.Fold(name),
			Name:  name,
		})
	}

	return Result{
		Events: events,
		Groups: cluster.Build(inputs, sport.Gap()),
	}, nil
}

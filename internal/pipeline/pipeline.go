// Package pipeline wires the external collaborators together: fetching
// the source page, parsing its first table, cleaning it into the typed
// dataset, and saving/loading CSV snapshots.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jray-8/us-presidents-dataset/internal/cache"
	"github.com/jray-8/us-presidents-dataset/internal/clean"
	"github.com/jray-8/us-presidents-dataset/internal/codec"
	"github.com/jray-8/us-presidents-dataset/internal/model"
)

// Pipeline produces the presidents dataset from either the frozen CSV
// snapshot or a fresh scrape.
type Pipeline struct {
	cfg     *model.Config
	fetcher *Fetcher
	cleaner *clean.Cleaner
}

// New creates a Pipeline from the configuration.
func New(cfg *model.Config) *Pipeline {
	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return &Pipeline{
		cfg:     cfg,
		fetcher: NewFetcher(cfg, pages),
		cleaner: clean.New(model.RecognizedParties()),
	}
}

// Options selects how the dataset is obtained and whether to keep it.
type Options struct {
	Update bool   // scrape fresh instead of trying the frozen snapshot
	Save   bool   // write the result as a CSV snapshot
	Name   string // snapshot filename without extension
	Output string // snapshot directory, or a full .csv path
}

// Dataset fetches the dataset. Unless Update is set it tries the
// frozen CSV first and falls back to scraping when that fails.
func (p *Pipeline) Dataset(ctx context.Context, opts Options) ([]model.President, error) {
	if !opts.Update {
		table, err := p.LoadFrozen(ctx)
		if err == nil {
			return table, p.maybeSave(table, opts)
		}
		fmt.Fprintf(os.Stderr, "warning: could not load frozen dataset, scraping instead: %v\n", err)
	}

	table, err := p.Scrape(ctx)
	if err != nil {
		return nil, err
	}
	return table, p.maybeSave(table, opts)
}

// Scrape fetches the source page and cleans its first table.
func (p *Pipeline) Scrape(ctx context.Context) ([]model.President, error) {
	body, err := p.fetcher.Fetch(ctx, p.cfg.Source.WikipediaURL)
	if err != nil {
		return nil, err
	}

	raw, err := ParseFirstTable(string(body))
	if err != nil {
		return nil, err
	}

	table, err := p.cleaner.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", p.cfg.Source.WikipediaURL, err)
	}
	return table, nil
}

// LoadFrozen downloads and parses the frozen CSV snapshot.
func (p *Pipeline) LoadFrozen(ctx context.Context) ([]model.President, error) {
	body, err := p.fetcher.Fetch(ctx, p.cfg.Source.FrozenCSVURL)
	if err != nil {
		return nil, err
	}

	table, err := codec.Read(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("frozen snapshot: %w", err)
	}
	return table, nil
}

func (p *Pipeline) maybeSave(table []model.President, opts Options) error {
	if !opts.Save {
		return nil
	}
	path := p.snapshotPath(opts)
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "saving snapshot: %s\n", path)
	}
	return codec.WriteFile(path, table)
}

// snapshotPath resolves the output location: a full .csv path is used
// as-is, anything else is treated as a directory.
func (p *Pipeline) snapshotPath(opts Options) string {
	name := opts.Name
	if name == "" {
		name = p.cfg.Output.DatasetName
	}
	out := opts.Output
	if out == "" {
		out = p.cfg.Output.Dir
	}
	if strings.EqualFold(filepath.Ext(out), ".csv") {
		return out
	}
	return filepath.Join(out, name+".csv")
}

// Package pipeline runs the deck -> records -> bridges -> chains pass end
// to end and writes its artifacts.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/viant/afs"
	"ygo/smallworld/internal/cache"
	"ygo/smallworld/internal/catalog"
	"ygo/smallworld/internal/deck"
	"ygo/smallworld/internal/graph"
	"ygo/smallworld/internal/resolve"
)

// Config wires one run
type Config struct {
	DeckURL   string
	OutputURL string // empty skips the output file
	Store     cache.Store
	Catalog   catalog.Client
	Logger    *slog.Logger
	Stdout    io.Writer // chain lines are mirrored here (default os.Stdout)

	// RequestDelay overrides the wait after each catalog lookup.
	// Zero uses catalog.DefaultRequestDelay; negative disables the wait.
	RequestDelay time.Duration
}

// Result is everything a run produced
type Result struct {
	IDs        []string        `json:"ids"`
	Resolution *resolve.Result `json:"resolution"`
	Graph      *graph.Graph    `json:"-"`
	Chains     []graph.Chain   `json:"chains"`
	CacheSize  int             `json:"cache_size"`
	Duration   time.Duration   `json:"duration"`
}

// Run executes the full pass. A missing deck or unreadable cache aborts
// before any lookup. Once resolution has run, the cache and the output
// file are both written even if one of them fails; those errors are joined
// and returned alongside the result.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	fs := afs.New()

	ids, err := deck.Read(ctx, fs, cfg.DeckURL)
	if err != nil {
		return nil, err
	}
	logger.Info("deck loaded", "unique_ids", ids.Len())

	c, err := cfg.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}
	logger.Debug("cache loaded", "entries", c.Len())

	resolver := resolve.New(cfg.Catalog, c, logger)
	switch {
	case cfg.RequestDelay < 0:
		resolver.Delay = 0
	case cfg.RequestDelay > 0:
		resolver.Delay = cfg.RequestDelay
	}
	res := resolver.Resolve(ctx, ids.Values())
	logger.Info("resolution finished",
		"monsters", len(res.Cards),
		"fetched", res.Fetched,
		"not_found", len(res.NotFound()),
		"failed", len(res.Failed()),
		"elapsed", FormatDurationShort(time.Since(start)))

	var errs []error
	if err := cfg.Store.Save(ctx, c); err != nil {
		logger.Error("saving cache", "error", err)
		errs = append(errs, fmt.Errorf("saving cache: %w", err))
	}

	g := graph.Build(res.Cards)
	for _, b := range g.Bridges() {
		logger.Info("card bridges",
			"card", g.Cards[b.SourceID].Label(),
			"with", g.Cards[b.TargetID].Label(),
			"shared", b.SharedKey)
	}

	chains := g.Chains()
	lines := graph.Lines(chains)
	if cfg.OutputURL != "" {
		if err := writeLines(ctx, fs, cfg.OutputURL, lines); err != nil {
			logger.Error("writing output", "error", err)
			errs = append(errs, err)
		}
	}
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	logger.Info("chains written", "chains", len(chains), "bridges", g.EdgeCount())

	return &Result{
		IDs:        ids.Values(),
		Resolution: res,
		Graph:      g,
		Chains:     chains,
		CacheSize:  c.Len(),
		Duration:   time.Since(start),
	}, errors.Join(errs...)
}

// writeLines overwrites URL with one newline-terminated line per entry
func writeLines(ctx context.Context, fs afs.Service, URL string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := fs.Upload(ctx, URL, 0644, &buf); err != nil {
		return fmt.Errorf("writing output %s: %w", URL, err)
	}
	return nil
}

// Package resolve turns deck card ids into monster attribute records,
// reading through a cache and falling back to the catalog.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ygo/smallworld/internal/cache"
	"ygo/smallworld/internal/catalog"
	"ygo/smallworld/internal/graph"
)

// Status is the per-card outcome of resolution
type Status string

const (
	StatusMonster    Status = "monster"     // resolved, part of the analysis
	StatusNonMonster Status = "non_monster" // resolved and cached, excluded
	StatusNotFound   Status = "not_found"   // catalog has no data for the id
	StatusFailed     Status = "failed"      // lookup or decode error
)

// Source says where a record came from
type Source string

const (
	SourceCache   Source = "cache"
	SourceCatalog Source = "catalog"
)

// Outcome records what happened to one card id
type Outcome struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Source Source `json:"source,omitempty"`
	Name   string `json:"name,omitempty"`
	Err    error  `json:"-"`
}

// Result is the aggregated outcome of a batch
type Result struct {
	Cards    []graph.Card // monsters, in input order
	Outcomes []Outcome    // one per input id, in input order
	Fetched  int          // catalog lookups issued
}

// Failed returns outcomes with StatusFailed
func (r *Result) Failed() []Outcome {
	return r.withStatus(StatusFailed)
}

// NotFound returns outcomes with StatusNotFound
func (r *Result) NotFound() []Outcome {
	return r.withStatus(StatusNotFound)
}

func (r *Result) withStatus(s Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out
}

// Resolver resolves ids one at a time, cache first. Fresh records are put
// into Cache; persisting it is left to the caller.
type Resolver struct {
	Catalog catalog.Client
	Cache   *cache.Cache
	Delay   time.Duration // wait after every catalog lookup
	Logger  *slog.Logger

	sleep func(time.Duration)
}

// New creates a Resolver with the default request delay
func New(client catalog.Client, c *cache.Cache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		Catalog: client,
		Cache:   c,
		Delay:   catalog.DefaultRequestDelay,
		Logger:  logger,
		sleep:   time.Sleep,
	}
}

// Resolve processes every id in order. A failing id is recorded in its
// Outcome and never stops the batch.
func (r *Resolver) Resolve(ctx context.Context, ids []string) *Result {
	res := &Result{Outcomes: make([]Outcome, 0, len(ids))}
	for _, id := range ids {
		r.Logger.Info("processing card", "id", id)
		out, card := r.resolveOne(ctx, id, res)
		res.Outcomes = append(res.Outcomes, out)
		if card != nil {
			res.Cards = append(res.Cards, *card)
		}
	}
	return res
}

func (r *Resolver) resolveOne(ctx context.Context, id string, res *Result) (Outcome, *graph.Card) {
	out := Outcome{ID: id}

	raw, hit := r.Cache.Get(id)
	if hit {
		out.Source = SourceCache
	} else {
		out.Source = SourceCatalog
		res.Fetched++
		var err error
		raw, err = r.Catalog.Lookup(ctx, id)
		r.wait()
		if errors.Is(err, catalog.ErrNotFound) {
			r.Logger.Info("card not found in catalog", "id", id)
			out.Status = StatusNotFound
			return out, nil
		}
		if err != nil {
			return r.fail(out, err), nil
		}
	}

	c, err := catalog.Decode(raw)
	if err != nil {
		return r.fail(out, err), nil
	}
	out.Name = c.Name

	if hit {
		r.Logger.Info("loaded card from cache", "id", id, "name", c.Name)
	} else {
		r.Cache.Put(id, raw)
		r.Logger.Info("fetched and cached card", "id", id, "name", c.Name)
	}

	if !c.IsMonster() {
		out.Status = StatusNonMonster
		return out, nil
	}
	out.Status = StatusMonster
	card := toCard(id, c)
	return out, &card
}

func (r *Resolver) fail(out Outcome, err error) Outcome {
	r.Logger.Error("error processing card", "id", out.ID, "source", string(out.Source), "error", err)
	out.Status = StatusFailed
	out.Err = err
	return out
}

func (r *Resolver) wait() {
	if r.Delay <= 0 {
		return
	}
	sleep := r.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(r.Delay)
}

// toCard applies the attribute defaults: 0 for numbers, "Unknown" for strings
func toCard(id string, c *catalog.Card) graph.Card {
	return graph.Card{
		ID:   id,
		Name: c.Name,
		Attributes: graph.Attributes{
			ATK:       intOr(c.Atk, 0),
			DEF:       intOr(c.Def, 0),
			Attribute: stringOr(c.Attribute, graph.UnknownValue),
			Type:      stringOr(c.Race, graph.UnknownValue),
			Level:     intOr(c.Level, 0),
		},
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

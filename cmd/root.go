package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"ygo/smallworld/internal/cache"
	"ygo/smallworld/internal/catalog"
	"ygo/smallworld/internal/config"
	"ygo/smallworld/internal/logging"
	"ygo/smallworld/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "smallworld",
	Short: "Find Small World bridge chains in deck.ydk",
	Long: `Reads deck.ydk from the working directory, resolves each main-deck card
through card_cache.json (fetching misses from YGOPRODeck), and writes every
Banish -> Reveal -> Add chain to output.txt and stdout.

Environment:
  SMALLWORLD_LOG_LEVEL   debug|info|warn|error (default info)
  SMALLWORLD_LOG_FORMAT  text|json (default text)
  SMALLWORLD_CACHE       json|sqlite (default json; sqlite uses card_cache.db)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChains(cmd.Context(), cmd.OutOrStdout(), false)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// OpenStore opens the cache backend selected by cfg
func OpenStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.CacheBackend {
	case config.BackendSQLite:
		s, err := cache.OpenSQLite(cfg.CacheDBPath())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return cache.NewFileStore(cfg.CacheURL()), nil
	}
}

// newLogger builds the run logger, tagged with a short run id
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	runID := uuid.NewString()[:8]
	return logging.New(cfg.LogLevel, cfg.LogFormat, w).With("run", runID)
}

// runChains runs the full pipeline. offline restricts resolution to the cache.
func runChains(ctx context.Context, out io.Writer, offline bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	store, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var client catalog.Client = catalog.Offline{}
	delay := time.Duration(-1)
	if !offline {
		delay = 0
		hc := catalog.NewHTTPClient(cfg.CatalogURL)
		defer hc.Close()
		client = hc
	}

	res, err := pipeline.Run(ctx, pipeline.Config{
		DeckURL:   cfg.DeckURL(),
		OutputURL: cfg.OutputURL(),
		Store:     store,
		Catalog:   client,
		Logger:    logger,
		Stdout:    out,

		RequestDelay: delay,
	})
	if res != nil {
		printRunSummary(out, res)
	}
	return err
}

func printRunSummary(w io.Writer, res *pipeline.Result) {
	r := res.Resolution
	fmt.Fprintf(w, "\n%d card(s) in deck, %d monster(s), %d fetched, %d not found, %d failed\n",
		len(res.IDs), len(r.Cards), r.Fetched, len(r.NotFound()), len(r.Failed()))
	for _, o := range r.Failed() {
		fmt.Fprintf(w, "  failed: %s: %v\n", o.ID, o.Err)
	}
	fmt.Fprintf(w, "%d chain(s) written to %s in %s\n",
		len(res.Chains), config.OutputFile, pipeline.FormatDurationShort(res.Duration))
}

package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"ygo/smallworld/internal/catalog"
	"ygo/smallworld/internal/config"
	"ygo/smallworld/internal/graph"
	"ygo/smallworld/internal/pipeline"
)

const analyzeTopN = 10

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize the deck's bridge graph: connectivity, isolated cards, hubs",
	Long: `Resolves deck.ydk from the cache only (no network, output.txt untouched)
and prints how well the deck's monsters connect through Small World.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := OpenStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := pipeline.Run(cmd.Context(), pipeline.Config{
			DeckURL:      cfg.DeckURL(),
			Store:        store,
			Catalog:      catalog.Offline{},
			Logger:       newLogger(cfg, os.Stderr),
			Stdout:       io.Discard,
			RequestDelay: -1,
		})
		if err != nil {
			return fmt.Errorf("loading deck graph: %w", err)
		}

		if missing := len(res.Resolution.Failed()); missing > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\n  %d card(s) not cached; run smallworld first to fetch them\n", missing)
		}
		report := graph.ComputeTopology(res.Graph, analyzeTopN)
		printHumanReadable(cmd.OutOrStdout(), report, res.Graph)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func printHumanReadable(w io.Writer, t *graph.TopologyReport, g *graph.Graph) {
	fmt.Fprintln(w, "\n  BRIDGE GRAPH")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  Monsters: %d  Bridges: %d  Chains: %d\n", t.TotalCards, t.TotalBridges, t.TotalChains)
	fmt.Fprintf(w, "  Components: %d  Largest: %d\n", t.NumComponents, t.LargestComponent)

	if t.IsolatedCount > 0 {
		fmt.Fprintf(w, "  Isolated: %d monsters bridge to nothing\n", t.IsolatedCount)
		for _, id := range t.IsolatedIDs {
			fmt.Fprintf(w, "    - %s (%s)\n", truncTitle(g.Cards[id].Label(), 40), id)
		}
		if t.IsolatedCount > len(t.IsolatedIDs) {
			fmt.Fprintf(w, "    ... and %d more\n", t.IsolatedCount-len(t.IsolatedIDs))
		}
	}

	fmt.Fprintln(w, "\n  Partner distribution:")
	for _, b := range t.DegreeHistogram {
		if b.Count > 0 {
			barWidth := int(math.Log2(float64(b.Count))) + 2
			fmt.Fprintf(w, "    %5s: %4d  %s\n", b.Label, b.Count, strings.Repeat("=", barWidth))
		}
	}

	if len(t.Hubs) > 0 {
		fmt.Fprintln(w, "\n  Best connected:")
		for _, hub := range t.Hubs {
			fmt.Fprintf(w, "    %-40s partners=%d chains=%d\n",
				truncTitle(g.Cards[hub.ID].Label(), 40), hub.Partners, hub.Chains)
		}
	}

	fmt.Fprintln(w)
}

func truncTitle(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back up to a rune boundary
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

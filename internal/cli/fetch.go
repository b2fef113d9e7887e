package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jray-8/us-presidents-dataset/internal/model"
	"github.com/jray-8/us-presidents-dataset/internal/pipeline"
)

var (
	update      bool
	save        bool
	datasetName string
	outputPath  string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the cleaned presidents dataset",
	Long: `Fetch obtains the presidents dataset and prints a summary.

Without --update it first tries the frozen published CSV and falls back
to scraping Wikipedia. With --update it scrapes fresh. With --save the
cleaned dataset is written as a CSV snapshot.

Example:
  presidents fetch
  presidents fetch --update --save --output data
  presidents fetch --save --name us_presidents --output /tmp/datasets`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&update, "update", false, "scrape fresh instead of loading the frozen snapshot")
	fetchCmd.Flags().BoolVar(&save, "save", false, "save the cleaned dataset as a CSV snapshot")
	fetchCmd.Flags().StringVar(&datasetName, "name", "", "snapshot filename without .csv (default from config)")
	fetchCmd.Flags().StringVar(&outputPath, "output", "", "snapshot directory or full .csv path (default from config)")

	fetchCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall fetch timeout")
	fetchCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent (default from config)")
	fetchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read (default from config)")
	fetchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page cache (force fresh fetch)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := model.DefaultConfig()
	applyViper(cfg)
	cfg.Output.Verbose = verbose
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Source: %s\n", cfg.Source.WikipediaURL)
		fmt.Fprintf(os.Stderr, "Update: %v  Save: %v  Cache: %v\n\n", update, save, cfg.Cache.Enabled)
	}

	table, err := pipeline.New(cfg).Dataset(ctx, pipeline.Options{
		Update: update,
		Save:   save,
		Name:   datasetName,
		Output: outputPath,
	})
	if err != nil {
		return err
	}

	printSummary(table)
	return nil
}

// printSummary writes a short human-readable view of the dataset.
func printSummary(table []model.President) {
	fmt.Printf("%d presidents\n", len(table))
	for _, p := range table {
		name := "(unknown)"
		if p.Name != nil {
			name = *p.Name
		}
		term := "?"
		if p.TermStart != nil {
			term = fmt.Sprintf("%d", p.TermStart.Year())
		}
		end := "incumbent"
		if p.TermEnd != nil {
			end = fmt.Sprintf("%d", p.TermEnd.Year())
		}
		fmt.Printf("  %2d. %-28s %s–%s\n", p.Number, name, term, end)
	}
}

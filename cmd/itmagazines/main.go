package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"itmagazines/internal"
	"itmagazines/internal/config"
	"itmagazines/internal/export"
	"itmagazines/internal/fetch"
	"itmagazines/internal/scraper"
)

// newFetcher builds the page fetcher used by every command.
var newFetcher = func(cfg config.Config) fetch.Fetcher {
	return fetch.NewClient(cfg)
}

type scrapeOptions struct {
	format      string
	concurrency int
	keepGoing   bool
}

func main() {
	cfg, err := config.Load()
	must(err)
	setupLogging(cfg.LogLevel)

	must(newRootCmd(cfg).Execute())
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &scrapeOptions{format: "json", concurrency: cfg.ScrapeConcurrency, keepGoing: cfg.ScrapeKeepGoing}

	root := &cobra.Command{
		Use:           "itmagazines",
		Short:         "Scrape the latest issue of Japanese IT magazines",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScrape(cmd.Context(), cfg, opts, nil, cmd.OutOrStdout())
		},
	}
	addScrapeFlags(root, opts)

	scrape := &cobra.Command{
		Use:   "scrape [source...]",
		Short: "Scrape all or the named sources and print one record per source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd.Context(), cfg, opts, args, cmd.OutOrStdout())
		},
	}
	addScrapeFlags(scrape, opts)

	var out string
	exportCmd := &cobra.Command{
		Use:   "export [source...]",
		Short: "Scrape and write the records to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				out = filepath.Join(cfg.OutputDir, "magazines.xlsx")
			}
			records, err := collect(cmd.Context(), cfg, opts, args)
			if len(records) > 0 {
				if exportErr := export.RecordsToXLSX(records, out); exportErr != nil {
					return exportErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(records), out)
			}
			return err
		},
	}
	exportCmd.Flags().StringVar(&out, "out", "", "output xlsx path (default $OUTPUT_DIR/magazines.xlsx)")
	exportCmd.Flags().IntVar(&opts.concurrency, "concurrency", opts.concurrency, "number of sources scraped at once")
	exportCmd.Flags().BoolVar(&opts.keepGoing, "keep-going", opts.keepGoing, "continue past sources that fail to fetch")

	sources := &cobra.Command{
		Use:   "sources",
		Short: "List supported sources",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printSources(cmd.OutOrStdout())
		},
	}

	root.AddCommand(scrape, exportCmd, sources)
	return root
}

func addScrapeFlags(cmd *cobra.Command, opts *scrapeOptions) {
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: json|yaml")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", opts.concurrency, "number of sources scraped at once")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", opts.keepGoing, "continue past sources that fail to fetch")
}

func runScrape(ctx context.Context, cfg config.Config, opts *scrapeOptions, args []string, w io.Writer) error {
	if opts.format != "json" && opts.format != "yaml" {
		return fmt.Errorf("unsupported format: %s", opts.format)
	}
	records, err := collect(ctx, cfg, opts, args)
	if printErr := printRecords(w, opts.format, records); printErr != nil {
		return printErr
	}
	return err
}

// collect scrapes the requested sources. With keep-going the records of the
// healthy sources come back together with a summary error.
func collect(ctx context.Context, cfg config.Config, opts *scrapeOptions, args []string) ([]internal.MagazineRecord, error) {
	sources, err := parseSources(args)
	if err != nil {
		return nil, err
	}

	s := scraper.New(newFetcher(cfg), scraper.WithLogger(log.Logger), scraper.WithConcurrency(opts.concurrency))
	if !opts.keepGoing {
		return s.Scrape(ctx, sources)
	}

	records, failures := s.ScrapeKeepGoing(ctx, sources)
	if len(failures) > 0 {
		names := make([]string, 0, len(failures))
		for _, f := range failures {
			names = append(names, f.Source.String())
		}
		return records, fmt.Errorf("%d source(s) failed: %s", len(failures), strings.Join(names, ", "))
	}
	return records, nil
}

func parseSources(args []string) ([]internal.Source, error) {
	if len(args) == 0 {
		return scraper.Sources(), nil
	}
	wanted := map[internal.Source]struct{}{}
	for _, arg := range args {
		src, ok := scraper.ParseSource(strings.TrimSpace(arg))
		if !ok {
			return nil, fmt.Errorf("unknown source: %s", arg)
		}
		wanted[src] = struct{}{}
	}
	out := make([]internal.Source, 0, len(wanted))
	for _, src := range scraper.Sources() {
		if _, ok := wanted[src]; ok {
			out = append(out, src)
		}
	}
	return out, nil
}

func printRecords(w io.Writer, format string, records []internal.MagazineRecord) error {
	if format == "yaml" {
		if len(records) == 0 {
			return nil
		}
		return export.WriteYAML(w, records)
	}
	for _, rec := range records {
		blob, err := rec.JSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, blob); err != nil {
			return err
		}
	}
	return nil
}

func printSources(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Code", "Key", "Name", "Publisher", "URL"})
	for _, e := range scraper.Entries() {
		t.AppendRow(table.Row{strconv.Itoa(int(e.Source)), e.Source.Key(), e.Name, e.Publisher, e.URL})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/resistanceisuseless/subsearch/internal/bruteforce"
	"github.com/resistanceisuseless/subsearch/internal/config"
	"github.com/resistanceisuseless/subsearch/internal/dns"
	"github.com/resistanceisuseless/subsearch/internal/enumeration"
	"github.com/resistanceisuseless/subsearch/internal/output"
	"github.com/resistanceisuseless/subsearch/internal/progress"
	"github.com/resistanceisuseless/subsearch/internal/sources"
	"github.com/resistanceisuseless/subsearch/internal/summary"
)

type SubSearch struct {
	config  *config.Config
	tracker *progress.Tracker
	sources []sources.Source
}

func NewSubSearch(cfg *config.Config) *SubSearch {
	return &SubSearch{
		config:  cfg,
		tracker: progress.New(cfg.Progress),
		sources: sources.Defaults(cfg),
	}
}

func (s *SubSearch) Run(ctx context.Context, domain string) (*summary.Summary, error) {
	resolver := dns.New(s.config)
	bruteForcer := bruteforce.New(s.config, resolver, s.tracker)
	enumerator := enumeration.New(bruteForcer, s.sources, s.tracker)

	result, err := enumerator.Run(ctx, domain)
	if err != nil {
		return nil, err
	}

	summaryData := summary.Analyze(result)
	summaryData.Print(s.tracker)

	writer := output.New(s.config.Output.File)
	if err := writer.WriteResults(result.Subdomains); err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}
	s.tracker.Info("")
	s.tracker.Headline("Results saved to %s", writer.Path())

	return summaryData, nil
}

func run(ctx context.Context, f *Flags) error {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if f.OutputSet || f.Config == "" {
		cfg.Output.File = f.Output
	}

	summaryData, err := NewSubSearch(cfg).Run(ctx, f.Domain)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Enumeration completed:", summaryData.Line())
	return nil
}

func main() {
	if err := newRootCmd(run).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

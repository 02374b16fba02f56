package enumeration

import (
	"context"
	"fmt"
	"time"

	"github.com/resistanceisuseless/subsearch/internal/progress"
	"github.com/resistanceisuseless/subsearch/internal/sources"
)

type Enumerator struct {
	bruteForcer BruteForcer
	sources     []sources.Source
	tracker     *progress.Tracker
}

func New(bruteForcer BruteForcer, srcs []sources.Source, tracker *progress.Tracker) *Enumerator {
	return &Enumerator{
		bruteForcer: bruteForcer,
		sources:     srcs,
		tracker:     tracker,
	}
}

// Run brute forces domain and then queries each source in order, merging
// everything into one set. Source failures are reported and contribute
// nothing; only a brute-force setup failure aborts the run.
func (e *Enumerator) Run(ctx context.Context, domain string) (*Result, error) {
	result := &Result{
		Domain:     domain,
		Subdomains: ResultSet{},
	}

	e.tracker.Info("")
	e.tracker.Headline("Starting subdomain enumeration...")
	e.tracker.Info("")

	e.tracker.Phase("Running brute-force subdomain enumeration...")
	start := time.Now()
	found, err := e.bruteForcer.Enumerate(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("brute force failed: %w", err)
	}
	result.Reports = append(result.Reports, SourceReport{
		Name:     BruteForceSource,
		Found:    len(found),
		New:      result.Subdomains.Add(found...),
		Duration: time.Since(start),
	})

	for _, source := range e.sources {
		result.Reports = append(result.Reports, e.runSource(ctx, source, domain, result.Subdomains))
	}

	return result, nil
}

func (e *Enumerator) runSource(ctx context.Context, source sources.Source, domain string, set ResultSet) SourceReport {
	e.tracker.Phase("Fetching subdomains from %s...", source.Name())

	start := time.Now()
	report := SourceReport{Name: source.Name()}

	names, err := source.Fetch(ctx, domain)
	report.Duration = time.Since(start)
	if err != nil {
		e.tracker.Error("Failed to fetch data from %s: %v", source.Name(), err)
		report.Err = err
		return report
	}

	report.Found = len(names)
	report.New = set.Add(names...)
	return report
}

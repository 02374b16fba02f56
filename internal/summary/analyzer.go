package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/resistanceisuseless/subsearch/internal/enumeration"
	"github.com/resistanceisuseless/subsearch/internal/progress"
)

type Summary struct {
	Domain        string
	TotalDomains  int
	Subdomains    []string
	Sources       []enumeration.SourceReport
	FailedSources int
}

func Analyze(result *enumeration.Result) *Summary {
	summary := &Summary{
		Domain:       result.Domain,
		TotalDomains: result.Subdomains.Len(),
		Subdomains:   result.Subdomains.Sorted(),
		Sources:      result.Reports,
	}

	for _, report := range result.Reports {
		if !report.OK() {
			summary.FailedSources++
		}
	}

	return summary
}

// Print writes the unique count, the sorted host list and one status line
// per source.
func (s *Summary) Print(p *progress.Tracker) {
	p.Info("")
	p.Headline("Found %d unique subdomains!", s.TotalDomains)
	p.Info("")

	for _, host := range s.Subdomains {
		p.Info("%s", host)
	}

	p.Info("")
	p.Info("Sources:")
	for _, report := range s.Sources {
		p.Info("   %s", formatReport(report))
	}
	if s.FailedSources > 0 {
		p.Info("   %d of %d sources failed", s.FailedSources, len(s.Sources))
	}
}

func formatReport(r enumeration.SourceReport) string {
	status := fmt.Sprintf("%d found, %d new", r.Found, r.New)
	if !r.OK() {
		status = "failed: " + r.Err.Error()
	}
	return fmt.Sprintf("%-14s %s [%s]", r.Name, status, r.Duration.Round(time.Millisecond))
}

// Line renders the summary as a single status line.
func (s *Summary) Line() string {
	var parts []string
	for _, report := range s.Sources {
		state := "ok"
		if !report.OK() {
			state = "failed"
		}
		parts = append(parts, report.Name+"="+state)
	}
	return fmt.Sprintf("%s: %d subdomains (%s)", s.Domain, s.TotalDomains, strings.Join(parts, " "))
}

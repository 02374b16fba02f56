package bruteforce

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/resistanceisuseless/subsearch/internal/config"
	"github.com/resistanceisuseless/subsearch/internal/progress"
	"github.com/resistanceisuseless/subsearch/internal/wildcard"
)

// Checker decides whether a candidate hostname resolves.
type Checker interface {
	IsResolvable(ctx context.Context, host string) bool
}

type Enumerator struct {
	checker  Checker
	wordlist string
	workers  int
	tracker  *progress.Tracker
	wildcard *wildcard.Detector
}

func New(cfg *config.Config, checker Checker, tracker *progress.Tracker) *Enumerator {
	limit := rate.Inf
	if cfg.BruteForce.RateLimit > 0 {
		limit = rate.Limit(cfg.BruteForce.RateLimit)
	}

	workers := cfg.BruteForce.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	limiter := rate.NewLimiter(limit, 1)
	e := &Enumerator{
		checker:  pacedChecker{checker: checker, limiter: limiter},
		wordlist: config.WordlistPath,
		workers:  workers,
		tracker:  tracker,
	}
	if cfg.BruteForce.DetectWildcard {
		e.wildcard = wildcard.New(e.checker)
	}
	return e
}

// pacedChecker waits on the limiter before every lookup, so wildcard probes
// and candidates share one budget.
type pacedChecker struct {
	checker Checker
	limiter *rate.Limiter
}

func (p pacedChecker) IsResolvable(ctx context.Context, host string) bool {
	// only fails once ctx is done; the lookup still runs so every host is
	// examined exactly once
	_ = p.limiter.Wait(ctx)
	return p.checker.IsResolvable(ctx, host)
}

// LoadWordlist reads one label per line, trimmed, skipping blank lines.
// File order is preserved.
func LoadWordlist(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist: %w", err)
	}

	return words, nil
}

// Candidates joins every word to domain as <word>.<domain>.
func Candidates(words []string, domain string) []string {
	candidates := make([]string, 0, len(words))
	for _, word := range words {
		candidates = append(candidates, word+"."+domain)
	}
	return candidates
}

// Enumerate checks every wordlist candidate for domain and returns the ones
// that resolve, in completion order. Each hit is reported as it arrives. It
// blocks until all checks finish. A missing or unreadable wordlist is
// returned as an error.
func (e *Enumerator) Enumerate(ctx context.Context, domain string) ([]string, error) {
	words, err := LoadWordlist(e.wordlist)
	if err != nil {
		return nil, err
	}
	candidates := Candidates(words, domain)

	// results are kept either way; the operator decides what to trust
	if e.wildcard != nil && e.wildcard.IsWildcard(ctx, domain) {
		e.tracker.Info("[!] Wildcard DNS detected for %s, brute-force results may include false positives", domain)
	}

	e.tracker.StartPhase("Brute force", len(candidates))
	found := e.check(ctx, candidates)
	e.tracker.Complete()

	return found, nil
}

func (e *Enumerator) check(ctx context.Context, candidates []string) []string {
	resolved := make(chan string)

	go func() {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for _, candidate := range candidates {
			g.Go(func() error {
				defer e.tracker.Increment()
				if e.checker.IsResolvable(ctx, candidate) {
					resolved <- candidate
				}
				return nil
			})
		}
		g.Wait()
		close(resolved)
	}()

	var found []string
	for host := range resolved {
		e.tracker.Found(host)
		found = append(found, host)
	}
	return found
}

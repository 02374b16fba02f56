package wildcard

import (
	"context"
	"strings"
	"sync"
	"testing"
)

type countingChecker struct {
	mu      sync.Mutex
	hosts   []string
	resolve func(host string) bool
}

func (c *countingChecker) IsResolvable(ctx context.Context, host string) bool {
	c.mu.Lock()
	c.hosts = append(c.hosts, host)
	c.mu.Unlock()
	return c.resolve(host)
}

func TestIsWildcard(t *testing.T) {
	all := &countingChecker{resolve: func(string) bool { return true }}
	if !New(all).IsWildcard(context.Background(), "example.com") {
		t.Error("expected wildcard when every probe resolves")
	}
	if len(all.hosts) != 5 {
		t.Errorf("probes = %d, want 5", len(all.hosts))
	}
	for _, h := range all.hosts {
		if !strings.HasSuffix(h, ".example.com") {
			t.Errorf("probe %q not under target domain", h)
		}
	}

	none := &countingChecker{resolve: func(string) bool { return false }}
	if New(none).IsWildcard(context.Background(), "example.com") {
		t.Error("expected no wildcard when nothing resolves")
	}
}

func TestGenerateTestSubdomainsUnique(t *testing.T) {
	d := New(&countingChecker{resolve: func(string) bool { return false }})
	names := d.generateTestSubdomains("example.com", 8)
	if len(names) != 8 {
		t.Fatalf("got %d names, want 8", len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate probe %q", n)
		}
		seen[n] = true
	}
}

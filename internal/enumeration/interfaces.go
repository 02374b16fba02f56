package enumeration

import (
	"context"
)

// BruteForcer discovers subdomains by resolving wordlist candidates.
type BruteForcer interface {
	Enumerate(ctx context.Context, domain string) ([]string, error)
}

// BruteForceSource is the name brute-force results are reported under.
const BruteForceSource = "brute-force"

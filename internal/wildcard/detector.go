package wildcard

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Checker decides whether a hostname resolves.
type Checker interface {
	IsResolvable(ctx context.Context, host string) bool
}

// Detector probes names that should not exist to spot wildcard DNS zones.
type Detector struct {
	checker Checker
	probes  int
}

func New(checker Checker) *Detector {
	return &Detector{
		checker: checker,
		probes:  5,
	}
}

// IsWildcard reports whether most random labels under targetDomain resolve,
// which means brute-force hits for that domain cannot be trusted on their own.
func (w *Detector) IsWildcard(ctx context.Context, targetDomain string) bool {
	resolved := 0
	for _, testDomain := range w.generateTestSubdomains(targetDomain, w.probes) {
		if w.checker.IsResolvable(ctx, testDomain) {
			resolved++
		}
	}
	return resolved*2 > w.probes
}

func (w *Detector) generateTestSubdomains(targetDomain string, count int) []string {
	var testDomains []string

	randomStrings := []string{
		"thisisaveryrandomsubdomainthatdoesnotexist",
		"wildcardtest12345",
		"nonexistentsubdomain999",
		"randomtestdomain123456789",
		"shouldnotresolve987654321",
	}

	now := time.Now().Unix()
	for i := 0; i < count && i < len(randomStrings); i++ {
		testDomains = append(testDomains, fmt.Sprintf("%s%d.%s", randomStrings[i], now+int64(i), targetDomain))
	}

	charset := "abcdefghijklmnopqrstuvwxyz0123456789"
	for len(testDomains) < count {
		var randomStr strings.Builder
		for i := 0; i < 20; i++ {
			randomStr.WriteByte(charset[rand.Intn(len(charset))])
		}
		testDomains = append(testDomains, randomStr.String()+"."+targetDomain)
	}

	return testDomains
}

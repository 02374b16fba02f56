package enumeration

import (
	"sort"
	"time"
)

// ResultSet holds discovered subdomains keyed by their exact string. No case
// folding or trailing-dot normalization is applied.
type ResultSet map[string]struct{}

func NewResultSet(names ...string) ResultSet {
	s := ResultSet{}
	s.Add(names...)
	return s
}

// Add inserts names and returns how many were not already present.
func (s ResultSet) Add(names ...string) int {
	added := 0
	for _, name := range names {
		if _, ok := s[name]; ok {
			continue
		}
		s[name] = struct{}{}
		added++
	}
	return added
}

func (s ResultSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s ResultSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending byte order.
func (s ResultSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceReport records how one phase of a run went.
type SourceReport struct {
	Name     string
	Found    int
	New      int
	Err      error
	Duration time.Duration
}

func (r SourceReport) OK() bool {
	return r.Err == nil
}

// Result is the outcome of one enumeration run.
type Result struct {
	Domain     string
	Subdomains ResultSet
	Reports    []SourceReport
}

package benchlog

import "sort"

// RegressionSet is an unordered, deduplicated set of benchmark names that
// were reported as regressed in one benchmark run. A benchmark absent from
// the set is assumed non-regressing for that run.
type RegressionSet map[string]struct{}

// NewRegressionSet returns a RegressionSet holding the given names.
func NewRegressionSet(names ...string) RegressionSet {
	set := RegressionSet{}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts a benchmark name into the set.
func (s RegressionSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains tells whether name is a member of the set.
func (s RegressionSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Empty tells whether the set has no members.
func (s RegressionSet) Empty() bool {
	return len(s) == 0
}

// Names returns the members sorted alphabetically.
func (s RegressionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Intersect returns a new set with the benchmarks present in both sets.
func (s RegressionSet) Intersect(other RegressionSet) RegressionSet {
	common := RegressionSet{}
	for name := range s {
		if other.Contains(name) {
			common.Add(name)
		}
	}
	return common
}

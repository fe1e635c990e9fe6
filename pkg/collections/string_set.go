// set of strings
package collections

import "sort"

type StringSet map[string]struct{}

// Add inserts each non-empty value into the set
func (s StringSet) Add(values ...string) {
	for _, v := range values {
		if v != "" {
			s[v] = struct{}{}
		}
	}
}

// Has checks if the value is a member of the set
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted: return the members in lexicographic order
func (s StringSet) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

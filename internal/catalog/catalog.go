package catalog

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Catalog is an immutable, sorted, duplicate-free set of package names.
// It is safe for concurrent readers.
type Catalog struct {
	names []string
}

// New normalizes names into a Catalog: empty strings are dropped, the rest
// sorted and deduplicated. The input slice is not modified.
func New(names []string) *Catalog {
	out := lo.Compact(names)
	slices.Sort(out)
	return &Catalog{names: slices.Compact(out)}
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns a copy of all entries in order
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Contains reports whether name is an entry
func (c *Catalog) Contains(name string) bool {
	_, found := slices.BinarySearch(c.names, name)
	return found
}

// Complete returns every entry that starts with line, in catalog order.
// An empty line matches the whole catalog; no match yields an empty slice.
func (c *Catalog) Complete(line string) []string {
	start, end := c.prefixRange(line)
	matches := make([]string, end-start)
	copy(matches, c.names[start:end])
	return matches
}

// prefixRange returns the half-open index range of entries with the prefix.
func (c *Catalog) prefixRange(prefix string) (int, int) {
	start, _ := slices.BinarySearch(c.names, prefix)
	end := start
	for end < len(c.names) && strings.HasPrefix(c.names[end], prefix) {
		end++
	}
	return start, end
}

// Closest returns up to n entries that fuzzy-match name, best first.
func (c *Catalog) Closest(name string, n int) []string {
	if name == "" || n <= 0 {
		return nil
	}
	matches := fuzzy.Find(name, c.names)
	if len(matches) > n {
		matches = matches[:n]
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
}

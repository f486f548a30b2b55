package history

// History is an append-only, unbounded list of submitted lines.
// Lines are stored verbatim, including empty ones.
type History struct {
	entries []string
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Add appends a submitted line
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
}

// Entries returns a copy of all lines, oldest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_AddAndEntries(t *testing.T) {
	h := NewHistory()
	assert.Empty(t, h.Entries())

	h.Add("i")
	h.Add("glibc")
	h.Add("")
	h.Add("i")

	assert.Equal(t, []string{"i", "glibc", "", "i"}, h.Entries())
}

func TestHistory_EntriesIsCopy(t *testing.T) {
	h := NewHistory()
	h.Add("u")

	entries := h.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"u"}, h.Entries())
}

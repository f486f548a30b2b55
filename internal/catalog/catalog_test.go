package catalog

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNormalized(t *testing.T, names []string) {
	t.Helper()
	for i, name := range names {
		assert.NotEmpty(t, name, "entry %d is empty", i)
		if i > 0 {
			assert.Less(t, names[i-1], name, "entries %d and %d out of order or duplicated", i-1, i)
		}
	}
}

func TestNew_SortsAndDeduplicates(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"only empty strings", []string{"", ""}, []string{}},
		{"duplicates", []string{"b", "a", "b", "a"}, []string{"a", "b"}},
		{"byte order", []string{"a", "B", "_", "A"}, []string{"A", "B", "_", "a"}},
		{"mixed empty", []string{"mesa", "", "glibc"}, []string{"glibc", "mesa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.input)
			assert.Equal(t, tt.want, c.Names())
			assertNormalized(t, c.Names())
		})
	}
}

func TestNew_DoesNotModifyInput(t *testing.T) {
	input := []string{"zeus", "apple", "apple"}
	New(input)
	assert.Equal(t, []string{"zeus", "apple", "apple"}, input)
}

func TestCatalog_Contains(t *testing.T) {
	c := New([]string{"glibc", "apple", "mesa"})

	assert.True(t, c.Contains("apple"))
	assert.True(t, c.Contains("mesa"))
	assert.False(t, c.Contains("app"))
	assert.False(t, c.Contains(""))
}

func TestCatalog_Complete(t *testing.T) {
	c := New([]string{"firefox", "firefox-developer-edition", "fish", "fzf", "git", "github-cli", "glibc"})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"empty prefix matches all", "", c.Names()},
		{"single letter", "g", []string{"git", "github-cli", "glibc"}},
		{"shared prefix", "fi", []string{"firefox", "firefox-developer-edition", "fish"}},
		{"exact entry is included", "firefox", []string{"firefox", "firefox-developer-edition"}},
		{"no match", "zzz", []string{}},
		{"past the end", "~", []string{}},
		{"before the start", "a", []string{}},
		{"longer than entries", "github-cli-extra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Complete(tt.prefix)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_CompleteOnEmptyCatalog(t *testing.T) {
	c := New(nil)
	assert.Empty(t, c.Complete(""))
	assert.Empty(t, c.Complete("a"))
}

func TestCatalog_CompleteReturnsCopy(t *testing.T) {
	c := New([]string{"apple", "apricot"})
	got := c.Complete("ap")
	got[0] = "mutated"
	assert.Equal(t, []string{"apple", "apricot"}, c.Complete("ap"))
}

// Complete must agree with a linear filter and the result must be a
// contiguous run of the catalog.
func TestCatalog_CompleteMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "abc-"

	randomName := func(maxLen int) string {
		n := rng.Intn(maxLen) + 1
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for round := 0; round < 50; round++ {
		raw := make([]string, 200)
		for i := range raw {
			raw[i] = randomName(6)
		}
		c := New(raw)
		names := c.Names()
		assertNormalized(t, names)

		for probe := 0; probe < 20; probe++ {
			prefix := randomName(3)
			if probe == 0 {
				prefix = ""
			}

			var want []string
			first := -1
			for i, name := range names {
				if strings.HasPrefix(name, prefix) {
					if first < 0 {
						first = i
					}
					want = append(want, name)
				}
			}

			got := c.Complete(prefix)
			if len(want) == 0 {
				assert.Empty(t, got, "prefix %q", prefix)
				continue
			}
			assert.Equal(t, want, got, "prefix %q", prefix)
			assert.Equal(t, names[first:first+len(want)], got, "prefix %q is not contiguous", prefix)
		}
	}
}

func TestCatalog_Closest(t *testing.T) {
	c := New([]string{"firefox", "fish", "glibc", "mesa"})

	got := c.Closest("frfx", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "firefox", got[0])

	assert.Len(t, c.Closest("f", 1), 1)
	assert.Nil(t, c.Closest("", 3))
	assert.Nil(t, c.Closest("fish", 0))
	assert.Empty(t, c.Closest("qqqq", 3))
}

func TestCatalog_NamesIsCopy(t *testing.T) {
	c := New([]string{"a", "b"})
	names := c.Names()
	names[0] = "z"
	assert.True(t, slices.Equal([]string{"a", "b"}, c.Names()))
}

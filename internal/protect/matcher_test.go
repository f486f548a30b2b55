package protect

import (
	"testing"
)

func TestPatternMatcher_Match(t *testing.T) {
	pm := NewPatternMatcher()

	tests := []struct {
		name     string
		verb     string
		pkg      string
		rule     Rule
		expected bool
	}{
		// Exact match
		{"exact match", "remove", "glibc", Rule{Pattern: "glibc"}, true},
		{"exact no match", "remove", "glibc-locales", Rule{Pattern: "glibc"}, false},

		// Glob patterns with *
		{"glob prefix", "remove", "linux-lts", Rule{Pattern: "linux*"}, true},
		{"glob prefix bare", "purge", "linux", Rule{Pattern: "linux*"}, true},
		{"glob suffix", "remove", "mesa-git", Rule{Pattern: "*-git"}, true},
		{"glob middle", "remove", "lib32-mesa-utils", Rule{Pattern: "lib32-*-utils"}, true},
		{"glob no match", "remove", "firefox", Rule{Pattern: "linux*"}, false},
		{"dots are literal", "remove", "python3x11", Rule{Pattern: "python3.11*"}, false},

		// Verb qualification
		{"verb matches", "purge", "linux", Rule{Pattern: "linux", Verb: "purge"}, true},
		{"verb case-insensitive", "purge", "linux", Rule{Pattern: "linux", Verb: "Purge"}, true},
		{"verb mismatch", "remove", "linux", Rule{Pattern: "linux", Verb: "purge"}, false},

		// Empty
		{"empty pattern", "remove", "", Rule{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pm.Match(tt.verb, tt.pkg, tt.rule)
			if result != tt.expected {
				t.Errorf("Match(%q, %q, %+v) = %v, want %v", tt.verb, tt.pkg, tt.rule, result, tt.expected)
			}
		})
	}
}

func TestPatternMatcher_MatchRules(t *testing.T) {
	pm := NewPatternMatcher()
	rules := []Rule{{Pattern: "base"}, {Pattern: "linux*", Verb: "purge"}}

	rule, ok := pm.MatchRules("purge", "linux-zen", rules)
	if !ok || rule.Pattern != "linux*" {
		t.Errorf("MatchRules(purge, linux-zen) = %+v, %v", rule, ok)
	}

	if _, ok := pm.MatchRules("remove", "linux-zen", rules); ok {
		t.Error("remove of linux-zen should not match a purge-only rule")
	}

	if _, ok := pm.MatchRules("remove", "base", nil); ok {
		t.Error("empty rules should never match")
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input    string
		expected Rule
	}{
		{"glibc", Rule{Pattern: "glibc"}},
		{"  linux*  ", Rule{Pattern: "linux*"}},
		{"Remove(linux*)", Rule{Pattern: "linux*", Verb: "remove"}},
		{"purge( base )", Rule{Pattern: "base", Verb: "purge"}},
		{"odd(", Rule{Pattern: "odd("}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParsePattern(tt.input)
			if result != tt.expected {
				t.Errorf("ParsePattern(%q) = %+v, want %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPattern(t *testing.T) {
	tests := []struct {
		input    Rule
		expected string
	}{
		{Rule{Pattern: "glibc"}, "glibc"},
		{Rule{Pattern: "linux*", Verb: "remove"}, "Remove(linux*)"},
		{Rule{Pattern: "base", Verb: "purge"}, "Purge(base)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatPattern(tt.input)
			if result != tt.expected {
				t.Errorf("FormatPattern(%+v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

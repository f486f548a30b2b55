package protect

import (
	"regexp"
	"strings"
)

// Rule is a single protection pattern, optionally limited to one verb
type Rule struct {
	Pattern string `yaml:"pattern"` // Exact name or glob like "linux*"
	Verb    string `yaml:"verb"`    // "remove", "purge", or empty for both
}

// PatternMatcher handles glob/wildcard pattern matching for package names
type PatternMatcher struct{}

// NewPatternMatcher creates a new pattern matcher
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{}
}

// Match checks if a package name under verb matches a rule
// Patterns support:
//   - Exact match: "glibc"
//   - Glob wildcard: "linux*" matches "linux", "linux-lts", "linux-firmware"
//   - Verb-qualified: "Purge(linux*)" only guards purge
func (pm *PatternMatcher) Match(verb, name string, rule Rule) bool {
	if rule.Verb != "" && !strings.EqualFold(rule.Verb, verb) {
		return false
	}

	pattern := strings.TrimSpace(rule.Pattern)
	name = strings.TrimSpace(name)
	if pattern == "" {
		return false
	}

	// Exact match
	if pattern == name {
		return true
	}

	if strings.Contains(pattern, "*") {
		return pm.matchGlobPattern(name, pattern)
	}

	return false
}

// matchGlobPattern matches patterns with * wildcards
// Converts glob pattern to regex for matching
func (pm *PatternMatcher) matchGlobPattern(name, pattern string) bool {
	// Escape regex special characters except *
	regexPattern := regexp.QuoteMeta(pattern)

	// Replace escaped \* with .*
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, `.*`)

	// Anchor the pattern
	regexPattern = "^" + regexPattern + "$"

	re, err := regexp.Compile(regexPattern)
	if err != nil {
		return false
	}

	return re.MatchString(name)
}

// MatchRules returns the first rule matching name under verb
func (pm *PatternMatcher) MatchRules(verb, name string, rules []Rule) (Rule, bool) {
	for _, rule := range rules {
		if pm.Match(verb, name, rule) {
			return rule, true
		}
	}
	return Rule{}, false
}

// ParsePattern parses a pattern string into a Rule
// Supports formats:
//   - "glibc" -> Rule{Pattern: "glibc"}
//   - "Remove(linux*)" -> Rule{Pattern: "linux*", Verb: "remove"}
func ParsePattern(pattern string) Rule {
	pattern = strings.TrimSpace(pattern)

	// Check for verb-qualified pattern
	if idx := strings.Index(pattern, "("); idx != -1 && strings.HasSuffix(pattern, ")") {
		verb := strings.ToLower(strings.TrimSpace(pattern[:idx]))
		inner := strings.TrimSuffix(strings.TrimPrefix(pattern[idx:], "("), ")")
		return Rule{
			Pattern: strings.TrimSpace(inner),
			Verb:    verb,
		}
	}

	return Rule{Pattern: pattern}
}

// FormatPattern formats a Rule back to string
func FormatPattern(rule Rule) string {
	if rule.Verb == "" {
		return rule.Pattern
	}
	return strings.ToUpper(rule.Verb[:1]) + rule.Verb[1:] + "(" + rule.Pattern + ")"
}

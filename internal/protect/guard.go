// Package protect keeps critical packages from being removed by accident.
package protect

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/quocvuong92/archie/internal/executor"
)

// ErrProtected is returned for removals that match a protection rule
var ErrProtected = errors.New("protected package")

// Guard checks destructive actions against protection rules
type Guard struct {
	matcher *PatternMatcher
	rules   []Rule
}

// NewGuard parses patterns into rules. Blank patterns are ignored.
func NewGuard(patterns []string) *Guard {
	rules := lo.FilterMap(patterns, func(p string, _ int) (Rule, bool) {
		rule := ParsePattern(p)
		return rule, rule.Pattern != ""
	})
	return &Guard{
		matcher: NewPatternMatcher(),
		rules:   rules,
	}
}

// Rules returns the parsed rules
func (g *Guard) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Check returns ErrProtected when a remove or purge targets a protected package
func (g *Guard) Check(a executor.Action) error {
	if a.Verb != executor.VerbRemove && a.Verb != executor.VerbPurge {
		return nil
	}
	rule, ok := g.matcher.MatchRules(a.Verb.String(), a.Arg, g.rules)
	if !ok {
		return nil
	}
	return fmt.Errorf("%w: %s matches %s", ErrProtected, a.Arg, FormatPattern(rule))
}

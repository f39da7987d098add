// Package model defines the data structures for the nose-to-pytest migration.
package model

import (
	"errors"
	"regexp"
)

// RuleID identifies a transformation rule within the registry.
type RuleID string

// RuleKind says which rewriter applies a rule.
type RuleKind string

const (
	// KindTextual rules match raw text with a regular expression.
	KindTextual RuleKind = "textual"

	// KindStructural rules match a parsed declaration shape by tag.
	KindStructural RuleKind = "structural"
)

// ShapeTag names a structural code shape the structural rewriter recognizes.
type ShapeTag string

const (
	// ShapeLifecycleBase is a test class inheriting the legacy test-case base.
	ShapeLifecycleBase ShapeTag = "lifecycle-base"

	// ShapeLifecycleHooks is a pair (or single) of setup/teardown methods.
	ShapeLifecycleHooks ShapeTag = "lifecycle-hooks"

	// ShapeYieldTest is a generator-style test yielding parameter tuples.
	ShapeYieldTest ShapeTag = "yield-test"
)

// ErrCannotRewrite is returned by a Producer that matched but cannot build a
// safe replacement. The rewriter leaves the match untouched and records the
// rule as unresolved for the file.
var ErrCannotRewrite = errors.New("cannot rewrite match safely")

// Producer builds replacement text from one match's captured groups.
// groups[0] is the full match; groups[i] is the i-th capture, empty when the
// group did not participate in the match.
type Producer func(groups []string) (string, error)

// Rule is one transformation: a matcher, a replacement producer, and
// ordering/visibility metadata. Textual rules carry Pattern and Produce;
// structural rules carry Shape and are executed by the structural rewriter.
type Rule struct {
	ID          RuleID
	Kind        RuleKind
	Pattern     *regexp.Regexp
	Produce     Producer
	Shape       ShapeTag
	Description string
	Priority    int
	Enabled     bool

	// Filter, when set, discards regex matches before they are rewritten or
	// recorded. It models match-side guards the pattern syntax cannot
	// express (RE2 has no lookahead).
	Filter func(groups []string) bool
}

// Textual reports whether the rule is applied by the textual rewriter.
func (r Rule) Textual() bool {
	return r.Kind == KindTextual
}

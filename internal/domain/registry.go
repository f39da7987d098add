package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eric-downes/nosey-pytest/internal/domain/rules"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// ErrRegistryFinalized is returned when registering a rule after the
// registry has been finalized.
var ErrRegistryFinalized = errors.New("registry is finalized")

// DuplicateRuleError reports a registration whose ID collides with an
// already registered rule.
type DuplicateRuleError struct {
	ID m.RuleID
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", string(e.ID))
}

// Registry holds the transformation rules for a migration run. Rules are
// registered once, the registry is finalized, and from then on the rule set
// is immutable.
type Registry struct {
	ordered   []m.Rule
	byID      map[m.RuleID]int
	finalized bool
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[m.RuleID]int{}}
}

// DefaultRegistry builds a finalized registry holding the built-in
// catalogue plus any extra rules, typically loaded from a user rules file.
func DefaultRegistry(extra ...m.Rule) (*Registry, error) {
	reg := NewRegistry()

	for _, rule := range rules.Catalog() {
		if err := reg.Register(rule); err != nil {
			return nil, err
		}
	}

	for _, rule := range extra {
		if err := reg.Register(rule); err != nil {
			return nil, err
		}
	}

	reg.Finalize()

	return reg, nil
}

// Register adds a rule to the registry. Textual rules must carry a pattern
// and a producer; IDs must be unique across the registry.
func (r *Registry) Register(rule m.Rule) error {
	if r.finalized {
		return ErrRegistryFinalized
	}

	if rule.ID == "" {
		return errors.New("rule ID is empty")
	}

	if _, exists := r.byID[rule.ID]; exists {
		return &DuplicateRuleError{ID: rule.ID}
	}

	if rule.Kind == m.KindTextual && (rule.Pattern == nil || rule.Produce == nil) {
		return fmt.Errorf("textual rule %q needs a pattern and a producer", rule.ID)
	}

	r.byID[rule.ID] = len(r.ordered)
	r.ordered = append(r.ordered, rule)

	return nil
}

// Finalize freezes the rule set. Further Register calls fail with
// ErrRegistryFinalized.
func (r *Registry) Finalize() {
	r.finalized = true
}

// Finalized reports whether the registry has been frozen.
func (r *Registry) Finalized() bool {
	return r.finalized
}

// TextualRules returns the enabled textual rules in application order:
// ascending priority, ties broken by registration order.
func (r *Registry) TextualRules() []m.Rule {
	return r.enabled(m.KindTextual)
}

// StructuralRules returns the enabled structural rules in application order.
func (r *Registry) StructuralRules() []m.Rule {
	return r.enabled(m.KindStructural)
}

func (r *Registry) enabled(kind m.RuleKind) []m.Rule {
	out := make([]m.Rule, 0, len(r.ordered))

	for _, rule := range r.ordered {
		if rule.Kind == kind && rule.Enabled {
			out = append(out, rule)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})

	return out
}

// Lookup returns the rule registered under id.
func (r *Registry) Lookup(id m.RuleID) (m.Rule, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return m.Rule{}, false
	}

	return r.ordered[idx], true
}

// All returns every registered rule, enabled or not, in registration order.
func (r *Registry) All() []m.Rule {
	out := make([]m.Rule, len(r.ordered))
	copy(out, r.ordered)

	return out
}

package domain

import (
	"errors"
	"regexp"
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func textualRule(id string, priority int) m.Rule {
	return m.Rule{
		ID:       m.RuleID(id),
		Kind:     m.KindTextual,
		Pattern:  regexp.MustCompile(regexp.QuoteMeta(id)),
		Produce:  func([]string) (string, error) { return "", nil },
		Priority: priority,
		Enabled:  true,
	}
}

func TestRegistry(t *testing.T) {
	t.Run("rejects duplicate IDs", func(t *testing.T) {
		reg := NewRegistry()

		if err := reg.Register(textualRule("dup", 10)); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		err := reg.Register(textualRule("dup", 20))

		var dupErr *DuplicateRuleError
		if !errors.As(err, &dupErr) {
			t.Fatalf("expected DuplicateRuleError, got %v", err)
		}

		if dupErr.ID != "dup" {
			t.Errorf("got ID %q", dupErr.ID)
		}
	})

	t.Run("rejects empty IDs", func(t *testing.T) {
		reg := NewRegistry()

		if err := reg.Register(textualRule("", 10)); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("textual rules need a pattern and a producer", func(t *testing.T) {
		reg := NewRegistry()

		rule := textualRule("bare", 10)
		rule.Pattern = nil

		if err := reg.Register(rule); err == nil {
			t.Fatal("expected an error for a missing pattern")
		}

		rule = textualRule("bare", 10)
		rule.Produce = nil

		if err := reg.Register(rule); err == nil {
			t.Fatal("expected an error for a missing producer")
		}
	})

	t.Run("finalized registries reject registrations", func(t *testing.T) {
		reg := NewRegistry()
		reg.Finalize()

		if !reg.Finalized() {
			t.Fatal("registry should report finalized")
		}

		if err := reg.Register(textualRule("late", 10)); !errors.Is(err, ErrRegistryFinalized) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("orders rules by priority with stable ties", func(t *testing.T) {
		reg := NewRegistry()

		for _, rule := range []m.Rule{
			textualRule("second", 10),
			textualRule("third", 10),
			textualRule("first", 5),
		} {
			if err := reg.Register(rule); err != nil {
				t.Fatalf("Register failed: %v", err)
			}
		}

		got := reg.TextualRules()
		want := []m.RuleID{"first", "second", "third"}

		if len(got) != len(want) {
			t.Fatalf("expected %d rules, got %d", len(want), len(got))
		}

		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("disabled rules are excluded from application order", func(t *testing.T) {
		reg := NewRegistry()

		off := textualRule("off", 10)
		off.Enabled = false

		if err := reg.Register(off); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := reg.Register(textualRule("on", 10)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		rules := reg.TextualRules()
		if len(rules) != 1 || rules[0].ID != "on" {
			t.Fatalf("got %+v", rules)
		}

		all := reg.All()
		if len(all) != 2 {
			t.Fatalf("All should keep disabled rules, got %d", len(all))
		}
	})

	t.Run("textual and structural rules are kept apart", func(t *testing.T) {
		reg := NewRegistry()

		if err := reg.Register(textualRule("text", 10)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		structural := m.Rule{
			ID:      "shape",
			Kind:    m.KindStructural,
			Shape:   m.ShapeLifecycleBase,
			Enabled: true,
		}
		if err := reg.Register(structural); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if rules := reg.TextualRules(); len(rules) != 1 || rules[0].ID != "text" {
			t.Fatalf("TextualRules got %+v", rules)
		}

		if rules := reg.StructuralRules(); len(rules) != 1 || rules[0].ID != "shape" {
			t.Fatalf("StructuralRules got %+v", rules)
		}
	})

	t.Run("Lookup finds registered rules", func(t *testing.T) {
		reg := NewRegistry()

		if err := reg.Register(textualRule("present", 10)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if rule, ok := reg.Lookup("present"); !ok || rule.ID != "present" {
			t.Errorf("Lookup(present) = %+v, %v", rule, ok)
		}

		if _, ok := reg.Lookup("absent"); ok {
			t.Error("Lookup(absent) should miss")
		}
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Run("holds the built-in catalogue", func(t *testing.T) {
		reg, err := DefaultRegistry()
		if err != nil {
			t.Fatalf("DefaultRegistry failed: %v", err)
		}

		if !reg.Finalized() {
			t.Error("default registry should be finalized")
		}

		for _, id := range []m.RuleID{"nose_base_import", "assert_equal", "unittest_testcase", "yield_tests"} {
			if _, ok := reg.Lookup(id); !ok {
				t.Errorf("catalogue rule %q is missing", id)
			}
		}
	})

	t.Run("extra rules join the catalogue", func(t *testing.T) {
		reg, err := DefaultRegistry(textualRule("user_rule", 50))
		if err != nil {
			t.Fatalf("DefaultRegistry failed: %v", err)
		}

		if _, ok := reg.Lookup("user_rule"); !ok {
			t.Error("extra rule is missing")
		}
	})

	t.Run("extra rules clashing with the catalogue fail", func(t *testing.T) {
		_, err := DefaultRegistry(textualRule("assert_equal", 1))

		var dupErr *DuplicateRuleError
		if !errors.As(err, &dupErr) {
			t.Fatalf("expected DuplicateRuleError, got %v", err)
		}
	})
}

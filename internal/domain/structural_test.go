package domain

import (
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func structuralRule(id string, shape m.ShapeTag) m.Rule {
	return m.Rule{
		ID:      m.RuleID(id),
		Kind:    m.KindStructural,
		Shape:   shape,
		Enabled: true,
	}
}

func TestStructuralRewriter(t *testing.T) {
	sr := NewStructuralRewriter()

	t.Run("unknown shapes are skipped", func(t *testing.T) {
		rule := structuralRule("odd", m.ShapeTag("odd-shape"))

		content := "class TestThing(unittest.TestCase):\n    def test_a(self):\n        pass\n"

		got, changes, unresolved := sr.Apply(content, []m.Rule{rule})
		if got != content || changes != nil || unresolved != nil {
			t.Errorf("got %q, %v, %v", got, changes, unresolved)
		}
	})

	t.Run("later rules see earlier rewrites", func(t *testing.T) {
		content := "class TestBoth(unittest.TestCase):\n" +
			"    def setUp(self):\n" +
			"        self.x = 1\n" +
			"\n" +
			"    def test_x(self):\n" +
			"        assert self.x == 1\n"

		rules := []m.Rule{
			structuralRule("unittest_testcase", m.ShapeLifecycleBase),
			structuralRule("lifecycle_hooks", m.ShapeLifecycleHooks),
		}

		got, changes, unresolved := sr.Apply(content, rules)

		want := "@pytest.fixture\n" +
			"def x():\n" +
			"    x = 1\n" +
			"    yield x\n" +
			"\n" +
			"def test_x(x):\n" +
			"    assert x == 1\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(changes) != 2 {
			t.Errorf("expected one record per rule, got %d", len(changes))
		}

		if len(unresolved) != 0 {
			t.Errorf("unexpected unresolved rules %v", unresolved)
		}
	})

	t.Run("records carry the replaced lines and byte spans", func(t *testing.T) {
		content := "import unittest\n\nclass TestMath(unittest.TestCase):\n    def test_add(self):\n        assert self.calc() == 2\n"

		rule := structuralRule("unittest_testcase", m.ShapeLifecycleBase)

		_, changes, _ := sr.Apply(content, []m.Rule{rule})

		if len(changes) != 1 {
			t.Fatalf("expected 1 record, got %d", len(changes))
		}

		record := changes[0]
		if record.RuleID != "unittest_testcase" {
			t.Errorf("got rule %q", record.RuleID)
		}

		if record.Original != "class TestMath(unittest.TestCase):" {
			t.Errorf("got original %q", record.Original)
		}

		if record.Replacement != "class TestMath:" {
			t.Errorf("got replacement %q", record.Replacement)
		}

		start := len("import unittest\n\n")
		if record.Span.Start != start || record.Span.End != start+len("class TestMath(unittest.TestCase):") {
			t.Errorf("got span %+v", record.Span)
		}
	})
}

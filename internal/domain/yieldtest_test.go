package domain

import (
	"strings"
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestYieldTestTransform(t *testing.T) {
	sr := NewStructuralRewriter()
	rule := structuralRule("yield_tests", m.ShapeYieldTest)

	t.Run("literal yields become parametrize rows", func(t *testing.T) {
		content := "def check_sum(left, right, total):\n" +
			"    assert left + right == total\n" +
			"\n" +
			"def test_sums():\n" +
			"    yield check_sum, 1, 2, 3\n" +
			"    yield check_sum, 2, 2, 4\n"

		got, _, unresolved := sr.Apply(content, []m.Rule{rule})

		want := "def check_sum(left, right, total):\n" +
			"    assert left + right == total\n" +
			"\n" +
			"@pytest.mark.parametrize(\"left, right, total\", [\n" +
			"    (1, 2, 3),\n" +
			"    (2, 2, 4),\n" +
			"])\n" +
			"def test_sums(left, right, total):\n" +
			"    check_sum(left, right, total)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(unresolved) != 0 {
			t.Errorf("unexpected unresolved rules %v", unresolved)
		}
	})

	t.Run("single value yields use a value parameter", func(t *testing.T) {
		content := "def test_values():\n" +
			"    yield check, 1\n" +
			"    yield check, 2\n"

		got, _, _ := sr.Apply(content, []m.Rule{rule})

		want := "@pytest.mark.parametrize(\"value\", [1, 2])\n" +
			"def test_values(value):\n" +
			"    check(value)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("loop yields parametrize over the iterable", func(t *testing.T) {
		content := "def test_range():\n" +
			"    for n in range(5):\n" +
			"        yield check_even, n\n"

		got, _, _ := sr.Apply(content, []m.Rule{rule})

		want := "@pytest.mark.parametrize(\"n\", range(5))\n" +
			"def test_range(n):\n" +
			"    check_even(n)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("docstrings stay on the rewritten test", func(t *testing.T) {
		content := "def test_docs():\n" +
			"    \"\"\"Keeps the docstring.\"\"\"\n" +
			"    yield check, 1\n"

		got, _, _ := sr.Apply(content, []m.Rule{rule})

		want := "@pytest.mark.parametrize(\"value\", [1])\n" +
			"def test_docs(value):\n" +
			"    \"\"\"Keeps the docstring.\"\"\"\n" +
			"    check(value)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("decorators stay on the rewritten test", func(t *testing.T) {
		content := "@pytest.mark.slow\n" +
			"def test_cases():\n" +
			"    yield check, 1\n" +
			"    yield check, 2\n"

		got, _, _ := sr.Apply(content, []m.Rule{rule})

		want := "@pytest.mark.slow\n" +
			"@pytest.mark.parametrize(\"value\", [1, 2])\n" +
			"def test_cases(value):\n" +
			"    check(value)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("comment lines between yields are dropped", func(t *testing.T) {
		content := "def test_notes():\n" +
			"    # edge cases\n" +
			"    yield check, 1\n"

		got, _, _ := sr.Apply(content, []m.Rule{rule})

		want := "@pytest.mark.parametrize(\"value\", [1])\n" +
			"def test_notes(value):\n" +
			"    check(value)\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("mixed callables get the manual marker", func(t *testing.T) {
		content := "def test_mixed():\n" +
			"    yield check_a, 1\n" +
			"    yield check_b, 2\n"

		got, _, unresolved := sr.Apply(content, []m.Rule{rule})

		want := "# TODO: convert yield test to pytest.mark.parametrize manually\n" +
			"def test_mixed():\n" +
			"    yield check_a, 1\n" +
			"    yield check_b, 2\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(unresolved) != 1 || unresolved[0] != "yield_tests" {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("bare yields get the manual marker", func(t *testing.T) {
		content := "def test_bare():\n" +
			"    yield 1\n"

		got, _, unresolved := sr.Apply(content, []m.Rule{rule})

		if !strings.HasPrefix(got, "# TODO: convert yield test") {
			t.Errorf("got %q", got)
		}

		if len(unresolved) != 1 {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("the marker is not duplicated on a second pass", func(t *testing.T) {
		content := "# TODO: convert yield test to pytest.mark.parametrize manually\n" +
			"def test_mixed():\n" +
			"    yield check_a, 1\n" +
			"    yield check_b, 2\n"

		got, changes, unresolved := sr.Apply(content, []m.Rule{rule})

		if got != content || changes != nil {
			t.Errorf("got %q, %v", got, changes)
		}

		if len(unresolved) != 1 {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("class method yields get the marker", func(t *testing.T) {
		content := "class TestGen:\n" +
			"    def test_items(self):\n" +
			"        yield check, 1\n"

		got, _, unresolved := sr.Apply(content, []m.Rule{rule})

		want := "class TestGen:\n" +
			"    # TODO: convert yield test to pytest.mark.parametrize manually\n" +
			"    def test_items(self):\n" +
			"        yield check, 1\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(unresolved) != 1 {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("non test generators are ignored", func(t *testing.T) {
		content := "def build_cases():\n" +
			"    yield case, 1\n"

		got, changes, unresolved := sr.Apply(content, []m.Rule{rule})

		if got != content || changes != nil || unresolved != nil {
			t.Errorf("got %q, %v, %v", got, changes, unresolved)
		}
	})
}

package rules

import (
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestClassRules(t *testing.T) {
	t.Run("class rework rules are structural", func(t *testing.T) {
		shapes := map[string]m.ShapeTag{
			"unittest_testcase": m.ShapeLifecycleBase,
			"lifecycle_hooks":   m.ShapeLifecycleHooks,
			"yield_tests":       m.ShapeYieldTest,
		}

		for id, shape := range shapes {
			rule := ruleByID(t, Classes(), id)

			if rule.Kind != m.KindStructural {
				t.Errorf("rule %s should be structural", id)
			}

			if rule.Shape != shape {
				t.Errorf("rule %s has shape %q, want %q", id, rule.Shape, shape)
			}
		}
	})
}

func TestRenameRule(t *testing.T) {
	rule := ruleByID(t, Classes(), "rename_non_test_method")

	t.Run("prefixes trailing-test method names", func(t *testing.T) {
		got := applyTextual(t, rule, "    def check_test(self):\n        pass\n")
		want := "    def test_check_test(self):\n        pass\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("prefixes camel case Test names", func(t *testing.T) {
		got := applyTextual(t, rule, "    def myTestHelper(self):\n")
		want := "    def test_myTestHelper(self):\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps async defs async", func(t *testing.T) {
		got := applyTextual(t, rule, "    async def fetch_test(self):\n")
		want := "    async def test_fetch_test(self):\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("already prefixed names are left alone", func(t *testing.T) {
		input := "    def test_rename_test(self):\n"
		if got := applyTextual(t, rule, input); got != input {
			t.Errorf("got %q", got)
		}
	})

	t.Run("functions without self are left alone", func(t *testing.T) {
		input := "def helper_test():\n"
		if got := applyTextual(t, rule, input); got != input {
			t.Errorf("got %q", got)
		}
	})
}

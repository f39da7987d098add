package rules

import (
	"regexp"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Classes returns the structural rules that rework test classes, plus the
// rename rule for test methods pytest would not collect.
func Classes() []m.Rule {
	return []m.Rule{
		{
			ID:          "unittest_testcase",
			Kind:        m.KindStructural,
			Shape:       m.ShapeLifecycleBase,
			Description: "Remove unittest.TestCase inheritance",
			Priority:    40,
			Enabled:     true,
		},
		{
			ID:          "lifecycle_hooks",
			Kind:        m.KindStructural,
			Shape:       m.ShapeLifecycleHooks,
			Description: "Convert setUp and tearDown to an autouse fixture",
			Priority:    45,
			Enabled:     true,
		},
		{
			ID:          "yield_tests",
			Kind:        m.KindStructural,
			Shape:       m.ShapeYieldTest,
			Description: "Convert yield tests to pytest.mark.parametrize",
			Priority:    50,
			Enabled:     true,
		},
		{
			ID:          "rename_non_test_method",
			Kind:        m.KindTextual,
			Pattern:     regexp.MustCompile(`((?:async[ \t]+)?def)[ \t]+(\w+(?:_test|Test\w+))\(self`),
			Produce:     templateProducer(`\1 test_\2(self`),
			Filter:      notAlreadyTestPrefixed,
			Description: "Rename non-test method to match pytest naming convention",
			Priority:    60,
			Enabled:     true,
		},
	}
}

// notAlreadyTestPrefixed skips methods whose name already carries the test_
// prefix so the rename never reapplies to its own output.
func notAlreadyTestPrefixed(groups []string) bool {
	return !strings.HasPrefix(groups[2], "test_")
}

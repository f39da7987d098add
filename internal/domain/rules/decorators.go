package rules

import (
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Decorators returns the rules that rewrite nose test decorators.
func Decorators() []m.Rule {
	return []m.Rule{
		// Superseded by nose_tools_assert_raises_decorator, kept for
		// catalogue compatibility.
		disabled(textual(
			"raises_decorator",
			`@raises\(([^)]+)\)`,
			`@pytest.mark.xfail(raises=\1)`,
			"Convert @raises to @pytest.mark.xfail",
			20,
		)),
		textual(
			"expected_failure_function",
			`(?s)def[ \t]+expected_failure\(test\):.*?return[ \t]+inner`,
			`# Replaced with pytest.mark.xfail`,
			"Remove expected_failure helper function",
			20,
		),
		textual(
			"expected_failure_decorator",
			`@expected_failure`,
			`@pytest.mark.xfail(reason="Expected to fail")`,
			"Convert @expected_failure to @pytest.mark.xfail",
			20,
		),
		textual(
			"istest_decorator",
			`@istest`,
			``,
			"Remove @istest decorator",
			20,
		),
		textual(
			"nottest_decorator",
			`@nottest`,
			`@pytest.mark.skip(reason="Not a test")`,
			"Convert @nottest to @pytest.mark.skip",
			20,
		),
	}
}

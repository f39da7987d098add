package rules

import (
	"regexp"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// kwargPattern recognizes a keyword argument, as opposed to an expression
// containing a comparison.
var kwargPattern = regexp.MustCompile(`^(\w+)\s*=[^=]`)

// digitsPattern matches a bare integer literal.
var digitsPattern = regexp.MustCompile(`^\d+$`)

// TestCaseAsserts returns the rules that rewrite unittest-style self.assert*
// calls into plain assert statements.
func TestCaseAsserts() []m.Rule {
	return []m.Rule{
		textual(
			"assert_equal",
			`self\.assertEqual\(([^,]+),\s*([^)]+)\)`,
			`assert \1 == \2`,
			"Convert assertEqual to assert",
			30,
		),
		textual(
			"assert_not_equal",
			`self\.assertNotEqual\(([^,]+),\s*([^)]+)\)`,
			`assert \1 != \2`,
			"Convert assertNotEqual to assert",
			30,
		),
		textual(
			"assert_true",
			`self\.assertTrue\(([^)]+)\)`,
			`assert \1`,
			"Convert assertTrue to assert",
			30,
		),
		textual(
			"assert_false",
			`self\.assertFalse\(([^)]+)\)`,
			`assert not \1`,
			"Convert assertFalse to assert",
			30,
		),
		{
			ID:          "assert_raises",
			Kind:        m.KindTextual,
			Pattern:     regexp.MustCompile(`self\.assertRaises\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`),
			Produce:     assertRaisesCall,
			Description: "Convert assertRaises to pytest.raises",
			Priority:    30,
			Enabled:     true,
		},
		textual(
			"assert_in",
			`self\.assertIn\(([^,]+),\s*([^)]+)\)`,
			`assert \1 in \2`,
			"Convert assertIn to assert",
			30,
		),
		textual(
			"assert_not_in",
			`self\.assertNotIn\(([^,]+),\s*([^)]+)\)`,
			`assert \1 not in \2`,
			"Convert assertNotIn to assert",
			30,
		),
		textual(
			"assert_is",
			`self\.assertIs\(([^,]+),\s*([^)]+)\)`,
			`assert \1 is \2`,
			"Convert assertIs to assert",
			30,
		),
		textual(
			"assert_is_not",
			`self\.assertIsNot\(([^,]+),\s*([^)]+)\)`,
			`assert \1 is not \2`,
			"Convert assertIsNot to assert",
			30,
		),
		textual(
			"assert_is_none",
			`self\.assertIsNone\(([^)]+)\)`,
			`assert \1 is None`,
			"Convert assertIsNone to assert",
			30,
		),
		textual(
			"assert_is_not_none",
			`self\.assertIsNotNone\(([^)]+)\)`,
			`assert \1 is not None`,
			"Convert assertIsNotNone to assert",
			30,
		),
		textual(
			"assert_almost_equal",
			`self\.assertAlmostEqual\(([^,]+),\s*([^)]+)\)`,
			`assert pytest.approx(\1) == \2`,
			"Convert assertAlmostEqual to pytest.approx",
			30,
		),
		textual(
			"assert_equal_set",
			`self\.assertEqualSet\(([^,]+),\s*([^)]+)\)`,
			`assert set(\1) == set(\2)`,
			"Convert assertEqualSet to set comparison",
			30,
		),
	}
}

// NoseToolsAsserts returns the rules that rewrite nose.tools assertion
// function calls, including their optional message argument.
func NoseToolsAsserts() []m.Rule {
	return []m.Rule{
		templated(
			"nose_tools_assert_equal",
			`assert_equal\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 == \2`,
			"Convert assert_equal() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_not_equal",
			`assert_not_equal\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 != \2`,
			"Convert assert_not_equal() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_true",
			`assert_true\(([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1`,
			"Convert assert_true() to assert",
			2, 25,
		),
		templated(
			"nose_tools_assert_false",
			`assert_false\(([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert not \1`,
			"Convert assert_false() to assert",
			2, 25,
		),
		templated(
			"nose_tools_assert_in",
			`assert_in\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 in \2`,
			"Convert assert_in() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_not_in",
			`assert_not_in\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 not in \2`,
			"Convert assert_not_in() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_is",
			`assert_is\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 is \2`,
			"Convert assert_is() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_is_not",
			`assert_is_not\(([^,]+),\s*([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 is not \2`,
			"Convert assert_is_not() to assert",
			3, 25,
		),
		templated(
			"nose_tools_assert_is_none",
			`assert_is_none\(([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 is None`,
			"Convert assert_is_none() to assert",
			2, 25,
		),
		templated(
			"nose_tools_assert_is_not_none",
			`assert_is_not_none\(([^,)]+)(?:,\s*([^)]+))?\)`,
			`assert \1 is not None`,
			"Convert assert_is_not_none() to assert",
			2, 25,
		),
		{
			ID:          "nose_tools_assert_almost_equal",
			Kind:        m.KindTextual,
			Pattern:     regexp.MustCompile(`assert_almost_equal\(([^,]+),\s*([^,)]+)(?:,\s*([^,)]+))?(?:,\s*([^)]+))?\)`),
			Produce:     almostEqualCall,
			Description: "Convert assert_almost_equal() to assert with pytest.approx()",
			Priority:    25,
			Enabled:     true,
		},
		textual(
			"nose_tools_assert_raises",
			`with\s+assert_raises\(([^)]+)\):`,
			`with pytest.raises(\1):`,
			"Convert assert_raises() context manager to pytest.raises()",
			25,
		),
		textual(
			"nose_tools_assert_raises_decorator",
			`@raises\(([^)]+)\)`,
			`@pytest.mark.xfail(raises=\1)`,
			"Convert @raises() decorator to pytest.mark.xfail",
			25,
		),
	}
}

// assertRaisesCall rewrites self.assertRaises(Exc, callable, args) into a
// pytest.raises block that invokes the callable.
func assertRaisesCall(groups []string) (string, error) {
	out := "with pytest.raises(" + groups[1] + "):\n        " + groups[2]
	if len(groups) > 3 && groups[3] != "" {
		return out + "(" + groups[3] + ")", nil
	}

	return out + "()", nil
}

// almostEqualCall rewrites assert_almost_equal() calls. The third argument
// may be a places count, a places= or delta= keyword, or a message; keyword
// arguments it cannot classify make the call unsafe to rewrite.
func almostEqualCall(groups []string) (string, error) {
	out := "assert " + groups[1] + " == pytest.approx(" + groups[2]

	third := ""
	if len(groups) > 3 {
		third = strings.TrimSpace(groups[3])
	}

	fourth := ""
	if len(groups) > 4 {
		fourth = groups[4]
	}

	switch {
	case third == "":
		out += ")"
	case digitsPattern.MatchString(third):
		out += ", abs=" + third + ")"
	case kwargPattern.MatchString(third):
		value := strings.TrimSpace(third[strings.Index(third, "=")+1:])

		switch kwargPattern.FindStringSubmatch(third)[1] {
		case "places":
			if !digitsPattern.MatchString(value) {
				return "", m.ErrCannotRewrite
			}

			out += ", abs=1e-" + value + ")"
		case "delta":
			out += ", abs=" + value + ")"
		case "msg":
			if fourth != "" {
				return "", m.ErrCannotRewrite
			}

			return out + "), " + value, nil
		default:
			return "", m.ErrCannotRewrite
		}
	default:
		// A bare non-numeric third argument is a message.
		if fourth != "" {
			return "", m.ErrCannotRewrite
		}

		return out + "), " + third, nil
	}

	if fourth != "" {
		out += ", " + fourth
	}

	return out, nil
}

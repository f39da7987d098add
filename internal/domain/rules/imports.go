package rules

import (
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Imports returns the rules that rewrite nose import statements. Rules that
// keep a record of what they replaced emit a trailing comment; the line
// anchors keep those comments from matching again on a second run.
func Imports() []m.Rule {
	return []m.Rule{
		textual(
			"nose_tools_assertions_import",
			`from[ \t]+nose\.tools[ \t]+import[ \t]+assert_.*?(?:\n|$)`,
			``,
			"Remove nose.tools assertion imports",
			5,
		),
		textual(
			"nose_tools_paren_import",
			`(?s)from[ \t]+nose\.tools[ \t]+import[ \t]+\(.*?\)[ \t]*`,
			`import pytest`,
			"Replace parenthesized nose.tools imports with pytest",
			5,
		),
		textual(
			"nose_raises_import",
			`from[ \t]+nose\.tools[ \t]+import[ \t]+raises`,
			`import pytest`,
			"Replace nose.tools.raises import with pytest",
			10,
		),
		textual(
			"nose_base_import",
			`(?m)^([ \t]*)import[ \t]+nose[ \t]*$`,
			`\1import pytest`,
			"Replace nose import with pytest",
			10,
		),
		textual(
			"nose_from_import",
			`(?m)^([ \t]*)from[ \t]+nose[ \t]+import[ \t]+(.*)$`,
			`\1import pytest # Replacing: from nose import \2`,
			"Replace nose imports with pytest",
			10,
		),
		textual(
			"nose_tools_import",
			`(?m)^([ \t]*)from[ \t]+nose\.tools[ \t]+import[ \t]+(.*)$`,
			`\1import pytest # Replacing: from nose.tools import \2`,
			"Replace nose.tools imports with pytest",
			10,
		),
		textual(
			"nose_tools_assert_equal_import",
			`(?m)^([ \t]*)from[ \t]+nose\.tools[ \t]+import[ \t]+(.*\bassert_equal\b.*)$`,
			`\1import pytest # Replacing: from nose.tools import \2`,
			"Replace nose.tools import assert_equal with pytest",
			5,
		),
	}
}

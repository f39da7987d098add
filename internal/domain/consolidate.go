package domain

import (
	"regexp"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

var (
	commentedPytestImport = regexp.MustCompile(`import[ \t]+pytest[ \t]+#[^\n]*\n`)
	pytestImport          = regexp.MustCompile(`import[ \t]+pytest`)
	blankLineRuns         = regexp.MustCompile(`\n{3,}`)

	// A module docstring is the first statement: only comment lines and blank
	// lines may precede it. Docstrings further down must not attract the
	// import.
	moduleDocstring = regexp.MustCompile(`(?s)\A(?:(?:#[^\n]*)?\n)*(?:""".*?"""|'''.*?''')[ \t]*\n`)
)

// consolidateImports cleans up after the import rules: the placeholder
// imports they emitted are dropped and a single pytest import is inserted,
// after the module docstring when there is one.
func consolidateImports(content string) (string, []m.ApplicationRecord) {
	var records []m.ApplicationRecord

	content = commentedPytestImport.ReplaceAllString(content, "")

	content, removed := stripPlainPytestImports(content)
	if removed > 0 {
		records = append(records, m.ApplicationRecord{
			RuleID:      "deduplicate_pytest_import",
			Original:    "import pytest",
			Replacement: "",
		})
	}

	content = blankLineRuns.ReplaceAllString(content, "\n\n")

	insertAt := 0
	if loc := moduleDocstring.FindStringIndex(content); loc != nil {
		insertAt = loc[1]
	}

	content = content[:insertAt] + "import pytest\n\n" + content[insertAt:]

	records = append(records, m.ApplicationRecord{
		RuleID:      "add_pytest_import",
		Replacement: "import pytest",
		Span:        m.MatchSpan{Start: insertAt, End: insertAt},
	})

	return content, records
}

// stripPlainPytestImports removes every uncommented pytest import so the
// consolidated one can be inserted in a deterministic place.
func stripPlainPytestImports(content string) (string, int) {
	matches := pytestImport.FindAllStringIndex(content, -1)
	if matches == nil {
		return content, 0
	}

	var b strings.Builder

	last, removed := 0, 0

	for _, loc := range matches {
		rest := content[loc[1]:]

		// Not a pytest import when the name continues, as in pytest_mock.
		if rest != "" && isIdentChar(rest[0]) {
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "#") {
			continue
		}

		b.WriteString(content[last:loc[0]])

		last = loc[1]
		removed++
	}

	if removed == 0 {
		return content, 0
	}

	b.WriteString(content[last:])

	return b.String(), removed
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

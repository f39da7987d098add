// Package rules provides the built-in transformation catalogue for migrating
// nose test files to pytest.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Expand substitutes \1..\9 backreferences in template with the captured
// groups of a match. A reference to a group that did not participate expands
// to the empty string.
func Expand(template string, groups []string) string {
	var b strings.Builder

	for i := 0; i < len(template); i++ {
		if template[i] == '\\' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
			n := int(template[i+1] - '0')
			if n < len(groups) {
				b.WriteString(groups[n])
			}

			i++

			continue
		}

		b.WriteByte(template[i])
	}

	return b.String()
}

// textual builds an enabled textual rule whose producer expands a
// backreference template.
func textual(id, pattern, template, description string, priority int) m.Rule {
	return m.Rule{
		ID:          m.RuleID(id),
		Kind:        m.KindTextual,
		Pattern:     regexp.MustCompile(pattern),
		Produce:     templateProducer(template),
		Description: description,
		Priority:    priority,
		Enabled:     true,
	}
}

// templated builds a textual rule whose replacement carries an optional
// trailing message group.
func templated(id, pattern, template, description string, msgGroup, priority int) m.Rule {
	return m.Rule{
		ID:          m.RuleID(id),
		Kind:        m.KindTextual,
		Pattern:     regexp.MustCompile(pattern),
		Produce:     optionalMessage(template, msgGroup),
		Description: description,
		Priority:    priority,
		Enabled:     true,
	}
}

// disabled returns a copy of the rule with Enabled off. Disabled rules stay
// listed in the registry but are never applied.
func disabled(rule m.Rule) m.Rule {
	rule.Enabled = false
	return rule
}

func templateProducer(template string) m.Producer {
	return func(groups []string) (string, error) {
		return Expand(template, groups), nil
	}
}

// optionalMessage builds a producer for assertion templates with an optional
// message argument. When the message group captured text it is appended as
// ", msg"; otherwise the expanded template stands alone.
func optionalMessage(template string, msgGroup int) m.Producer {
	if msgGroup < 1 || msgGroup > 9 {
		panic(fmt.Sprintf("optionalMessage group %d out of range", msgGroup))
	}

	return func(groups []string) (string, error) {
		out := Expand(template, groups)
		if msgGroup < len(groups) && groups[msgGroup] != "" {
			out += ", " + groups[msgGroup]
		}

		return out, nil
	}
}

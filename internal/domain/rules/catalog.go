package rules

import (
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Catalog returns every built-in rule in registration order. Rules sharing a
// priority apply in the order they appear here.
func Catalog() []m.Rule {
	var all []m.Rule

	all = append(all, Imports()...)
	all = append(all, Decorators()...)
	all = append(all, TestCaseAsserts()...)
	all = append(all, NoseToolsAsserts()...)
	all = append(all, Classes()...)

	return all
}

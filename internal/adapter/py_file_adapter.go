package adapter

import (
	"path/filepath"
	"strings"

	"github.com/eric-downes/nosey-pytest/pkg/pyscan"
)

// PyFileAdapter encapsulates Python-specific inspection logic so the domain
// layer can focus on migration rules while delegating source-layout details
// to an infrastructure component.
type PyFileAdapter interface {
	// Outline builds a declaration outline (classes, methods, functions) for
	// the provided source text.
	Outline(content string) *pyscan.Module

	// UsesNose reports whether the source still references the nose framework.
	UsesNose(content string) bool

	// UsesPytest reports whether the source imports pytest.
	UsesPytest(content string) bool

	// MatchesTestPattern reports whether a file name matches any of the test
	// discovery globs (e.g. test_*.py).
	MatchesTestPattern(name string, patterns []string) bool

	// CountTests counts test functions and test methods in an outline.
	CountTests(outline *pyscan.Module) int

	// Traits lists source features that usually need structural conversion.
	Traits(content string) []string
}

// LocalPyFileAdapter provides a concrete PyFileAdapter backed by pyscan.
type LocalPyFileAdapter struct{}

// NewLocalPyFileAdapter constructs a LocalPyFileAdapter.
func NewLocalPyFileAdapter() *LocalPyFileAdapter {
	return &LocalPyFileAdapter{}
}

// Outline parses the source into a declaration outline.
func (a *LocalPyFileAdapter) Outline(content string) *pyscan.Module {
	return pyscan.Parse(content)
}

// UsesNose applies the same content heuristic the migration tooling has always
// used: any nose import or a nose.tools reference marks the file.
func (a *LocalPyFileAdapter) UsesNose(content string) bool {
	return strings.Contains(content, "import nose") ||
		strings.Contains(content, "from nose") ||
		strings.Contains(content, "nose.tools")
}

// UsesPytest reports whether the file carries a pytest import.
func (a *LocalPyFileAdapter) UsesPytest(content string) bool {
	return strings.Contains(content, "import pytest")
}

// MatchesTestPattern checks the base name against each glob pattern.
func (a *LocalPyFileAdapter) MatchesTestPattern(name string, patterns []string) bool {
	base := filepath.Base(name)

	for _, pattern := range patterns {
		ok, err := filepath.Match(pattern, base)
		if err != nil {
			continue
		}

		if ok {
			return true
		}
	}

	return false
}

// CountTests counts module-level test functions plus test methods on classes.
func (a *LocalPyFileAdapter) CountTests(outline *pyscan.Module) int {
	count := 0

	for _, fn := range outline.Functions {
		if strings.HasPrefix(fn.Name, "test") {
			count++
		}
	}

	for _, class := range outline.Classes {
		for _, method := range class.Methods {
			if strings.HasPrefix(method.Name, "test") {
				count++
			}
		}
	}

	return count
}

// Traits reports the features that the per-file analysis surfaces as notes.
func (a *LocalPyFileAdapter) Traits(content string) []string {
	var traits []string

	if strings.Contains(content, "yield") && strings.Contains(content, "test_") {
		traits = append(traits, "Contains yield tests - may need manual conversion")
	}

	if strings.Contains(content, "setUp(") || strings.Contains(content, "tearDown(") {
		traits = append(traits, "Contains setUp/tearDown methods")
	}

	if strings.Contains(content, "unittest.TestCase") {
		traits = append(traits, "Inherits from unittest.TestCase")
	}

	return traits
}

package domain

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/eric-downes/nosey-pytest/internal/adapter"
	m "github.com/eric-downes/nosey-pytest/internal/model"
	"github.com/eric-downes/nosey-pytest/pkg/pyscan"
)

// complexRuleThreshold is the number of applicable rules above which a file
// is reported as Complex.
const complexRuleThreshold = 5

const unreadableFileNote = "Could not read file - may be binary or inaccessible"

// ScanArgs narrows a scan to parts of a project.
type ScanArgs struct {
	// Root is the project root all relative paths resolve against.
	Root m.Path

	// Paths are the test directories relative to Root. An empty list scans
	// the root itself.
	Paths []string

	// Patterns are the test file name globs, e.g. test_*.py.
	Patterns []string

	// Exclude lists path fragments that disqualify a file.
	Exclude []string
}

func (a ScanArgs) patterns() []string {
	if len(a.Patterns) == 0 {
		return []string{"test_*.py", "*_test.py"}
	}

	return a.Patterns
}

func (a ScanArgs) dirs() []string {
	if len(a.Paths) == 0 {
		return []string{"."}
	}

	return a.Paths
}

// Scanner locates test files still using nose and sizes the migration work.
type Scanner interface {
	// FindNoseFiles walks the configured test directories and returns the
	// files whose content still references nose, sorted by path.
	FindNoseFiles(args ScanArgs) ([]m.Path, error)

	// FindPytestFiles returns test files that already import pytest and
	// carry no nose references, sorted by path.
	FindPytestFiles(args ScanArgs) ([]m.Path, error)

	// Analyze reports which rules would fire on one file.
	Analyze(path m.Path) m.Analysis

	// Rescan recomputes the counts and directory statuses in the tracking
	// data from the current state of the tree.
	Rescan(args ScanArgs, data m.TrackingData) (m.TrackingData, error)
}

type scanner struct {
	fs       adapter.SourceFSAdapter
	py       adapter.PyFileAdapter
	registry *Registry
}

// NewScanner constructs a Scanner backed by the provided filesystem and
// Python inspection adapters.
func NewScanner(fs adapter.SourceFSAdapter, py adapter.PyFileAdapter, registry *Registry) Scanner {
	return &scanner{
		fs:       fs,
		py:       py,
		registry: registry,
	}
}

func (s *scanner) FindNoseFiles(args ScanArgs) ([]m.Path, error) {
	found, err := s.findMatching(args, s.py.UsesNose)
	if err != nil {
		return nil, err
	}

	slog.Debug("Scan finished", "noseFiles", len(found))

	return found, nil
}

func (s *scanner) FindPytestFiles(args ScanArgs) ([]m.Path, error) {
	return s.findMatching(args, func(content string) bool {
		return s.py.UsesPytest(content) && !s.py.UsesNose(content)
	})
}

func (s *scanner) findMatching(args ScanArgs, matches func(content string) bool) ([]m.Path, error) {
	var found []m.Path

	for _, dir := range args.dirs() {
		files, err := s.testFilesIn(args, dir)
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			content, err := s.fs.ReadFile(path)
			if err != nil {
				// Binary or inaccessible files are not candidates.
				continue
			}

			if matches(string(content)) {
				found = append(found, path)
			}
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// testFilesIn lists the test files under one directory relative to the root.
// A missing directory yields no files rather than an error.
func (s *scanner) testFilesIn(args ScanArgs, dir string) ([]m.Path, error) {
	walkRoot := s.fs.JoinPath(string(args.Root), dir)

	if _, err := s.fs.FileInfo(walkRoot); err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Test directory does not exist", "dir", walkRoot)
			return nil, nil
		}

		return nil, fmt.Errorf("stat %s: %w", walkRoot, err)
	}

	var files []m.Path

	err := s.fs.Walk(walkRoot, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !s.py.MatchesTestPattern(path, args.patterns()) {
			return nil
		}

		if excluded(path, args.Exclude) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", walkRoot, err)
	}

	return files, nil
}

func excluded(path string, fragments []string) bool {
	for _, fragment := range fragments {
		if fragment != "" && strings.Contains(path, fragment) {
			return true
		}
	}

	return false
}

func (s *scanner) Analyze(path m.Path) m.Analysis {
	analysis := m.Analysis{
		Path:       path,
		Complexity: m.ComplexitySimple,
	}

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		analysis.Complexity = m.ComplexityUnknown
		analysis.Notes = append(analysis.Notes, unreadableFileNote)
		analysis.Err = err.Error()

		return analysis
	}

	content := string(raw)
	outline := s.py.Outline(content)

	for _, rule := range s.registry.TextualRules() {
		count := s.textualMatches(content, rule)
		if count > 0 {
			analysis.Applicable = append(analysis.Applicable, m.RuleMatchCount{
				RuleID:      rule.ID,
				Description: rule.Description,
				Matches:     count,
			})
		}
	}

	for _, rule := range s.registry.StructuralRules() {
		count := structuralMatches(outline, rule.Shape)
		if count > 0 {
			analysis.Applicable = append(analysis.Applicable, m.RuleMatchCount{
				RuleID:      rule.ID,
				Description: rule.Description,
				Matches:     count,
			})
		}
	}

	if len(analysis.Applicable) > complexRuleThreshold {
		analysis.Complexity = m.ComplexityComplex
	}

	analysis.Notes = append(analysis.Notes, s.py.Traits(content)...)

	if tests := s.py.CountTests(outline); tests > 0 {
		analysis.Notes = append(analysis.Notes, fmt.Sprintf("Defines %d test function(s)", tests))
	}

	return analysis
}

// textualMatches counts how often a textual rule would fire, honoring the
// rule's match filter.
func (s *scanner) textualMatches(content string, rule m.Rule) int {
	matches := rule.Pattern.FindAllStringSubmatch(content, -1)
	if rule.Filter == nil {
		return len(matches)
	}

	count := 0

	for _, groups := range matches {
		if rule.Filter(groups) {
			count++
		}
	}

	return count
}

// structuralMatches counts candidate declarations for one shape tag.
func structuralMatches(outline *pyscan.Module, shape m.ShapeTag) int {
	count := 0

	switch shape {
	case m.ShapeLifecycleBase:
		for _, class := range outline.Classes {
			for _, base := range class.Bases {
				if base == "unittest.TestCase" {
					count++
					break
				}
			}
		}

	case m.ShapeLifecycleHooks:
		for _, class := range outline.Classes {
			if class.Method("setup") != nil || class.Method("teardown") != nil {
				count++
			}
		}

	case m.ShapeYieldTest:
		for _, fn := range outline.Functions {
			if strings.HasPrefix(fn.Name, "test") && yieldsTests(outline, fn) {
				count++
			}
		}

		for _, class := range outline.Classes {
			for _, method := range class.Methods {
				if strings.HasPrefix(method.Name, "test") && yieldsTests(outline, method) {
					count++
				}
			}
		}
	}

	return count
}

func (s *scanner) Rescan(args ScanArgs, data m.TrackingData) (m.TrackingData, error) {
	if data.DirectoryStatus == nil {
		data.DirectoryStatus = map[string]m.DirectoryStatus{}
	}

	data.TotalTests = 0
	data.NoseTests = 0
	data.PytestTests = 0

	for _, dir := range args.dirs() {
		status, err := s.rescanDir(args, dir, data.MigratedFiles)
		if err != nil {
			return data, err
		}

		data.DirectoryStatus[dir] = status
		data.TotalTests += status.Total
		data.NoseTests += status.Total - status.Migrated
	}

	data.PytestTests = data.TotalTests - data.NoseTests

	return data, nil
}

// rescanDir recounts one test directory. A file counts as migrated when it is
// recorded in the tracking list or no longer references nose at all.
func (s *scanner) rescanDir(args ScanArgs, dir string, migratedFiles []string) (m.DirectoryStatus, error) {
	status := m.DirectoryStatus{Status: m.DirectoryPending}

	files, err := s.testFilesIn(args, dir)
	if err != nil {
		return status, err
	}

	recorded := make(map[string]struct{}, len(migratedFiles))
	for _, rel := range migratedFiles {
		recorded[rel] = struct{}{}
	}

	for _, path := range files {
		status.Total++

		rel, err := s.fs.RelPath(args.Root, path)
		if err != nil {
			rel = path
		}

		if _, ok := recorded[string(rel)]; ok {
			status.Migrated++
			continue
		}

		content, err := s.fs.ReadFile(path)
		if err == nil && !s.py.UsesNose(string(content)) {
			status.Migrated++
		}
	}

	if status.Migrated == status.Total {
		status.Status = m.DirectoryDone
	}

	return status, nil
}

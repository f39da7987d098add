package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func TestTUI_DisplayMigrationPlan(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		var buf bytes.Buffer
		tui := NewTUI(&buf)

		tui.DisplayMigrationPlan(context.Background(), 0, 1, false)

		if !strings.Contains(buf.String(), "No nose test files found") {
			t.Errorf("Output should contain empty message, got: %s", buf.String())
		}
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		tui := NewTUI(&buf)

		tui.DisplayMigrationPlan(context.Background(), 3, 2, true)

		if !strings.Contains(buf.String(), "Migrating 3 file(s) with 2 worker(s) (dry run)") {
			t.Errorf("Output should contain the plan line, got: %s", buf.String())
		}
	})
}

func TestTUI_DisplayFileResult(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	result := m.FileTransformResult{
		Path:    "tests/test_math.py",
		Changed: true,
		Written: true,
	}

	tui.DisplayFileResult(context.Background(), 1, 3, result)

	output := buf.String()
	if !strings.Contains(output, "1/3") {
		t.Error("Output should contain progress counter")
	}
	if !strings.Contains(output, "tests/test_math.py") {
		t.Error("Output should contain the file path")
	}
	if !strings.Contains(output, "migrated") {
		t.Errorf("Output should contain the result label, got: %s", output)
	}
}

func TestTUI_DisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	summary := m.MigrationSummary{
		FilesProcessed: 4,
		FilesChanged:   2,
		FilesUnchanged: 1,
		FilesFailed:    1,
		FilesWritten:   2,
		FilesRestored:  1,
		FilesDiscarded: 1,
		RuleFires: map[m.RuleID]int{
			"nose_tools_assert_equal": 3,
			"nose_base_import":        1,
		},
		UnresolvedFiles: []m.Path{"tests/test_yield.py"},
		ConverterSkips:  1,
		VerifyPasses:    1,
		VerifyFails:     1,
	}

	if err := tui.DisplaySummary(context.Background(), summary); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	wantStrings := []string{
		"Nosey Pytest",
		"Migration complete: 1/4 files migrated successfully",
		"nose_base_import: 1 fire(s)",
		"nose_tools_assert_equal: 3 fire(s)",
		"Files needing manual attention:",
		"tests/test_yield.py",
		"Changed: 2 | Unchanged: 1 | Discarded: 1 | Failed: 1 | Restored: 1",
		"Verification: 1 passed, 1 failed",
		"Converter: 1 skipped, 0 failed",
	}

	for _, want := range wantStrings {
		if !strings.Contains(output, want) {
			t.Errorf("DisplaySummary() output missing %q, got:\n%s", want, output)
		}
	}

	// Rule fires are listed in sorted order.
	if strings.Index(output, "nose_base_import") > strings.Index(output, "nose_tools_assert_equal") {
		t.Error("Rule fires should be sorted by rule ID")
	}
}

func TestTUI_DisplayScanReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayScanReport(context.Background(), nil); err != nil {
		t.Fatalf("DisplayScanReport() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No nose test files found") {
		t.Errorf("Expected empty message, got: %s", buf.String())
	}
}

func TestTUI_DisplayScanReport_SmallList(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	analyses := []m.Analysis{
		{
			Path: "tests/test_math.py",
			Applicable: []m.RuleMatchCount{
				{RuleID: "nose_tools_assert_equal", Description: "assert_equal to assert", Matches: 2},
			},
			Complexity: m.ComplexitySimple,
		},
		{
			Path:       "tests/test_shapes.py",
			Complexity: m.ComplexityComplex,
			Notes:      []string{"Contains yield tests - may need manual conversion"},
		},
	}

	if err := tui.DisplayScanReport(context.Background(), analyses); err != nil {
		t.Fatalf("DisplayScanReport() error = %v", err)
	}

	output := buf.String()

	wantStrings := []string{
		"Scan report:",
		"tests/test_math.py",
		"tests/test_shapes.py",
		"assert_equal to assert (2 matches)",
		"Contains yield tests - may need manual conversion",
		"Total: 2 file(s), 1 complex, 2 rule match(es)",
	}

	for _, want := range wantStrings {
		if !strings.Contains(output, want) {
			t.Errorf("DisplayScanReport() output missing %q, got:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayRules(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	rules := []m.Rule{
		{ID: "nose_base_import", Kind: m.KindTextual, Priority: 10, Enabled: true, Description: "Drop import nose"},
		{ID: "raises_decorator", Kind: m.KindTextual, Priority: 20, Enabled: false, Description: "Convert @raises"},
	}

	if err := tui.DisplayRules(context.Background(), rules); err != nil {
		t.Fatalf("DisplayRules() error = %v", err)
	}

	output := buf.String()

	wantStrings := []string{
		"Transformation rules:",
		"nose_base_import",
		"raises_decorator",
		"(disabled)",
		"Total: 2 rule(s), 1 enabled",
	}

	for _, want := range wantStrings {
		if !strings.Contains(output, want) {
			t.Errorf("DisplayRules() output missing %q, got:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayStatus(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	data := m.TrackingData{
		MigratedFiles: []string{"tests/test_math.py"},
		TotalTests:    5,
		NoseTests:     2,
		PytestTests:   3,
		DirectoryStatus: map[string]m.DirectoryStatus{
			"tests":       {Status: m.DirectoryPending, Migrated: 1, Total: 4},
			"integration": {Status: m.DirectoryDone, Migrated: 1, Total: 1},
		},
		LastUpdated: "2026-02-11T10:00:00Z",
	}

	if err := tui.DisplayStatus(context.Background(), data); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	output := buf.String()

	wantStrings := []string{
		"Migration status:",
		"integration: 1/1 (DONE)",
		"tests: 1/4 (PENDING)",
		"Tests: 5 total, 2 nose, 3 pytest",
		"Migrated files recorded: 1",
		"Last updated: 2026-02-11T10:00:00Z",
	}

	for _, want := range wantStrings {
		if !strings.Contains(output, want) {
			t.Errorf("DisplayStatus() output missing %q, got:\n%s", want, output)
		}
	}

	// Directories are sorted, so integration comes before tests.
	if strings.Index(output, "integration") > strings.Index(output, "tests:") {
		t.Error("Directories should be sorted alphabetically")
	}
}

func TestTUI_DisplayVerifyResults(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	results := []m.VerifyResult{
		{Path: "tests/test_a.py", Passed: true, Output: "2 passed"},
		{Path: "tests/test_b.py", Passed: false, Output: "assert 1 == 2\nlong traceback follows"},
	}

	if err := tui.DisplayVerifyResults(context.Background(), results); err != nil {
		t.Fatalf("DisplayVerifyResults() error = %v", err)
	}

	output := buf.String()

	wantStrings := []string{
		"Verification results:",
		"tests/test_a.py",
		"tests/test_b.py",
		"assert 1 == 2",
		"Verification: 1/2 passed",
	}

	for _, want := range wantStrings {
		if !strings.Contains(output, want) {
			t.Errorf("DisplayVerifyResults() output missing %q, got:\n%s", want, output)
		}
	}

	// Only the first line of a failure's output is shown.
	if strings.Contains(output, "long traceback follows") {
		t.Error("DisplayVerifyResults() should truncate failure output to the first line")
	}
}

func TestPagedReportModel_View_Basic(t *testing.T) {
	model := newPagedReportModel("🔍 Scan report:", []string{"  line one", "  line two"}, "nothing here")
	model.summary = []string{"  📊 Total: 2"}
	model.height = 24

	view := model.View()

	wantStrings := []string{
		"Nosey Pytest",
		"Scan report:",
		"line one",
		"line two",
		"Total: 2",
	}

	for _, want := range wantStrings {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q, got:\n%s", want, view)
		}
	}

	if strings.Contains(view, "Lines ") {
		t.Error("View() should not show pagination footer for a short list")
	}
}

func TestPagedReportModel_View_Empty(t *testing.T) {
	model := newPagedReportModel("🔍 Scan report:", nil, "No nose test files found")

	view := model.View()

	if !strings.Contains(view, "No nose test files found") {
		t.Errorf("View() should contain the empty message, got:\n%s", view)
	}
}

func TestPagedReportModel_Pagination_VisibleContent(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("  tests/test_%03d.py", i)
	}

	model := newPagedReportModel("🔍 Scan report:", lines, "nothing here")
	model.height = 20
	model.width = 80

	if !model.needsPagination() {
		t.Fatal("Expected needsPagination to be true with 100 lines and height 20")
	}

	view := model.View()

	// First page shows the first line but not the last.
	if !strings.Contains(view, lines[0]) {
		t.Error("First page should contain the first line")
	}
	if strings.Contains(view, lines[len(lines)-1]) {
		t.Error("First page should NOT contain the last line")
	}

	perPage := model.itemsPerPage()
	if !strings.Contains(view, fmt.Sprintf("Lines 1-%d of 100", perPage)) {
		t.Errorf("View() should show the line range footer, got:\n%s", view)
	}

	for _, help := range []string{"↑", "↓", "q"} {
		if !strings.Contains(view, help) {
			t.Errorf("View() should show navigation help %q", help)
		}
	}

	// Jumping to the bottom makes the last line visible.
	model.offset = model.maxOffset()
	view = model.View()

	if !strings.Contains(view, lines[len(lines)-1]) {
		t.Error("Last page should contain the last line")
	}
}

func TestPagedReportModel_Scrolling(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("  line %d", i)
	}

	model := newPagedReportModel("title", lines, "empty")
	model.height = 20

	model = model.scrollDown()
	if model.offset != 1 {
		t.Fatalf("scrollDown() offset = %d, want 1", model.offset)
	}

	model = model.scrollPageDown()
	if model.offset != 1+model.itemsPerPage() {
		t.Fatalf("scrollPageDown() offset = %d, want %d", model.offset, 1+model.itemsPerPage())
	}

	model.offset = model.maxOffset()
	model = model.scrollDown()
	if model.offset != model.maxOffset() {
		t.Fatalf("scrollDown() past the end, offset = %d, want %d", model.offset, model.maxOffset())
	}

	model.offset = 0
	model = model.scrollUp()
	if model.offset != 0 {
		t.Fatalf("scrollUp() at the top, offset = %d, want 0", model.offset)
	}
}

func TestPagedReportModel_Update(t *testing.T) {
	model := newPagedReportModel("title", []string{"  one"}, "empty")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	sized, ok := updated.(pagedReportModel)
	if !ok {
		t.Fatalf("Update() returned %T, want pagedReportModel", updated)
	}

	if sized.height != 30 || sized.width != 80 {
		t.Fatalf("Update() size = %dx%d, want 80x30", sized.width, sized.height)
	}

	quit, cmd := sized.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if q, ok := quit.(pagedReportModel); !ok || !q.quitting {
		t.Fatal("Update() with q should mark the model as quitting")
	}

	if cmd == nil {
		t.Fatal("Update() with q should return the quit command")
	}
}

package domain

import (
	"reflect"
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
	"github.com/eric-downes/nosey-pytest/pkg"
)

func TestSummaryFromResults(t *testing.T) {
	t.Run("aggregates a mixed batch", func(t *testing.T) {
		spool, err := pkg.NewResultSpool[m.FileTransformResult](t.TempDir())
		if err != nil {
			t.Fatalf("creating spool: %v", err)
		}
		defer spool.Close()

		results := []m.FileTransformResult{
			{
				Path:    "tests/test_a.py",
				Changed: true,
				Written: true,
				ChangeLog: m.ChangeLog{
					{RuleID: "assert_equal"},
					{RuleID: "assert_equal"},
					{RuleID: "nose_tools_import"},
				},
				Converter: m.ConverterApplied,
				Verify:    m.VerifyPassed,
			},
			{
				Path:      "tests/test_b.py",
				Converter: m.ConverterNotNeeded,
				Verify:    m.VerifySkipped,
			},
			{
				Path:       "tests/test_c.py",
				Changed:    true,
				Written:    true,
				Restored:   true,
				ChangeLog:  m.ChangeLog{{RuleID: "nose_tools_import"}},
				Unresolved: []m.RuleID{"yield_tests"},
				Converter:  m.ConverterSkipped,
				Verify:     m.VerifyFailed,
			},
			{
				Path:      "tests/test_d.py",
				Changed:   true,
				Discarded: true,
				ChangeLog: m.ChangeLog{{RuleID: "assert_true"}},
				Converter: m.ConverterUnchanged,
				Verify:    m.VerifySkipped,
			},
			{
				Path:      "tests/test_e.py",
				Failure:   "read tests/test_e.py: permission denied",
				Converter: m.ConverterFailed,
			},
		}
		for _, result := range results {
			if err := spool.Append(result); err != nil {
				t.Fatalf("appending result: %v", err)
			}
		}

		summary, err := summaryFromResults(spool)
		if err != nil {
			t.Fatalf("summaryFromResults() error = %v", err)
		}

		if summary.FilesProcessed != 5 {
			t.Errorf("FilesProcessed = %d, want 5", summary.FilesProcessed)
		}

		if summary.FilesChanged != 3 || summary.FilesUnchanged != 1 || summary.FilesFailed != 1 {
			t.Errorf("changed/unchanged/failed = %d/%d/%d, want 3/1/1",
				summary.FilesChanged, summary.FilesUnchanged, summary.FilesFailed)
		}

		if summary.FilesWritten != 2 || summary.FilesRestored != 1 || summary.FilesDiscarded != 1 {
			t.Errorf("written/restored/discarded = %d/%d/%d, want 2/1/1",
				summary.FilesWritten, summary.FilesRestored, summary.FilesDiscarded)
		}

		wantFires := map[m.RuleID]int{
			"assert_equal":      2,
			"nose_tools_import": 2,
			"assert_true":       1,
		}
		if !reflect.DeepEqual(summary.RuleFires, wantFires) {
			t.Errorf("RuleFires = %v, want %v", summary.RuleFires, wantFires)
		}

		wantUnresolved := []m.Path{"tests/test_c.py"}
		if !reflect.DeepEqual(summary.UnresolvedFiles, wantUnresolved) {
			t.Errorf("UnresolvedFiles = %v, want %v", summary.UnresolvedFiles, wantUnresolved)
		}

		if summary.ConverterSkips != 1 || summary.ConverterFails != 1 {
			t.Errorf("converter skips/fails = %d/%d, want 1/1", summary.ConverterSkips, summary.ConverterFails)
		}

		if summary.VerifyPasses != 1 || summary.VerifyFails != 1 {
			t.Errorf("verify passes/fails = %d/%d, want 1/1", summary.VerifyPasses, summary.VerifyFails)
		}

		if got := summary.FilesMigrated(); got != 1 {
			t.Errorf("FilesMigrated() = %d, want 1", got)
		}
	})

	t.Run("empty spool yields a zero summary", func(t *testing.T) {
		spool, err := pkg.NewResultSpool[m.FileTransformResult](t.TempDir())
		if err != nil {
			t.Fatalf("creating spool: %v", err)
		}
		defer spool.Close()

		summary, err := summaryFromResults(spool)
		if err != nil {
			t.Fatalf("summaryFromResults() error = %v", err)
		}

		if summary.FilesProcessed != 0 {
			t.Errorf("FilesProcessed = %d, want 0", summary.FilesProcessed)
		}

		if summary.RuleFires == nil || len(summary.RuleFires) != 0 {
			t.Errorf("RuleFires = %v, want an empty map", summary.RuleFires)
		}
	})
}

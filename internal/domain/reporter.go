package domain

import (
	m "github.com/eric-downes/nosey-pytest/internal/model"
	"github.com/eric-downes/nosey-pytest/pkg"
)

// summaryFromResults folds the spooled per-file outcomes into one batch
// summary. Pure aggregation, no IO beyond ranging the spool.
func summaryFromResults(results pkg.ResultSpool[m.FileTransformResult]) (m.MigrationSummary, error) {
	summary := m.MigrationSummary{
		RuleFires: map[m.RuleID]int{},
	}

	err := results.Range(func(_ uint64, result m.FileTransformResult) error {
		summary.FilesProcessed++

		switch {
		case result.Failed():
			summary.FilesFailed++
		case result.Changed:
			summary.FilesChanged++
		default:
			summary.FilesUnchanged++
		}

		if result.Written {
			summary.FilesWritten++
		}

		if result.Restored {
			summary.FilesRestored++
		}

		if result.Discarded {
			summary.FilesDiscarded++
		}

		for id, count := range result.ChangeLog.RuleCounts() {
			summary.RuleFires[id] += count
		}

		if len(result.Unresolved) > 0 {
			summary.UnresolvedFiles = append(summary.UnresolvedFiles, result.Path)
		}

		switch result.Converter {
		case m.ConverterSkipped:
			summary.ConverterSkips++
		case m.ConverterFailed:
			summary.ConverterFails++
		case m.ConverterNotNeeded, m.ConverterApplied, m.ConverterUnchanged:
			// Neutral outcomes carry no summary counter.
		}

		switch result.Verify {
		case m.VerifyPassed:
			summary.VerifyPasses++
		case m.VerifyFailed:
			summary.VerifyFails++
		case m.VerifySkipped:
			// Not counted.
		}

		return nil
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

package model

// MatchSpan is a half-open [Start, End) byte range into the text a rule was
// applied against.
type MatchSpan struct {
	Start int
	End   int
}

// Overlaps reports whether two spans share at least one byte.
func (s MatchSpan) Overlaps(other MatchSpan) bool {
	return s.Start < other.End && other.Start < s.End
}

// ApplicationRecord captures one successful rewrite.
type ApplicationRecord struct {
	RuleID      RuleID
	Original    string
	Replacement string
	Span        MatchSpan
}

// ChangeLog is the ordered, append-only sequence of rewrites for one file.
type ChangeLog []ApplicationRecord

// RuleCounts returns how many records each rule contributed.
func (l ChangeLog) RuleCounts() map[RuleID]int {
	counts := make(map[RuleID]int, len(l))
	for _, record := range l {
		counts[record.RuleID]++
	}

	return counts
}

// ConverterStatus reports what the external assertion converter did for a file.
type ConverterStatus string

const (
	// ConverterNotNeeded means the file had nothing left for the converter.
	ConverterNotNeeded ConverterStatus = "not-needed"
	// ConverterSkipped means the converter was disabled or unavailable.
	ConverterSkipped ConverterStatus = "skipped"
	// ConverterApplied means the converter ran and changed the text.
	ConverterApplied ConverterStatus = "applied"
	// ConverterUnchanged means the converter ran but changed nothing.
	ConverterUnchanged ConverterStatus = "unchanged"
	// ConverterFailed means the converter exited with an error.
	ConverterFailed ConverterStatus = "failed"
)

// VerifyStatus reports the outcome of running the migrated file's tests.
type VerifyStatus string

const (
	// VerifySkipped means verification was disabled or not applicable.
	VerifySkipped VerifyStatus = "skipped"
	// VerifyPassed means the migrated file's tests passed.
	VerifyPassed VerifyStatus = "passed"
	// VerifyFailed means the migrated file's tests failed.
	VerifyFailed VerifyStatus = "failed"
)

// FileTransformResult is the outcome of processing a single file.
type FileTransformResult struct {
	Path      Path
	Changed   bool
	Written   bool
	Restored  bool
	Discarded bool
	ChangeLog ChangeLog

	// Unresolved lists rules that matched but declined to rewrite, in first
	// occurrence order with no duplicates.
	Unresolved []RuleID

	Converter     ConverterStatus
	ConverterNote string
	Verify        VerifyStatus
	VerifyNote    string

	// Failure is set when the file itself could not be processed (unreadable,
	// unwritable). Other files in the batch continue regardless.
	Failure string
}

// Failed reports whether the file hit a per-file fatal error.
func (r FileTransformResult) Failed() bool {
	return r.Failure != ""
}

// MigrationSummary aggregates a batch of file results.
type MigrationSummary struct {
	FilesProcessed  int
	FilesChanged    int
	FilesUnchanged  int
	FilesWritten    int
	FilesRestored   int
	FilesDiscarded  int
	FilesFailed     int
	RuleFires       map[RuleID]int
	UnresolvedFiles []Path
	ConverterSkips  int
	ConverterFails  int
	VerifyPasses    int
	VerifyFails     int
}

// FilesMigrated is the count of files that were rewritten and stayed
// rewritten after verification.
func (s MigrationSummary) FilesMigrated() int {
	return s.FilesWritten - s.FilesRestored
}

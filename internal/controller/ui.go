// Package controller provides output adapters for displaying migration results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// UI defines the interface for rendering migration output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScanReport(ctx context.Context, analyses []m.Analysis) error
	DisplayRules(ctx context.Context, rules []m.Rule) error
	DisplayStatus(ctx context.Context, data m.TrackingData) error
	DisplayMigrationPlan(ctx context.Context, files int, workers int, dryRun bool)
	DisplayFileResult(ctx context.Context, done int, total int, result m.FileTransformResult)
	DisplaySummary(ctx context.Context, summary m.MigrationSummary) error
	DisplayVerifyResults(ctx context.Context, results []m.VerifyResult) error
}

// NewUI picks the interactive display for terminals and plain command
// output everywhere else.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w writes to an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// resultLabel summarizes one file outcome in a short phrase shared by both
// UI implementations.
func resultLabel(result m.FileTransformResult) string {
	switch {
	case result.Failed():
		return "failed: " + result.Failure
	case !result.Changed:
		return "no changes"
	case result.Discarded:
		return "changes discarded"
	case result.Restored:
		return "tests failed, backup restored"
	case !result.Written:
		return "would change (dry run)"
	case result.Verify == m.VerifyPassed:
		return "migrated, tests passed"
	default:
		return "migrated"
	}
}

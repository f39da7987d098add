package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanReport prints one table row per candidate file plus any
// per-file notes below the table.
func (s *SimpleUI) DisplayScanReport(ctx context.Context, analyses []m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(analyses) == 0 {
		s.printf("No nose test files found\n")
		return nil
	}

	s.printf("\n%s", renderScanTable(analyses))

	noted := false

	for _, analysis := range analyses {
		if len(analysis.Notes) == 0 {
			continue
		}

		if !noted {
			s.printf("\nNotes:\n")

			noted = true
		}

		for _, note := range analysis.Notes {
			s.printf("  %s: %s\n", analysis.Path, note)
		}
	}

	return nil
}

func renderScanTable(analyses []m.Analysis) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Complexity", "Rules", "Matches"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalMatches := 0

	for _, analysis := range analyses {
		matches := 0
		for _, applicable := range analysis.Applicable {
			matches += applicable.Matches
		}

		totalMatches += matches

		table.Append([]string{
			string(analysis.Path),
			string(analysis.Complexity),
			fmt.Sprintf("%d", len(analysis.Applicable)),
			fmt.Sprintf("%d", matches),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(analyses)),
		"",
		"",
		fmt.Sprintf("%d", totalMatches),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayRules prints the rule catalogue ordered by priority.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []m.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ordered := sortRules(rules)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Priority", "ID", "Kind", "Status", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, rule := range ordered {
		status := "enabled"
		if !rule.Enabled {
			status = "disabled"
		}

		table.Append([]string{
			fmt.Sprintf("%d", rule.Priority),
			string(rule.ID),
			string(rule.Kind),
			status,
			rule.Description,
		})
	}

	table.SetFooter([]string{"", "", "", "Total", fmt.Sprintf("%d", len(ordered))})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func sortRules(rules []m.Rule) []m.Rule {
	ordered := make([]m.Rule, len(rules))
	copy(ordered, rules)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}

		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}

// DisplayStatus prints per-directory progress and overall counts.
func (s *SimpleUI) DisplayStatus(ctx context.Context, data m.TrackingData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if data.LastUpdated != "" {
		s.printf("Migration status (last updated %s)\n", data.LastUpdated)
	} else {
		s.printf("Migration status\n")
	}

	s.printf("\n%s", renderStatusTable(data))
	s.printf("Tests: %d total, %d nose, %d pytest\n", data.TotalTests, data.NoseTests, data.PytestTests)
	s.printf("Migrated files recorded: %d\n", len(data.MigratedFiles))

	return nil
}

func renderStatusTable(data m.TrackingData) string {
	directories := make([]string, 0, len(data.DirectoryStatus))
	for directory := range data.DirectoryStatus {
		directories = append(directories, directory)
	}

	sort.Strings(directories)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Directory", "Status", "Migrated", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalMigrated := 0
	totalTests := 0

	for _, directory := range directories {
		status := data.DirectoryStatus[directory]
		totalMigrated += status.Migrated
		totalTests += status.Total

		table.Append([]string{
			directory,
			status.Status,
			fmt.Sprintf("%d", status.Migrated),
			fmt.Sprintf("%d", status.Total),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Dirs %d", len(directories)),
		"",
		fmt.Sprintf("%d", totalMigrated),
		fmt.Sprintf("%d", totalTests),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayMigrationPlan announces the upcoming run.
func (s *SimpleUI) DisplayMigrationPlan(ctx context.Context, files int, workers int, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if files == 0 {
		s.printf("No nose test files found\n")
		return
	}

	suffix := ""
	if dryRun {
		suffix = " (dry run)"
	}

	s.printf("Migrating %d file(s) with %d worker(s)%s\n", files, workers, suffix)
}

// DisplayFileResult prints one line per completed file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, done int, total int, result m.FileTransformResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d/%d] %s: %s\n", done, total, result.Path, resultLabel(result))
}

// DisplaySummary prints the batch outcome with a per-rule fire table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.MigrationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nMigration complete: %d/%d files migrated successfully\n",
		summary.FilesMigrated(), summary.FilesProcessed)

	if len(summary.RuleFires) > 0 {
		s.printf("\n%s", renderRuleFiresTable(summary.RuleFires))
	}

	if summary.FilesUnchanged > 0 {
		s.printf("No transformations applied to %d file(s)\n", summary.FilesUnchanged)
	}

	if summary.FilesDiscarded > 0 {
		s.printf("Changes discarded for %d file(s)\n", summary.FilesDiscarded)
	}

	if summary.FilesFailed > 0 {
		s.printf("Failed to process %d file(s)\n", summary.FilesFailed)
	}

	if len(summary.UnresolvedFiles) > 0 {
		s.printf("Files needing manual attention:\n")

		for _, path := range summary.UnresolvedFiles {
			s.printf("  %s\n", path)
		}
	}

	if summary.ConverterSkips > 0 || summary.ConverterFails > 0 {
		s.printf("Converter: %d skipped, %d failed\n", summary.ConverterSkips, summary.ConverterFails)
	}

	if summary.VerifyPasses > 0 || summary.VerifyFails > 0 {
		s.printf("Verification: %d passed, %d failed\n", summary.VerifyPasses, summary.VerifyFails)
	}

	return nil
}

func renderRuleFiresTable(fires map[m.RuleID]int) string {
	ids := make([]m.RuleID, 0, len(fires))
	for id := range fires {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Fires"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, id := range ids {
		table.Append([]string{string(id), fmt.Sprintf("%d", fires[id])})

		total += fires[id]
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Rules %d", len(ids)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayVerifyResults prints one line per verified file plus a pass count.
func (s *SimpleUI) DisplayVerifyResults(ctx context.Context, results []m.VerifyResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		s.printf("No migrated files to verify\n")
		return nil
	}

	passed := 0

	for _, result := range results {
		marker := "FAIL"
		if result.Passed {
			marker = "PASS"

			passed++
		}

		s.printf("%s %s\n", marker, result.Path)

		if !result.Passed && result.Output != "" {
			s.printf("  %s\n", result.Output)
		}
	}

	s.printf("Verification: %d/%d passed\n", passed, len(results))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

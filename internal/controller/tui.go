package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

const (
	// ANSI color codes for zero values (dark gray, faint).
	grayColor  = "\033[2;90m" // Faint + dark gray
	resetColor = "\033[0m"    // Reset
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	bar    progress.Model
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
}

// DisplayScanReport shows per-file rule matches using a paged list.
func (p *TUI) DisplayScanReport(ctx context.Context, analyses []m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	complexFiles := 0
	totalMatches := 0

	lines := []string{}

	for _, analysis := range analyses {
		matches := 0
		for _, applicable := range analysis.Applicable {
			matches += applicable.Matches
		}

		totalMatches += matches

		if analysis.Complexity == m.ComplexityComplex {
			complexFiles++
		}

		color := ""
		if matches == 0 {
			color = grayColor
		}

		lines = append(lines, fmt.Sprintf("  %s%s: %d rule(s), %d match(es), %s%s",
			color, analysis.Path, len(analysis.Applicable), matches, analysis.Complexity, resetColor))

		for _, applicable := range analysis.Applicable {
			lines = append(lines, fmt.Sprintf("    - %s (%d matches)", applicable.Description, applicable.Matches))
		}

		for _, note := range analysis.Notes {
			lines = append(lines, "    "+warnStyle.Render(note))
		}
	}

	model := newPagedReportModel("🔍 Scan report:", lines, "No nose test files found")
	model.summary = []string{
		fmt.Sprintf("  📊 Total: %d file(s), %d complex, %d rule match(es)",
			len(analyses), complexFiles, totalMatches),
	}

	return p.displayPaged(model)
}

// DisplayRules shows the rule catalogue ordered by priority.
func (p *TUI) DisplayRules(ctx context.Context, rules []m.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ordered := sortRules(rules)
	enabled := 0

	lines := make([]string, 0, len(ordered))

	for _, rule := range ordered {
		if rule.Enabled {
			enabled++

			lines = append(lines, fmt.Sprintf("  %3d %s [%s] %s",
				rule.Priority, rule.ID, rule.Kind, rule.Description))

			continue
		}

		lines = append(lines, fmt.Sprintf("  %s%3d %s [%s] %s (disabled)%s",
			grayColor, rule.Priority, rule.ID, rule.Kind, rule.Description, resetColor))
	}

	model := newPagedReportModel("📜 Transformation rules:", lines, "No rules registered")
	model.summary = []string{
		fmt.Sprintf("  📊 Total: %d rule(s), %d enabled", len(ordered), enabled),
	}

	return p.displayPaged(model)
}

// DisplayStatus shows per-directory migration progress.
func (p *TUI) DisplayStatus(ctx context.Context, data m.TrackingData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	directories := make([]string, 0, len(data.DirectoryStatus))
	for directory := range data.DirectoryStatus {
		directories = append(directories, directory)
	}

	// Simple sort by string comparison
	for i := 0; i < len(directories); i++ {
		for j := i + 1; j < len(directories); j++ {
			if directories[i] > directories[j] {
				directories[i], directories[j] = directories[j], directories[i]
			}
		}
	}

	lines := make([]string, 0, len(directories))

	for _, directory := range directories {
		status := data.DirectoryStatus[directory]

		marker := "…"
		if status.Status == m.DirectoryDone {
			marker = passStyle.Render("✓")
		}

		lines = append(lines, fmt.Sprintf("  %s %s: %d/%d (%s)",
			marker, directory, status.Migrated, status.Total, status.Status))
	}

	model := newPagedReportModel("📈 Migration status:", lines, "No tracked directories")
	model.summary = []string{
		fmt.Sprintf("  📊 Tests: %d total, %d nose, %d pytest", data.TotalTests, data.NoseTests, data.PytestTests),
		fmt.Sprintf("  📊 Migrated files recorded: %d", len(data.MigratedFiles)),
	}

	if data.LastUpdated != "" {
		model.summary = append(model.summary, "  Last updated: "+data.LastUpdated)
	}

	return p.displayPaged(model)
}

// DisplayMigrationPlan announces the upcoming run.
func (p *TUI) DisplayMigrationPlan(ctx context.Context, files int, workers int, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if files == 0 {
		fmt.Fprintf(p.output, "  📭 No nose test files found\n")
		return
	}

	suffix := ""
	if dryRun {
		suffix = " (dry run)"
	}

	fmt.Fprintf(p.output, "  📊 Migrating %d file(s) with %d worker(s)%s\n", files, workers, suffix)
}

// DisplayFileResult streams one progress line per completed file.
func (p *TUI) DisplayFileResult(ctx context.Context, done int, total int, result m.FileTransformResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	label := resultLabel(result)

	switch {
	case result.Failed() || result.Restored:
		label = failStyle.Render(label)
	case result.Changed && result.Written:
		label = passStyle.Render(label)
	case result.Changed:
		label = warnStyle.Render(label)
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}

	fmt.Fprintf(p.output, "%s %d/%d %s: %s\n", p.bar.ViewAs(ratio), done, total, result.Path, label)
}

// DisplaySummary prints the batch outcome. The summary is always short,
// so it prints directly without pagination.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.MigrationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	renderBanner(&b)

	fmt.Fprintf(&b, "  📊 Migration complete: %d/%d files migrated successfully\n\n",
		summary.FilesMigrated(), summary.FilesProcessed)

	ids := make([]m.RuleID, 0, len(summary.RuleFires))
	for id := range summary.RuleFires {
		ids = append(ids, id)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] > ids[j] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}

	for _, id := range ids {
		fmt.Fprintf(&b, "    %s: %d fire(s)\n", id, summary.RuleFires[id])
	}

	if len(summary.UnresolvedFiles) > 0 {
		b.WriteString("\n  Files needing manual attention:\n")

		for _, path := range summary.UnresolvedFiles {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("⚠"), path)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Changed: %d | Unchanged: %d | Discarded: %d | Failed: %d | Restored: %d\n",
		summary.FilesChanged, summary.FilesUnchanged, summary.FilesDiscarded,
		summary.FilesFailed, summary.FilesRestored)

	if summary.VerifyPasses > 0 || summary.VerifyFails > 0 {
		fmt.Fprintf(&b, "  Verification: %d passed, %d failed\n", summary.VerifyPasses, summary.VerifyFails)
	}

	if summary.ConverterSkips > 0 || summary.ConverterFails > 0 {
		fmt.Fprintf(&b, "  Converter: %d skipped, %d failed\n", summary.ConverterSkips, summary.ConverterFails)
	}

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// DisplayVerifyResults shows per-file verification outcomes.
func (p *TUI) DisplayVerifyResults(ctx context.Context, results []m.VerifyResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	passed := 0

	lines := make([]string, 0, len(results))

	for _, result := range results {
		if result.Passed {
			passed++

			lines = append(lines, fmt.Sprintf("  %s %s", passStyle.Render("✓"), result.Path))

			continue
		}

		lines = append(lines, fmt.Sprintf("  %s %s", failStyle.Render("✗"), result.Path))

		if result.Output != "" {
			lines = append(lines, "      "+firstLine(result.Output))
		}
	}

	model := newPagedReportModel("🧪 Verification results:", lines, "No migrated files to verify")
	model.summary = []string{
		fmt.Sprintf("  📊 Verification: %d/%d passed", passed, len(results)),
	}

	return p.displayPaged(model)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}

	return s
}

// displayPaged prints the model directly when it fits on screen and starts
// an interactive program otherwise.
func (p *TUI) displayPaged(model pagedReportModel) error {
	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderBanner(b *strings.Builder) {
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║            Nosey Pytest - Nose to Pytest Migration             ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")
}

// pagedReportModel is the Bubble Tea model behind every paged report view.
type pagedReportModel struct {
	title    string
	lines    []string
	summary  []string
	empty    string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagedReportModel(title string, lines []string, empty string) pagedReportModel {
	return pagedReportModel{
		title:    title,
		lines:    lines,
		empty:    empty,
		height:   0, // Will be set on first WindowSizeMsg
		width:    0,
		offset:   0,
		quitting: false,
	}
}

func (prm pagedReportModel) Init() tea.Cmd {
	return nil
}

func (prm pagedReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		prm.height = msg.Height
		prm.width = msg.Width

		return prm, nil

	case tea.KeyMsg:
		return prm.handleKeyPress(msg)
	}

	return prm, nil
}

func (prm pagedReportModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		prm.quitting = true
		return prm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		prm.quitting = true
		return prm, tea.Quit

	case "down", "j":
		return prm.scrollDown(), nil

	case "up", "k":
		return prm.scrollUp(), nil

	case "g", "home":
		prm.offset = 0
		return prm, nil

	case "G", "end":
		prm.offset = prm.maxOffset()
		return prm, nil

	case "d", "pgdown":
		return prm.scrollPageDown(), nil

	case "u", "pgup":
		return prm.scrollPageUp(), nil
	}

	return prm, nil
}

func (prm pagedReportModel) scrollDown() pagedReportModel {
	prm.offset++

	maxOffset := prm.maxOffset()
	if prm.offset > maxOffset {
		prm.offset = maxOffset
	}

	return prm
}

func (prm pagedReportModel) scrollUp() pagedReportModel {
	prm.offset--
	if prm.offset < 0 {
		prm.offset = 0
	}

	return prm
}

func (prm pagedReportModel) scrollPageDown() pagedReportModel {
	targetLine := prm.offset + prm.itemsPerPage()

	maxOffset := prm.maxOffset()
	if targetLine > maxOffset {
		targetLine = maxOffset
	}

	prm.offset = targetLine

	return prm
}

func (prm pagedReportModel) scrollPageUp() pagedReportModel {
	targetLine := prm.offset - prm.itemsPerPage()
	if targetLine < 0 {
		targetLine = 0
	}

	prm.offset = targetLine

	return prm
}

func (prm pagedReportModel) itemsPerPage() int {
	if prm.height == 0 {
		return 10
	}
	// Reserved lines:
	// - Header box: 4 lines
	// - Title + blank: 2 lines
	// - Summary section: 3 lines
	// - Footer (pagination): 3 lines
	// Total: 12 lines
	reserved := 12

	available := prm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (prm pagedReportModel) maxOffset() int {
	totalLines := len(prm.lines)
	available := prm.itemsPerPage()

	if totalLines <= available {
		return 0
	}

	return totalLines - available
}

func (prm pagedReportModel) needsPagination() bool {
	if len(prm.lines) == 0 || prm.height == 0 {
		return false
	}

	return len(prm.lines) > prm.itemsPerPage()
}

func (prm pagedReportModel) View() string {
	var b strings.Builder

	renderBanner(&b)

	if len(prm.lines) == 0 {
		fmt.Fprintf(&b, "  📭 %s\n", prm.empty)
		return b.String()
	}

	fmt.Fprintf(&b, "  %s\n\n", prm.title)

	needsPagination := prm.needsPagination()

	for _, line := range prm.applyPagination(needsPagination) {
		fmt.Fprintf(&b, "%s\n", line)
	}

	if len(prm.summary) > 0 {
		b.WriteString("\n")

		for _, line := range prm.summary {
			fmt.Fprintf(&b, "%s\n", line)
		}
	}

	prm.writeFooter(&b, needsPagination)

	return b.String()
}

func (prm pagedReportModel) applyPagination(needsPagination bool) []string {
	if !needsPagination {
		return prm.lines
	}

	available := prm.itemsPerPage()
	start := prm.offset
	end := start + available

	if start >= len(prm.lines) {
		start = len(prm.lines) - 1
		if start < 0 {
			start = 0
		}
	}

	if end > len(prm.lines) {
		end = len(prm.lines)
	}

	return prm.lines[start:end]
}

func (prm pagedReportModel) writeFooter(b *strings.Builder, needsPagination bool) {
	if !needsPagination {
		return
	}

	b.WriteString("\n")

	available := prm.itemsPerPage()

	currentLineEnd := prm.offset + available
	if currentLineEnd > len(prm.lines) {
		currentLineEnd = len(prm.lines)
	}

	fmt.Fprintf(b, "  Lines %d-%d of %d\n", prm.offset+1, currentLineEnd, len(prm.lines))
	b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
}

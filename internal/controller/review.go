package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pmezard/go-difflib/difflib"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Review choices offered for each changed file.
const (
	reviewApply = "Apply changes"
	reviewSkip  = "Skip this file"
)

// KeepPolicy applies every change without asking.
type KeepPolicy struct{}

// Decide always keeps the change.
func (KeepPolicy) Decide(_ m.Path, _ string, _ string) (bool, error) {
	return true, nil
}

// DiscardPolicy reports changes without writing any of them.
type DiscardPolicy struct{}

// Decide always discards the change.
func (DiscardPolicy) Decide(_ m.Path, _ string, _ string) (bool, error) {
	return false, nil
}

// PromptPolicy shows a unified diff and asks whether to apply it.
type PromptPolicy struct {
	// Output receives the diff. Defaults to stdout.
	Output io.Writer

	// Stdin overrides the prompt input, mainly for tests.
	Stdin io.ReadCloser
}

// Decide renders the diff and prompts for a decision.
func (p PromptPolicy) Decide(path m.Path, before, after string) (bool, error) {
	out := p.Output
	if out == nil {
		out = os.Stdout
	}

	diff, err := renderDiff(path, before, after)
	if err != nil {
		return false, err
	}

	fmt.Fprintf(out, "\n%s\n", diff)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	selectPrompt := promptui.Select{
		Label:     fmt.Sprintf("Apply changes to %s", path),
		Items:     []string{reviewApply, reviewSkip},
		Templates: templates,
		Size:      2,
	}

	if p.Stdin != nil {
		selectPrompt.Stdin = p.Stdin
	}

	_, choice, err := selectPrompt.Run()
	if err != nil {
		return false, fmt.Errorf("review prompt: %w", err)
	}

	return choice == reviewApply, nil
}

func renderDiff(path m.Path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (migrated)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return colorizeDiff(diff), nil
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = passStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = failStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

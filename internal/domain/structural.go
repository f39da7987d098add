package domain

import (
	"log/slog"
	"sort"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
	"github.com/eric-downes/nosey-pytest/pkg/pyscan"
)

// shapeTransform reworks every declaration of one shape across a module.
// It returns the line edits to apply and whether any site had to be left
// for manual follow-up.
type shapeTransform func(mod *pyscan.Module) ([]lineEdit, bool)

// shapeTransforms binds each structural shape to its transform.
var shapeTransforms = map[m.ShapeTag]shapeTransform{
	m.ShapeLifecycleBase:  transformLifecycleBase,
	m.ShapeLifecycleHooks: transformLifecycleHooks,
	m.ShapeYieldTest:      transformYieldTests,
}

// lineEdit replaces the inclusive line range [start, end] with new lines.
// An empty lines slice deletes the range.
type lineEdit struct {
	start int
	end   int
	lines []string
}

// StructuralRewriter applies declaration-level rules to source text.
type StructuralRewriter interface {
	Apply(content string, rules []m.Rule) (string, m.ChangeLog, []m.RuleID)
}

type structuralRewriter struct{}

// NewStructuralRewriter creates the declaration-level rewriting engine.
func NewStructuralRewriter() StructuralRewriter {
	return &structuralRewriter{}
}

// Apply runs each structural rule over a fresh parse of the current text,
// so one rule's rewrites are visible to the next.
func (sr *structuralRewriter) Apply(content string, rules []m.Rule) (string, m.ChangeLog, []m.RuleID) {
	var changes m.ChangeLog

	var unresolved []m.RuleID

	for _, rule := range rules {
		transform, ok := shapeTransforms[rule.Shape]
		if !ok {
			continue
		}

		mod := pyscan.Parse(content)

		edits, incomplete := transform(mod)
		if incomplete {
			unresolved = append(unresolved, rule.ID)
		}

		if len(edits) == 0 {
			continue
		}

		sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

		changes = append(changes, editRecords(mod, rule.ID, edits)...)
		content = applyEdits(mod, edits)

		slog.Debug("Applied structural rule", "rule", rule.ID, "edits", len(edits))
	}

	return content, changes, unresolved
}

// applyEdits splices the edits into the module's lines, working bottom-up
// so earlier offsets stay valid.
func applyEdits(mod *pyscan.Module, edits []lineEdit) string {
	lines := make([]string, len(mod.Lines))
	copy(lines, mod.Lines)

	for i := len(edits) - 1; i >= 0; i-- {
		edit := edits[i]

		tail := append([]string{}, lines[edit.end+1:]...)
		lines = append(append(lines[:edit.start], edit.lines...), tail...)
	}

	out := strings.Join(lines, "\n")
	if mod.TrailingNewline {
		out += "\n"
	}

	return out
}

func editRecords(mod *pyscan.Module, id m.RuleID, edits []lineEdit) []m.ApplicationRecord {
	records := make([]m.ApplicationRecord, 0, len(edits))

	for _, edit := range edits {
		records = append(records, m.ApplicationRecord{
			RuleID:      id,
			Original:    strings.Join(mod.Lines[edit.start:edit.end+1], "\n"),
			Replacement: strings.Join(edit.lines, "\n"),
			Span: m.MatchSpan{
				Start: mod.LineOffset(edit.start),
				End:   mod.LineOffset(edit.end) + len(mod.Lines[edit.end]),
			},
		})
	}

	return records
}

// dedent strips one indentation prefix from a line, leaving blank lines
// empty.
func dedent(line, prefix string) string {
	if pyscan.IsBlank(line) {
		return ""
	}

	return strings.TrimPrefix(line, prefix)
}

// reindent moves body lines from one indentation prefix to another.
func reindent(lines []string, from, to string) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if pyscan.IsBlank(line) {
			out = append(out, "")
			continue
		}

		out = append(out, to+strings.TrimPrefix(line, from))
	}

	return out
}

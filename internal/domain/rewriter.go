package domain

import (
	"log/slog"
	"strings"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// Rewriter applies textual rules to source text.
type Rewriter interface {
	Apply(content string, rules []m.Rule) (string, m.ChangeLog, []m.RuleID)
}

type rewriter struct{}

// NewRewriter creates the textual rewriting engine.
func NewRewriter() Rewriter {
	return &rewriter{}
}

// Apply runs the rules over content in order. Each rule scans the text as
// the rules before it left it. Within one rule the matches are
// non-overlapping and the produced replacements are never rescanned, so a
// pass cannot feed on its own output.
func (rw *rewriter) Apply(content string, rules []m.Rule) (string, m.ChangeLog, []m.RuleID) {
	var changes m.ChangeLog

	var unresolved []m.RuleID

	refused := map[m.RuleID]bool{}

	for _, rule := range rules {
		next, records, clean := applyRule(content, rule)

		changes = append(changes, records...)

		if !clean && !refused[rule.ID] {
			refused[rule.ID] = true
			unresolved = append(unresolved, rule.ID)
		}

		content = next
	}

	return content, changes, unresolved
}

// applyRule splices the rule's replacements into content. Matches the
// filter rejects are skipped silently; matches the producer declines leave
// the text untouched and flag the rule as unresolved.
func applyRule(content string, rule m.Rule) (string, []m.ApplicationRecord, bool) {
	matches := rule.Pattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return content, nil, true
	}

	var b strings.Builder

	var records []m.ApplicationRecord

	clean := true
	last := 0

	for _, loc := range matches {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}

		groups := capturedGroups(content, loc)

		if rule.Filter != nil && !rule.Filter(groups) {
			continue
		}

		replacement, err := rule.Produce(groups)
		if err != nil {
			clean = false
			continue
		}

		b.WriteString(content[last:start])
		b.WriteString(replacement)

		last = end

		records = append(records, m.ApplicationRecord{
			RuleID:      rule.ID,
			Original:    content[start:end],
			Replacement: replacement,
			Span:        m.MatchSpan{Start: start, End: end},
		})
	}

	if len(records) == 0 {
		return content, nil, clean
	}

	b.WriteString(content[last:])

	slog.Debug("Applied rule", "rule", rule.ID, "matches", len(records))

	return b.String(), records, clean
}

func capturedGroups(content string, loc []int) []string {
	groups := make([]string, len(loc)/2)

	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = content[loc[2*i]:loc[2*i+1]]
		}
	}

	return groups
}

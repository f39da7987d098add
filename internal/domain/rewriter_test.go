package domain

import (
	"regexp"
	"testing"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

func replacing(id, pattern, replacement string) m.Rule {
	return m.Rule{
		ID:      m.RuleID(id),
		Kind:    m.KindTextual,
		Pattern: regexp.MustCompile(pattern),
		Produce: func([]string) (string, error) { return replacement, nil },
		Enabled: true,
	}
}

func TestRewriterApply(t *testing.T) {
	rw := NewRewriter()

	t.Run("applies rules in order over the running text", func(t *testing.T) {
		first := replacing("first", "old", "mid")
		second := replacing("second", "mid", "new")

		got, changes, unresolved := rw.Apply("state: old", []m.Rule{first, second})

		if got != "state: new" {
			t.Errorf("got %q", got)
		}

		if len(changes) != 2 {
			t.Fatalf("expected 2 records, got %d", len(changes))
		}

		if changes[0].RuleID != "first" || changes[1].RuleID != "second" {
			t.Errorf("got records %+v", changes)
		}

		if len(unresolved) != 0 {
			t.Errorf("unexpected unresolved rules %v", unresolved)
		}
	})

	t.Run("replacements are not rescanned within a pass", func(t *testing.T) {
		rule := replacing("doubler", "a", "aa")

		got, changes, _ := rw.Apply("aba", []m.Rule{rule})

		if got != "aabaa" {
			t.Errorf("got %q", got)
		}

		if len(changes) != 2 {
			t.Errorf("expected 2 records, got %d", len(changes))
		}
	})

	t.Run("filters skip matches silently", func(t *testing.T) {
		rule := replacing("guarded", `\w+`, "X")
		rule.Filter = func([]string) bool { return false }

		got, changes, unresolved := rw.Apply("alpha beta", []m.Rule{rule})

		if got != "alpha beta" {
			t.Errorf("got %q", got)
		}

		if len(changes) != 0 || len(unresolved) != 0 {
			t.Errorf("filtered matches should leave no trace: %v %v", changes, unresolved)
		}
	})

	t.Run("refused matches stay put and mark the rule unresolved", func(t *testing.T) {
		rule := m.Rule{
			ID:      "picky",
			Kind:    m.KindTextual,
			Pattern: regexp.MustCompile(`num:(\d+)`),
			Produce: func(groups []string) (string, error) {
				if groups[1] == "13" {
					return "", m.ErrCannotRewrite
				}

				return "ok", nil
			},
			Enabled: true,
		}

		got, changes, unresolved := rw.Apply("num:12 num:13", []m.Rule{rule})

		if got != "ok num:13" {
			t.Errorf("got %q", got)
		}

		if len(changes) != 1 {
			t.Errorf("expected 1 record, got %d", len(changes))
		}

		if len(unresolved) != 1 || unresolved[0] != "picky" {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("unresolved rules are reported once", func(t *testing.T) {
		rule := m.Rule{
			ID:      "never",
			Kind:    m.KindTextual,
			Pattern: regexp.MustCompile("x"),
			Produce: func([]string) (string, error) { return "", m.ErrCannotRewrite },
			Enabled: true,
		}

		got, _, unresolved := rw.Apply("x y x y x", []m.Rule{rule})

		if got != "x y x y x" {
			t.Errorf("got %q", got)
		}

		if len(unresolved) != 1 {
			t.Errorf("got unresolved %v", unresolved)
		}
	})

	t.Run("records carry the match text and span", func(t *testing.T) {
		rule := replacing("swap", "world", "pytest")

		_, changes, _ := rw.Apply("hello world", []m.Rule{rule})

		if len(changes) != 1 {
			t.Fatalf("expected 1 record, got %d", len(changes))
		}

		record := changes[0]
		if record.Original != "world" || record.Replacement != "pytest" {
			t.Errorf("got %+v", record)
		}

		if record.Span.Start != 6 || record.Span.End != 11 {
			t.Errorf("got span %+v", record.Span)
		}
	})

	t.Run("no matches leaves content untouched", func(t *testing.T) {
		rule := replacing("noop", "absent", "present")

		got, changes, unresolved := rw.Apply("plain text", []m.Rule{rule})

		if got != "plain text" || changes != nil || unresolved != nil {
			t.Errorf("got %q, %v, %v", got, changes, unresolved)
		}
	})
}

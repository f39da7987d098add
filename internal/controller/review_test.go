package controller

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

const reviewBefore = `from nose.tools import assert_equal

def test_sum():
    assert_equal(1 + 1, 2)
`

const reviewAfter = `def test_sum():
    assert 1 + 1 == 2
`

func TestKeepPolicy_Decide(t *testing.T) {
	keep, err := KeepPolicy{}.Decide("tests/test_math.py", reviewBefore, reviewAfter)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if !keep {
		t.Error("KeepPolicy should always keep changes")
	}
}

func TestDiscardPolicy_Decide(t *testing.T) {
	keep, err := DiscardPolicy{}.Decide("tests/test_math.py", reviewBefore, reviewAfter)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if keep {
		t.Error("DiscardPolicy should never keep changes")
	}
}

func TestRenderDiff(t *testing.T) {
	diff, err := renderDiff("tests/test_math.py", reviewBefore, reviewAfter)
	if err != nil {
		t.Fatalf("renderDiff() error = %v", err)
	}

	wantStrings := []string{
		"tests/test_math.py",
		"tests/test_math.py (migrated)",
		"from nose.tools import assert_equal",
		"assert 1 + 1 == 2",
	}

	for _, want := range wantStrings {
		if !strings.Contains(diff, want) {
			t.Errorf("renderDiff() missing %q, got:\n%s", want, diff)
		}
	}
}

func TestRenderDiff_NoChanges(t *testing.T) {
	diff, err := renderDiff("tests/test_math.py", reviewAfter, reviewAfter)
	if err != nil {
		t.Fatalf("renderDiff() error = %v", err)
	}

	if strings.Contains(diff, "@@") {
		t.Errorf("renderDiff() with identical content should produce no hunks, got:\n%s", diff)
	}
}

func TestPromptPolicy_Decide_InputClosed(t *testing.T) {
	var buf bytes.Buffer

	policy := PromptPolicy{
		Output: &buf,
		Stdin:  io.NopCloser(strings.NewReader("")),
	}

	keep, err := policy.Decide("tests/test_math.py", reviewBefore, reviewAfter)

	if err == nil {
		t.Fatal("Decide() with closed input should return an error")
	}

	if !strings.Contains(err.Error(), "review prompt") {
		t.Errorf("Decide() error = %v, want review prompt wrap", err)
	}

	if keep {
		t.Error("Decide() should not keep changes when the prompt fails")
	}

	// The diff is shown before the prompt runs.
	if !strings.Contains(buf.String(), "from nose.tools import assert_equal") {
		t.Errorf("Decide() should print the diff before prompting, got:\n%s", buf.String())
	}
}

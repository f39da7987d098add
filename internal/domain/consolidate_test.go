package domain

import (
	"strings"
	"testing"
)

func TestConsolidateImports(t *testing.T) {
	t.Run("moves duplicated pytest imports to the top", func(t *testing.T) {
		input := "import pytest\nimport os\n\nimport pytest\ndef test_a():\n    pass\n"

		got, records := consolidateImports(input)
		want := "import pytest\n\n\nimport os\n\ndef test_a():\n    pass\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		if records[0].RuleID != "deduplicate_pytest_import" || records[1].RuleID != "add_pytest_import" {
			t.Errorf("got records %+v", records)
		}
	})

	t.Run("inserts after the module docstring", func(t *testing.T) {
		input := "\"\"\"Module docs.\"\"\"\nimport os\n"

		got, records := consolidateImports(input)
		want := "\"\"\"Module docs.\"\"\"\nimport pytest\n\nimport os\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}

		if len(records) != 1 || records[0].RuleID != "add_pytest_import" {
			t.Fatalf("got records %+v", records)
		}

		if records[0].Span.Start != len("\"\"\"Module docs.\"\"\"\n") {
			t.Errorf("got span %+v", records[0].Span)
		}
	})

	t.Run("function docstrings do not attract the import", func(t *testing.T) {
		input := "import os\n\ndef test_a():\n    \"\"\"Checks things.\"\"\"\n    pass\n"

		got, _ := consolidateImports(input)

		if !strings.HasPrefix(got, "import pytest\n\n") {
			t.Errorf("import should go to the top, got %q", got)
		}

		if !strings.Contains(got, "    \"\"\"Checks things.\"\"\"\n    pass\n") {
			t.Errorf("function body was disturbed: %q", got)
		}
	})

	t.Run("honors comment lines before the docstring", func(t *testing.T) {
		input := "#!/usr/bin/env python\n\"\"\"Module docs.\"\"\"\nimport os\n"

		got, _ := consolidateImports(input)
		want := "#!/usr/bin/env python\n\"\"\"Module docs.\"\"\"\nimport pytest\n\nimport os\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("drops placeholder comment imports", func(t *testing.T) {
		input := "import pytest # Replacing: from nose import SkipTest\ndef test_b():\n    pass\n"

		got, _ := consolidateImports(input)
		want := "import pytest\n\ndef test_b():\n    pass\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("leaves pytest_mock imports alone", func(t *testing.T) {
		input := "import pytest_mock\ndef test_c():\n    pass\n"

		got, _ := consolidateImports(input)

		if !strings.Contains(got, "import pytest_mock\n") {
			t.Errorf("pytest_mock import went missing: %q", got)
		}

		if !strings.HasPrefix(got, "import pytest\n\n") {
			t.Errorf("missing consolidated import: %q", got)
		}
	})

	t.Run("collapses blank line runs left by removals", func(t *testing.T) {
		input := "import pytest # Replacing: from nose import SkipTest\n\n\nimport pytest # Replacing: from nose.tools import ok_\n\n\ndef test_d():\n    pass\n"

		got, _ := consolidateImports(input)
		want := "import pytest\n\n\n\ndef test_d():\n    pass\n"

		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eric-downes/nosey-pytest/pkg/pyscan"
)

// yieldMarker flags yield tests the transform could not enumerate.
const yieldMarker = "# TODO: convert yield test to pytest.mark.parametrize manually"

var (
	yieldStatement = regexp.MustCompile(`^[ \t]*yield\b`)
	yieldCall      = regexp.MustCompile(`^[ \t]*yield[ \t]+(\w+)[ \t]*,[ \t]*(.+)$`)
	forStatement   = regexp.MustCompile(`^[ \t]*for[ \t]+([\w, \t]+?)[ \t]+in[ \t]+(.+?)[ \t]*:$`)
	identifier     = regexp.MustCompile(`^\w+$`)
)

// transformYieldTests converts yield-style test generators into
// parametrized tests. Generators that cannot be enumerated statically are
// marked for manual conversion instead.
func transformYieldTests(mod *pyscan.Module) ([]lineEdit, bool) {
	var edits []lineEdit

	incomplete := false

	for _, fn := range mod.Functions {
		if !strings.HasPrefix(fn.Name, "test") || !yieldsTests(mod, fn) {
			continue
		}

		if edit, ok := parametrizeEdit(mod, fn); ok {
			edits = append(edits, edit)
			continue
		}

		incomplete = true

		if edit, ok := markerEdit(mod, fn); ok {
			edits = append(edits, edit)
		}
	}

	// Yield tests on classes never ran under pytest either; mark them.
	for _, cls := range mod.Classes {
		for _, fn := range cls.Methods {
			if !strings.HasPrefix(fn.Name, "test") || !yieldsTests(mod, fn) {
				continue
			}

			incomplete = true

			if edit, ok := markerEdit(mod, fn); ok {
				edits = append(edits, edit)
			}
		}
	}

	return edits, incomplete
}

func yieldsTests(mod *pyscan.Module, fn *pyscan.Func) bool {
	for _, line := range mod.Body(fn) {
		if yieldStatement.MatchString(line) {
			return true
		}
	}

	return false
}

func parametrizeEdit(mod *pyscan.Module, fn *pyscan.Func) (lineEdit, bool) {
	if fn.Async || len(fn.Params) != 0 {
		return lineEdit{}, false
	}

	docEnd := skipDocstring(mod.Lines, fn.BodyStart, fn.EndLine)
	doc := mod.Lines[fn.BodyStart:docEnd]
	rest := mod.Lines[docEnd : fn.EndLine+1]

	if lines, ok := literalYields(mod, fn, rest, doc); ok {
		return lineEdit{start: fn.StartLine(), end: fn.EndLine, lines: lines}, true
	}

	if lines, ok := loopYield(mod, fn, rest, doc); ok {
		return lineEdit{start: fn.StartLine(), end: fn.EndLine, lines: lines}, true
	}

	return lineEdit{}, false
}

// literalYields handles bodies that are nothing but yield statements with a
// shared callable: each yield becomes one parameter row.
func literalYields(mod *pyscan.Module, fn *pyscan.Func, rest, doc []string) ([]string, bool) {
	callable := ""

	var rows [][]string

	for _, line := range rest {
		line = pyscan.StripComment(line)
		if pyscan.IsBlank(line) {
			continue
		}

		groups := yieldCall.FindStringSubmatch(line)
		if groups == nil {
			return nil, false
		}

		switch {
		case callable == "":
			callable = groups[1]
		case callable != groups[1]:
			return nil, false
		}

		args := trimmedParts(groups[2])
		if len(args) == 0 {
			return nil, false
		}

		rows = append(rows, args)
	}

	if callable == "" {
		return nil, false
	}

	width := len(rows[0])

	for _, row := range rows {
		if len(row) != width {
			return nil, false
		}
	}

	names := paramNames(mod, callable, width)

	out := decoratorLines(mod, fn)
	out = append(out, parametrizeLines(names, rows)...)
	out = append(out, "def "+fn.Name+"("+strings.Join(names, ", ")+"):")
	out = append(out, doc...)
	out = append(out, "    "+callable+"("+strings.Join(names, ", ")+")")

	return out, true
}

// loopYield handles bodies that are a single for loop around a single
// yield. The loop iterable feeds parametrize directly.
func loopYield(mod *pyscan.Module, fn *pyscan.Func, rest, doc []string) ([]string, bool) {
	var code []string

	for _, line := range rest {
		if line = pyscan.StripComment(line); !pyscan.IsBlank(line) {
			code = append(code, line)
		}
	}

	if len(code) != 2 {
		return nil, false
	}

	forGroups := forStatement.FindStringSubmatch(code[0])
	yieldGroups := yieldCall.FindStringSubmatch(code[1])

	if forGroups == nil || yieldGroups == nil {
		return nil, false
	}

	if len(pyscan.Indent(code[1])) <= len(pyscan.Indent(code[0])) {
		return nil, false
	}

	vars := trimmedParts(forGroups[1])
	iterable := strings.TrimSpace(forGroups[2])
	callable := yieldGroups[1]
	args := trimmedParts(yieldGroups[2])

	if len(vars) == 0 || len(args) == 0 {
		return nil, false
	}

	for _, v := range vars {
		if !identifier.MatchString(v) {
			return nil, false
		}
	}

	out := decoratorLines(mod, fn)
	out = append(out, `@pytest.mark.parametrize("`+strings.Join(vars, ", ")+`", `+iterable+`)`)
	out = append(out, "def "+fn.Name+"("+strings.Join(vars, ", ")+"):")
	out = append(out, doc...)
	out = append(out, "    "+callable+"("+strings.Join(args, ", ")+")")

	return out, true
}

func markerEdit(mod *pyscan.Module, fn *pyscan.Func) (lineEdit, bool) {
	start := fn.StartLine()
	if start > 0 && strings.TrimSpace(mod.Lines[start-1]) == yieldMarker {
		return lineEdit{}, false
	}

	return lineEdit{
		start: start,
		end:   start,
		lines: []string{fn.Indent + yieldMarker, mod.Lines[start]},
	}, true
}

func decoratorLines(mod *pyscan.Module, fn *pyscan.Func) []string {
	return append([]string{}, mod.Lines[fn.StartLine():fn.HeaderLine]...)
}

func parametrizeLines(names []string, rows [][]string) []string {
	if len(names) == 1 {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[0])
		}

		return []string{`@pytest.mark.parametrize("` + names[0] + `", [` + strings.Join(values, ", ") + `])`}
	}

	out := []string{`@pytest.mark.parametrize("` + strings.Join(names, ", ") + `", [`}

	for _, row := range rows {
		out = append(out, "    ("+strings.Join(row, ", ")+"),")
	}

	return append(out, "])")
}

// paramNames takes parameter names from the yielded callable's own
// signature when it is in the same module and its arity matches.
func paramNames(mod *pyscan.Module, callable string, width int) []string {
	for _, fn := range mod.Functions {
		if fn.Name != callable || len(fn.Params) != width {
			continue
		}

		names := make([]string, width)

		for i, param := range fn.Params {
			names[i] = paramName(param)
			if !identifier.MatchString(names[i]) {
				names = nil
				break
			}
		}

		if names != nil {
			return names
		}

		break
	}

	if width == 1 {
		return []string{"value"}
	}

	names := make([]string, width)
	for i := range names {
		names[i] = fmt.Sprintf("arg%d", i+1)
	}

	return names
}

// paramName strips a default value or annotation from a parameter.
func paramName(param string) string {
	if i := strings.IndexAny(param, ":="); i >= 0 {
		param = param[:i]
	}

	return strings.TrimSpace(param)
}

func trimmedParts(s string) []string {
	var parts []string

	for _, part := range pyscan.SplitTopLevel(s) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

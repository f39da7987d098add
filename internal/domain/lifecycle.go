package domain

import (
	"regexp"
	"strings"

	"github.com/eric-downes/nosey-pytest/pkg/pyscan"
)

var (
	testCaseBase   = regexp.MustCompile(`\([ \t]*unittest\.TestCase[ \t]*,?[ \t]*\)`)
	selfAssignment = regexp.MustCompile(`^[ \t]*self\.(\w+)[ \t]*=[ \t]*([^=].*)$`)
	selfReference  = regexp.MustCompile(`\bself\b`)
	attrAfterSelf  = regexp.MustCompile(`^\.(\w+)`)
	selfOnlyParams = regexp.MustCompile(`\([ \t]*self[ \t]*\)`)
	selfFirstParam = regexp.MustCompile(`\([ \t]*self[ \t]*,[ \t]*`)
)

// transformLifecycleBase removes the unittest.TestCase base from test
// classes. A class with no lifecycle hooks, no class-scoped state and no
// self references dissolves into module-level functions.
func transformLifecycleBase(mod *pyscan.Module) ([]lineEdit, bool) {
	var edits []lineEdit

	for _, cls := range mod.Classes {
		if len(cls.Bases) != 1 || cls.Bases[0] != "unittest.TestCase" {
			continue
		}

		if canDissolve(mod, cls) {
			edits = append(edits, dissolveClass(mod, cls))
			continue
		}

		edits = append(edits, stripBase(mod, cls))
	}

	return edits, false
}

// transformLifecycleHooks folds setUp and tearDown into a single autouse
// fixture. A class whose only state is one attribute assigned in setUp
// dissolves further into a named module-level fixture.
func transformLifecycleHooks(mod *pyscan.Module) ([]lineEdit, bool) {
	var edits []lineEdit

	incomplete := false

	for _, cls := range mod.Classes {
		if !looksLikeTestClass(cls) {
			continue
		}

		setup := cls.Method("setup")
		teardown := cls.Method("teardown")

		if setup == nil && teardown == nil {
			continue
		}

		if !hookSupported(mod, setup) || !hookSupported(mod, teardown) || cls.Method("setup_teardown") != nil {
			incomplete = true
			continue
		}

		if fixture, ok := namedFixtureEdit(mod, cls, setup, teardown); ok {
			edits = append(edits, fixture)
			continue
		}

		edits = append(edits, wrapHooks(mod, setup, teardown)...)
	}

	return edits, incomplete
}

func looksLikeTestClass(cls *pyscan.Class) bool {
	if strings.HasPrefix(cls.Name, "Test") || strings.HasSuffix(cls.Name, "Test") || strings.HasSuffix(cls.Name, "TestCase") {
		return true
	}

	for _, fn := range cls.Methods {
		if strings.HasPrefix(fn.Name, "test") {
			return true
		}
	}

	return false
}

func stripBase(mod *pyscan.Module, cls *pyscan.Class) lineEdit {
	if cls.HeaderLine == cls.HeaderEnd {
		line := testCaseBase.ReplaceAllString(mod.Lines[cls.HeaderLine], "")
		return lineEdit{start: cls.HeaderLine, end: cls.HeaderLine, lines: []string{line}}
	}

	header := cls.Indent + "class " + cls.Name + ":"

	return lineEdit{start: cls.HeaderLine, end: cls.HeaderEnd, lines: []string{header}}
}

func canDissolve(mod *pyscan.Module, cls *pyscan.Class) bool {
	if cls.Indent != "" || len(cls.Decorators) > 0 || len(cls.Methods) == 0 {
		return false
	}

	if cls.Method("setup") != nil || cls.Method("teardown") != nil {
		return false
	}

	if hasStrayStatements(mod, cls) {
		return false
	}

	for _, fn := range cls.Methods {
		if fn.Async || len(fn.Params) == 0 || fn.Params[0] != "self" {
			return false
		}

		for _, line := range mod.Body(fn) {
			if selfReference.MatchString(line) {
				return false
			}
		}
	}

	return true
}

// hasStrayStatements reports whether the class body holds anything besides
// its docstring, comments and methods.
func hasStrayStatements(mod *pyscan.Module, cls *pyscan.Class) bool {
	covered := map[int]bool{}

	for _, fn := range cls.Methods {
		for i := fn.StartLine(); i <= fn.EndLine; i++ {
			covered[i] = true
		}
	}

	i := skipDocstring(mod.Lines, cls.BodyStart, cls.EndLine)

	for ; i <= cls.EndLine; i++ {
		line := mod.Lines[i]
		if pyscan.IsBlank(line) || covered[i] || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		return true
	}

	return false
}

func skipDocstring(lines []string, start, end int) int {
	for start <= end && pyscan.IsBlank(lines[start]) {
		start++
	}

	if start > end {
		return start
	}

	trimmed := strings.TrimSpace(lines[start])

	for _, quote := range []string{`"""`, `'''`} {
		if !strings.HasPrefix(trimmed, quote) {
			continue
		}

		if len(trimmed) >= 2*len(quote) && strings.HasSuffix(trimmed[len(quote):], quote) {
			return start + 1
		}

		for i := start + 1; i <= end; i++ {
			if strings.Contains(lines[i], quote) {
				return i + 1
			}
		}

		return end + 1
	}

	return start
}

func dissolveClass(mod *pyscan.Module, cls *pyscan.Class) lineEdit {
	bodyIndent := cls.Methods[0].Indent

	var out []string

	docEnd := skipDocstring(mod.Lines, cls.BodyStart, cls.EndLine)

	for i := cls.BodyStart; i < docEnd && i <= cls.EndLine; i++ {
		if !pyscan.IsBlank(mod.Lines[i]) {
			out = append(out, dedent(mod.Lines[i], bodyIndent))
		}
	}

	for i := docEnd; i <= cls.EndLine; i++ {
		line := dedent(mod.Lines[i], bodyIndent)

		if withinMethodHeader(cls, i) {
			line = selfFirstParam.ReplaceAllString(line, "(")
			line = selfOnlyParams.ReplaceAllString(line, "()")
		}

		out = append(out, line)
	}

	return lineEdit{start: cls.HeaderLine, end: cls.EndLine, lines: out}
}

func withinMethodHeader(cls *pyscan.Class, line int) bool {
	for _, fn := range cls.Methods {
		if line >= fn.HeaderLine && line <= fn.HeaderEnd {
			return true
		}
	}

	return false
}

func hookSupported(mod *pyscan.Module, hook *pyscan.Func) bool {
	if hook == nil {
		return true
	}

	if hook.Async || len(hook.Decorators) > 0 || hook.BodyStart > hook.EndLine {
		return false
	}

	if len(hook.Params) != 1 || hook.Params[0] != "self" {
		return false
	}

	for _, line := range mod.Body(hook) {
		if strings.Contains(line, "super(") {
			return false
		}
	}

	return true
}

func wrapHooks(mod *pyscan.Module, setup, teardown *pyscan.Func) []lineEdit {
	anchor := setup
	if anchor == nil {
		anchor = teardown
	}

	indent := anchor.Indent
	bodyIndent := hookBodyIndent(mod, setup, teardown, indent)

	fixture := []string{
		indent + "@pytest.fixture(autouse=True)",
		indent + "def setup_teardown(self):",
	}

	if setup != nil {
		fixture = append(fixture, mod.Body(setup)...)
	}

	fixture = append(fixture, bodyIndent+"yield")

	if teardown != nil {
		fixture = append(fixture, mod.Body(teardown)...)
	}

	edits := []lineEdit{{start: anchor.StartLine(), end: anchor.EndLine, lines: fixture}}

	if setup != nil && teardown != nil {
		start := teardown.StartLine()
		if start > 0 && pyscan.IsBlank(mod.Lines[start-1]) {
			start--
		}

		edits = append(edits, lineEdit{start: start, end: teardown.EndLine})
	}

	return edits
}

func hookBodyIndent(mod *pyscan.Module, setup, teardown *pyscan.Func, indent string) string {
	for _, hook := range []*pyscan.Func{setup, teardown} {
		if hook == nil {
			continue
		}

		for _, line := range mod.Body(hook) {
			if !pyscan.IsBlank(line) {
				return pyscan.Indent(line)
			}
		}
	}

	return indent + "    "
}

func namedFixtureEdit(mod *pyscan.Module, cls *pyscan.Class, setup, teardown *pyscan.Func) (lineEdit, bool) {
	if setup == nil || cls.Indent != "" || len(cls.Decorators) > 0 {
		return lineEdit{}, false
	}

	attr, expr, ok := singleAssignment(mod, setup)
	if !ok {
		return lineEdit{}, false
	}

	for _, fn := range mod.Functions {
		if fn.Name == attr {
			return lineEdit{}, false
		}
	}

	for _, fn := range cls.Methods {
		if fn == setup || fn == teardown {
			continue
		}

		if !strings.HasPrefix(fn.Name, "test") || fn.Async || len(fn.Params) != 1 || fn.Params[0] != "self" {
			return lineEdit{}, false
		}

		if !onlyAttrRefs(mod.Body(fn), attr) {
			return lineEdit{}, false
		}
	}

	if teardown != nil && !onlyAttrRefs(mod.Body(teardown), attr) {
		return lineEdit{}, false
	}

	if hasStrayStatements(mod, cls) {
		return lineEdit{}, false
	}

	return lineEdit{
		start: cls.HeaderLine,
		end:   cls.EndLine,
		lines: buildNamedFixture(mod, cls, setup, teardown, attr, expr),
	}, true
}

// singleAssignment extracts the attribute when the hook body is exactly one
// self.<name> = <expr> statement.
func singleAssignment(mod *pyscan.Module, setup *pyscan.Func) (string, string, bool) {
	var attr, expr string

	count := 0

	for _, line := range mod.Body(setup) {
		if pyscan.IsBlank(line) {
			continue
		}

		groups := selfAssignment.FindStringSubmatch(line)
		if groups == nil {
			return "", "", false
		}

		attr, expr = groups[1], strings.TrimSpace(groups[2])
		count++
	}

	return attr, expr, count == 1
}

// onlyAttrRefs reports whether every self reference in the lines is to the
// given attribute.
func onlyAttrRefs(lines []string, attr string) bool {
	for _, line := range lines {
		for _, loc := range selfReference.FindAllStringIndex(line, -1) {
			groups := attrAfterSelf.FindStringSubmatch(line[loc[1]:])
			if groups == nil || groups[1] != attr {
				return false
			}
		}
	}

	return true
}

func buildNamedFixture(mod *pyscan.Module, cls *pyscan.Class, setup, teardown *pyscan.Func, attr, expr string) []string {
	attrRef := regexp.MustCompile(`\bself\.` + attr + `\b`)

	out := []string{
		"@pytest.fixture",
		"def " + attr + "():",
		"    " + attr + " = " + expr,
		"    yield " + attr,
	}

	if teardown != nil {
		bodyIndent := hookBodyIndent(mod, teardown, nil, teardown.Indent)
		for _, line := range reindent(mod.Body(teardown), bodyIndent, "    ") {
			out = append(out, attrRef.ReplaceAllString(line, attr))
		}
	}

	for _, fn := range cls.Methods {
		if fn == setup || fn == teardown {
			continue
		}

		out = append(out, "")

		for i := fn.StartLine(); i <= fn.EndLine; i++ {
			line := dedent(mod.Lines[i], fn.Indent)

			if i >= fn.HeaderLine && i <= fn.HeaderEnd {
				line = selfOnlyParams.ReplaceAllString(line, "("+attr+")")
			}

			out = append(out, attrRef.ReplaceAllString(line, attr))
		}
	}

	return out
}

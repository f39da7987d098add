// Package pyscan is a lightweight indentation-based scanner for Python
// source. It recovers the declarations a structural rewrite needs, classes,
// functions and their decorators, without a full parse.
package pyscan

import (
	"regexp"
	"strings"
)

// Module is the scanned form of one Python file. Lines hold the source
// split on newlines; declarations index into it.
type Module struct {
	Lines           []string
	TrailingNewline bool
	Classes         []*Class
	Functions       []*Func
}

// Class is a module-level class declaration.
type Class struct {
	Name       string
	Bases      []string
	Decorators []Decorator
	Indent     string
	HeaderLine int
	HeaderEnd  int
	BodyStart  int
	EndLine    int
	Methods    []*Func
}

// Func is a function or method declaration. HeaderEnd is the last line of
// the def header, which spans several lines when the parameter list does.
type Func struct {
	Name       string
	Params     []string
	Decorators []Decorator
	Async      bool
	Indent     string
	HeaderLine int
	HeaderEnd  int
	BodyStart  int
	EndLine    int
}

// Decorator is one @-line attached to a declaration.
type Decorator struct {
	Line int
	Name string
	Text string
}

var (
	classHeader = regexp.MustCompile(`^[ \t]*class[ \t]+(\w+)[ \t]*[(:]`)
	funcHeader  = regexp.MustCompile(`^[ \t]*(async[ \t]+)?def[ \t]+(\w+)[ \t]*\(`)
	decoLine    = regexp.MustCompile(`^[ \t]*@([\w.]+)`)
)

// Parse scans content into a Module. The scanner never fails; lines it
// cannot attribute to a declaration stay plain module lines.
func Parse(content string) *Module {
	mod := &Module{TrailingNewline: strings.HasSuffix(content, "\n")}

	mod.Lines = strings.Split(content, "\n")
	if mod.TrailingNewline {
		mod.Lines = mod.Lines[:len(mod.Lines)-1]
	}

	var pending []Decorator

	for i := 0; i < len(mod.Lines); {
		line := mod.Lines[i]

		switch {
		case IsBlank(line):
			i++
		case Indent(line) != "":
			pending = nil
			i++
		case decoLine.MatchString(line):
			deco, next := scanDecorator(mod.Lines, i)
			pending = append(pending, deco)
			i = next
		case classHeader.MatchString(line):
			cls := parseClass(mod.Lines, i)
			cls.Decorators = pending
			pending = nil
			mod.Classes = append(mod.Classes, cls)
			i = cls.EndLine + 1
		case funcHeader.MatchString(line):
			fn := parseFunc(mod.Lines, i)
			fn.Decorators = pending
			pending = nil
			mod.Functions = append(mod.Functions, fn)
			i = fn.EndLine + 1
		default:
			pending = nil
			i++
		}
	}

	return mod
}

// Render reassembles the module text from its lines.
func (m *Module) Render() string {
	out := strings.Join(m.Lines, "\n")
	if m.TrailingNewline {
		out += "\n"
	}

	return out
}

// LineOffset returns the byte offset of the start of the given line.
func (m *Module) LineOffset(line int) int {
	offset := 0

	for i := 0; i < line && i < len(m.Lines); i++ {
		offset += len(m.Lines[i]) + 1
	}

	return offset
}

// Body returns the body lines of a function.
func (m *Module) Body(f *Func) []string {
	if f.BodyStart > f.EndLine {
		return nil
	}

	return m.Lines[f.BodyStart : f.EndLine+1]
}

// StartLine is the first line of the declaration including its decorators.
func (f *Func) StartLine() int {
	if len(f.Decorators) > 0 {
		return f.Decorators[0].Line
	}

	return f.HeaderLine
}

// StartLine is the first line of the declaration including its decorators.
func (c *Class) StartLine() int {
	if len(c.Decorators) > 0 {
		return c.Decorators[0].Line
	}

	return c.HeaderLine
}

// Method returns the named method, matching case-insensitively.
func (c *Class) Method(name string) *Func {
	for _, fn := range c.Methods {
		if strings.EqualFold(fn.Name, name) {
			return fn
		}
	}

	return nil
}

// IsBlank reports whether the line holds no code.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Indent returns the leading whitespace of the line.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func scanDecorator(lines []string, start int) (Decorator, int) {
	deco := Decorator{
		Line: start,
		Name: decoLine.FindStringSubmatch(lines[start])[1],
		Text: strings.TrimSpace(lines[start]),
	}

	end := start
	if depth := bracketDelta(lines[start]); depth > 0 {
		for end+1 < len(lines) && depth > 0 {
			end++
			depth += bracketDelta(lines[end])
		}
	}

	return deco, end + 1
}

func parseClass(lines []string, start int) *Class {
	groups := classHeader.FindStringSubmatch(lines[start])

	cls := &Class{
		Name:       groups[1],
		Indent:     Indent(lines[start]),
		HeaderLine: start,
		HeaderEnd:  headerEnd(lines, start),
	}

	cls.Bases = parseParams(lines, cls.HeaderLine, cls.HeaderEnd)

	cls.BodyStart = cls.HeaderEnd + 1
	cls.EndLine = blockEnd(lines, cls.BodyStart, len(cls.Indent))
	if cls.EndLine < cls.BodyStart {
		cls.EndLine = cls.HeaderEnd
		return cls
	}

	bodyIndent := firstBodyIndent(lines, cls.BodyStart, cls.EndLine)

	var pending []Decorator

	for i := cls.BodyStart; i <= cls.EndLine; {
		line := lines[i]

		switch {
		case IsBlank(line):
			i++
		case Indent(line) != bodyIndent:
			pending = nil
			i++
		case decoLine.MatchString(line):
			deco, next := scanDecorator(lines, i)
			pending = append(pending, deco)
			i = next
		case funcHeader.MatchString(line):
			fn := parseFunc(lines, i)
			fn.Decorators = pending
			pending = nil
			cls.Methods = append(cls.Methods, fn)
			i = fn.EndLine + 1
		default:
			pending = nil
			i++
		}
	}

	return cls
}

func parseFunc(lines []string, start int) *Func {
	groups := funcHeader.FindStringSubmatch(lines[start])

	fn := &Func{
		Name:       groups[2],
		Async:      groups[1] != "",
		Indent:     Indent(lines[start]),
		HeaderLine: start,
		HeaderEnd:  headerEnd(lines, start),
	}

	fn.Params = parseParams(lines, fn.HeaderLine, fn.HeaderEnd)
	fn.BodyStart = fn.HeaderEnd + 1
	fn.EndLine = blockEnd(lines, fn.BodyStart, len(fn.Indent))

	if fn.EndLine < fn.BodyStart {
		fn.EndLine = fn.HeaderEnd
	}

	return fn
}

// headerEnd finds the line on which the declaration header's brackets
// close.
func headerEnd(lines []string, start int) int {
	depth := 0

	for i := start; i < len(lines); i++ {
		depth += bracketDelta(lines[i])
		if depth <= 0 {
			return i
		}
	}

	return start
}

// blockEnd returns the last non-blank line of the block starting at start,
// where the block holds every line indented deeper than indentLen.
func blockEnd(lines []string, start, indentLen int) int {
	end := start - 1

	for i := start; i < len(lines); i++ {
		if IsBlank(lines[i]) {
			continue
		}

		if len(Indent(lines[i])) <= indentLen {
			break
		}

		end = i
	}

	return end
}

func firstBodyIndent(lines []string, start, end int) string {
	for i := start; i <= end; i++ {
		if !IsBlank(lines[i]) {
			return Indent(lines[i])
		}
	}

	return ""
}

func parseParams(lines []string, start, end int) []string {
	header := strings.Join(lines[start:end+1], "\n")

	open := strings.IndexByte(header, '(')
	if open < 0 {
		return nil
	}

	depth := 0
	closing := -1

	for i := open; i < len(header); i++ {
		switch header[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}

		if depth == 0 {
			closing = i
			break
		}
	}

	if closing < 0 {
		return nil
	}

	var params []string

	for _, param := range SplitTopLevel(header[open+1 : closing]) {
		param = strings.TrimSpace(param)
		if param != "" {
			params = append(params, param)
		}
	}

	return params
}

// SplitTopLevel splits on commas outside brackets and quotes.
func SplitTopLevel(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var parts []string

	depth := 0
	quote := byte(0)
	last := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}

	return append(parts, s[last:])
}

// StripComment removes a trailing # comment, respecting string literals.
func StripComment(line string) string {
	quote := byte(0)

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return strings.TrimRight(line[:i], " \t")
		}
	}

	return line
}

// bracketDelta is the net bracket depth change of a line, ignoring
// brackets inside string literals.
func bracketDelta(line string) int {
	depth := 0
	quote := byte(0)

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return depth
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		}
	}

	return depth
}

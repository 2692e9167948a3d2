package frame

import "strings"

// Content is the ordered sequence of lines being framed.
type Content struct {
	lines []Line
}

// ContentFromText splits text on '\n'. Empty segments, including a trailing
// one after a final line break, are kept as empty lines.
func ContentFromText(text string) Content {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(p)
	}
	return Content{lines: lines}
}

// Lines returns a copy of the content lines in input order.
func (c Content) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c Content) Len() int {
	return len(c.lines)
}

// LongestLine returns the first line with the highest rune count, or an
// empty line when c holds no lines.
func (c Content) LongestLine() Line {
	var longest Line
	best := -1
	for _, l := range c.lines {
		if n := l.CharCount(); n > best {
			longest, best = l, n
		}
	}
	return longest
}

// RenderBody wraps every line with [Side] and joins them with '\n'.
func (c Content) RenderBody() string {
	rows := make([]string, len(c.lines))
	for i, l := range c.lines {
		rows[i] = l.WrapWith(Side).String()
	}
	return strings.Join(rows, "\n")
}

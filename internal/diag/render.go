package diag

import (
	"strconv"
	"strings"
)

// terminalWidth is the assumed rendering width used to truncate and
// horizontally scroll long source lines so the offending column always
// stays visible even on a very long line.
const terminalWidth = 100

// Render formats a diagnostic for human consumption: a file+line header, the
// offending source line with tabs expanded and long lines scrolled/truncated,
// a caret underline spanning the offending region, and a trailing message
// line naming the phase, text, and position.
func Render(d *Diagnostic, filename string, source []byte) string {
	line, col := lineAndColumn(source, d.Start)
	raw := sourceLine(source, line)
	expanded, col := expandTabs(raw, col)

	spanSize := d.Stop - d.Start
	if spanSize < 1 {
		spanSize = 1
	}
	window := max(30, spanSize)

	display, displayCol := scroll(expanded, col, window)

	var b strings.Builder
	if filename != "" {
		b.WriteString(filename)
		b.WriteByte(':')
	}
	b.WriteString(strconv.Itoa(line))
	b.WriteByte('\n')

	b.WriteString(display)
	b.WriteByte('\n')

	b.WriteString(strings.Repeat(" ", max(0, displayCol-1)))
	b.WriteString(strings.Repeat("^", spanSize))
	b.WriteByte('\n')

	b.WriteString(d.Phase.String())
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.Content != nil {
		b.WriteString(" (")
		b.WriteString(string(rune(*d.Content)))
		b.WriteString(")")
	}
	b.WriteString(" at ")
	b.WriteString(strconv.Itoa(line))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(col))
	return b.String()
}

// lineAndColumn converts a byte offset to a 1-based (line, column) pair by
// counting newlines up to offset and ignoring carriage returns, per the
// file:line / source-line / caret / message layout.
func lineAndColumn(source []byte, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(source) {
		offset = len(source)
	}
	for i := 0; i < offset; i++ {
		switch source[i] {
		case '\r':
			// ignored entirely when locating position
		case '\n':
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}

// sourceLine returns the 1-indexed line of source, with any trailing \r
// stripped.
func sourceLine(source []byte, lineNum int) string {
	lines := strings.Split(string(source), "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[lineNum-1], "\r")
}

// expandTabs replaces each tab with spaces up to the next multiple-of-4
// column stop, adjusting col (1-based, counted before expansion) to match
// its new position in the expanded string.
func expandTabs(s string, col int) (string, int) {
	const tabWidth = 4
	var b strings.Builder
	newCol := col
	for i, r := range s {
		if i+1 == col {
			newCol = b.Len() + 1
		}
		if r == '\t' {
			spaces := tabWidth - (b.Len() % tabWidth)
			b.WriteString(strings.Repeat(" ", spaces))
		} else {
			b.WriteRune(r)
		}
	}
	if col > len(s) {
		newCol = b.Len() + (col - len(s))
	}
	return b.String(), newCol
}

// scroll clips line so that col remains visible within a window-wide
// frame, used when the offending column lies further right than the
// terminal can show. It also enforces the overall terminalWidth cap.
func scroll(line string, col, window int) (string, int) {
	if col > window {
		shift := col - window
		if shift > len(line) {
			shift = len(line)
		}
		line = line[shift:]
		col -= shift
	}
	if len(line) > terminalWidth {
		line = line[:terminalWidth]
	}
	return line, col
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

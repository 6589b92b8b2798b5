package format

import "strings"

// tabularColumnWidth is the column reserved commands are padded to in the
// tabular styles.
const tabularColumnWidth = 10

// tabularMarker brackets reserved words in the formatter output so the
// padding sweep can find them. The main state machine stays oblivious to
// column alignment.
const tabularMarker = "\x00"

// applyTabular pads every marked token to the tabular column and removes the
// markers. Tokens wider than the column are left alone.
func applyTabular(s string, style IndentStyle) string {
	parts := strings.Split(s, tabularMarker)
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 0 {
			b.WriteString(part)
			continue
		}
		// The token and its following space fill the column together.
		if len(part) >= tabularColumnWidth-1 {
			b.WriteString(part)
			continue
		}
		pad := strings.Repeat(" ", tabularColumnWidth-1-len(part))
		if style == IndentTabularRight {
			b.WriteString(pad)
			b.WriteString(part)
		} else {
			b.WriteString(part)
			b.WriteString(pad)
		}
	}
	return b.String()
}

// applyCommaPosition rewrites trailing commas for the before and tabular
// placements. The after placement is the formatter's native output.
func applyCommaPosition(s string, pos CommaPosition) string {
	lines := strings.Split(s, "\n")
	switch pos {
	case CommaBefore:
		for i := 0; i < len(lines)-1; i++ {
			if !strings.HasSuffix(lines[i], ",") {
				continue
			}
			lines[i] = strings.TrimSuffix(lines[i], ",")
			next := lines[i+1]
			indent := next[:len(next)-len(strings.TrimLeft(next, " \t"))]
			lines[i+1] = indent + ", " + strings.TrimLeft(next, " \t")
		}
	case CommaTabular:
		for i, line := range lines {
			if !strings.HasSuffix(line, ",") {
				continue
			}
			content := strings.TrimSuffix(line, ",")
			indent := content[:len(content)-len(strings.TrimLeft(content, " \t"))]
			body := strings.TrimRight(content[len(indent):], " ")
			if len(body) < tabularColumnWidth {
				body += strings.Repeat(" ", tabularColumnWidth-len(body))
			}
			lines[i] = indent + body + ","
		}
	}
	return strings.Join(lines, "\n")
}

// aliasIndex locates the alias keyword on a line, either casing.
func aliasIndex(line string) int {
	if idx := strings.Index(line, " AS "); idx >= 0 {
		return idx
	}
	return strings.Index(line, " as ")
}

// alignAliases pads the AS keyword to a shared column across consecutive
// lines that carry one.
func alignAliases(s string) string {
	lines := strings.Split(s, "\n")
	start := -1
	flush := func(end int) {
		if start < 0 || end-start < 2 {
			start = -1
			return
		}
		width := 0
		for i := start; i < end; i++ {
			if idx := aliasIndex(lines[i]); idx > width {
				width = idx
			}
		}
		for i := start; i < end; i++ {
			idx := aliasIndex(lines[i])
			lines[i] = lines[i][:idx] + strings.Repeat(" ", width-idx) + lines[i][idx:]
		}
		start = -1
	}
	for i, line := range lines {
		if aliasIndex(line) >= 0 {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(lines))
	return strings.Join(lines, "\n")
}

package language

import "strings"

// blockStringValue applies the block string dedent rules to raw, whose line
// terminators are already normalized to "\n": common indentation of every line
// but the first is removed, then leading and trailing blank lines are dropped.
func blockStringValue(raw string) string {
	lines := strings.Split(raw, "\n")

	common := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if common == -1 || indent < common {
			common = indent
		}
	}
	if common > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < common {
				lines[i] = ""
			} else {
				lines[i] = lines[i][common:]
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// PrintableAsBlockString reports whether value survives a round trip through
// a block string printed on its own lines: the dedent rules must give the
// value back unchanged.
func PrintableAsBlockString(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < 0x20 && r != '\t' && r != '\n' {
			return false
		}
	}
	lines := strings.Split(value, "\n")
	if isBlank(lines[0]) || isBlank(lines[len(lines)-1]) {
		return false
	}
	for _, line := range lines {
		if !isBlank(line) && leadingWhitespace(line) == 0 {
			return true
		}
	}
	return false
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isBlank(s string) bool { return leadingWhitespace(s) == len(s) }

package testing

import (
	"regexp"
	"strings"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLines splits rendered output into lines without styling or trailing
// padding, dropping blank lines.
func VisibleLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(StripANSI(output), "\n") {
		line = strings.TrimRight(line, " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ContainsInOrder reports whether output contains every expected string, each
// one starting after the end of the previous match.
func ContainsInOrder(output string, expected ...string) bool {
	rest := output
	for _, exp := range expected {
		i := strings.Index(rest, exp)
		if i == -1 {
			return false
		}
		rest = rest[i+len(exp):]
	}
	return true
}

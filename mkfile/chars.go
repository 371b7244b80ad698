package mkfile

import (
	"strings"
	"unicode"
)

// Characters that make a dependency token a glob pattern. Note '-' is used
// by ranges but stays out of this set so ordinary names like "build-all"
// are not taken for patterns.
const globMeta = "*!?[]"

// Symbols allowed in segment names besides letters and digits.
const allowedSymbols = "/_-."

func isSegmentNameChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) ||
		strings.ContainsRune(allowedSymbols, c) ||
		strings.ContainsRune(globMeta, c)
}

func containsGlobMeta(s string) bool {
	return strings.ContainsAny(s, globMeta)
}

// findNewline returns the byte offset of the first '\n' in s, or -1.
func findNewline(s string) int {
	return strings.IndexByte(s, '\n')
}

// findNotWhitespace returns the byte offset of the first non-whitespace
// rune in s, or -1.
func findNotWhitespace(s string) int {
	return strings.IndexFunc(s, func(c rune) bool { return !unicode.IsSpace(c) })
}

// splitLines splits on '\n' without producing a final empty element for a
// trailing newline; "" yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

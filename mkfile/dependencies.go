package mkfile

import "unicode"

// collectDependencies splits the remainder of a header line (everything
// after the colon) into whitespace-separated tokens. It returns the number
// of bytes consumed and the tokens in authored order. Consumption ends
// just past the terminating newline; when the line runs to the end of
// input, consumed is len(content)+1 so the caller's cursor steps past the
// end, the same way it would step past a newline.
func collectDependencies(content string) (consumed int, deps []string) {
	wordBegin := -1
	for i, c := range content {
		if c == '\n' {
			if wordBegin != -1 {
				deps = append(deps, content[wordBegin:i])
			}
			return i + 1, deps
		}
		if unicode.IsSpace(c) {
			if wordBegin != -1 {
				deps = append(deps, content[wordBegin:i])
				wordBegin = -1
			}
			continue
		}
		if wordBegin == -1 {
			wordBegin = i
		}
	}
	if wordBegin != -1 {
		deps = append(deps, content[wordBegin:])
	}
	return len(content) + 1, deps
}

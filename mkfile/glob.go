package mkfile

import (
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// DesugarGlobs expands dependency tokens containing glob metacharacters
// against the set of segment names declared in the document. The match
// set is sorted so the expansion is deterministic regardless of
// declaration order. A pattern that does not compile is kept as a literal
// token; the resolver will treat it as an unknown name.
func DesugarGlobs(content string) string {
	nodes := ScanAll(content)
	var names []string
	for _, n := range nodes {
		if n.Kind == SegmentNode {
			names = append(names, n.Name)
		}
	}
	var b strings.Builder
	for _, n := range nodes {
		if n.Kind == ContentNode {
			b.WriteString(n.Body)
			continue
		}
		b.WriteString(n.Name)
		b.WriteByte(':')
		for _, d := range n.Dependencies {
			if !containsGlobMeta(d) {
				b.WriteByte(' ')
				b.WriteString(d)
				continue
			}
			for _, m := range expandGlob(names, d) {
				b.WriteByte(' ')
				b.WriteString(m)
			}
		}
		b.WriteByte('\n')
		b.WriteString(n.Body)
	}
	return b.String()
}

// expandGlob matches pattern against the declared names with '/' as a
// separator, so "f/*" matches "f/build" but not "f/go/build".
func expandGlob(names []string, pattern string) []string {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return []string{pattern}
	}
	var matches []string
	for _, name := range names {
		if g.Match(name) {
			matches = append(matches, name)
		}
	}
	slices.Sort(matches)
	return matches
}

package mkfile

import (
	"strings"
	"unicode"
)

// A group is a header whose name ends with '/'; its indented body is a
// nested document of its own. DesugarGroups rewrites groups into flat
// prefix-qualified segments. The rewrite recurses on raw text and re-runs
// the scanner over each group body: the scanner's invariants are the only
// contract between passes, so groups nest to arbitrary depth.
func DesugarGroups(content string) string {
	return desugarGroups(content, "")
}

func desugarGroups(content, prefix string) string {
	start, length, ok := findGroupStart(content)
	if !ok {
		return content
	}
	name := content[start : start+length-1]
	depsStart := start + length + 1
	consumed, deps := collectDependencies(content[depsStart:])
	bodyStart := depsStart + consumed
	// header at end of input
	if bodyStart >= len(content) {
		return content[:start] + buildGroupHeader(prefix, name, deps)
	}
	indentation, ok := detectGroupIndentation(content[bodyStart:])
	if !ok {
		// nothing but whitespace follows: an empty group
		return content[:start] + buildGroupHeader(prefix, name, deps) + "\n" +
			desugarGroups(content[bodyStart:], prefix)
	}
	bodyEnd := bodyStart + groupLen(content[bodyStart:], indentation)
	qualified := name
	if prefix != "" {
		qualified = prefix + "/" + name
	}
	inner := desugarGroups(
		removeParentIndentation(content[bodyStart:bodyEnd], len(indentation)),
		qualified,
	)
	var b strings.Builder
	b.WriteString(content[:start])
	for _, node := range ScanAll(inner) {
		switch node.Kind {
		case ContentNode:
			writePromotedContent(&b, prefix, name, indentation, deps, node.Body)
		case SegmentNode:
			writeChildSegment(&b, prefix, name, node)
		}
	}
	if bodyEnd < len(content) {
		b.WriteByte('\n')
		b.WriteString(desugarGroups(content[bodyEnd:], prefix))
	}
	return b.String()
}

// findGroupStart locates the next group header at column 0 of this
// document level. It returns the header's start offset and the length of
// the name including the trailing slash.
func findGroupStart(content string) (start, length int, ok bool) {
	prevIsSlash := false
	for i, c := range content {
		if (i == 0 && unicode.IsLetter(c)) || isSegmentNameChar(c) {
			prevIsSlash = c == '/'
			continue
		}
		// a group name has at least one character and ends with a slash;
		// anything else means this line is not a group header
		if c != ':' || i < 2 || !prevIsSlash {
			return skipLineAndFindGroupStart(content, i)
		}
		return 0, i, true
	}
	return 0, 0, false
}

func skipLineAndFindGroupStart(content string, skip int) (int, int, bool) {
	j := findNewline(content[skip:])
	if j < 0 {
		return 0, 0, false
	}
	k := skip + j + 1
	start, length, ok := findGroupStart(content[k:])
	if !ok {
		return 0, 0, false
	}
	return k + start, length, true
}

// detectGroupIndentation reports the whitespace run preceding the first
// non-whitespace rune of a group body. ok is false when the body is
// nothing but whitespace.
func detectGroupIndentation(content string) (string, bool) {
	i := findNotWhitespace(content)
	if i < 0 {
		return "", false
	}
	return content[:i], true
}

// groupLen measures how far the group body extends: lines keep belonging
// to the group while they start with its indentation.
func groupLen(content, indentation string) int {
	shift := len(indentation)
	for {
		p := findNewline(content[shift:])
		if p < 0 {
			return len(content)
		}
		shift += p + 1
		if !strings.HasPrefix(content[shift:], indentation) {
			return shift
		}
		shift += len(indentation)
	}
}

// buildGroupHeader renders the flattened header of a group without body.
// At the document root a leading '/' on a dependency is stripped; under a
// deeper prefix absolute dependencies are kept for the outer pass and
// relative ones are qualified.
func buildGroupHeader(prefix, name string, deps []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(':')
	for _, d := range deps {
		b.WriteByte(' ')
		switch {
		case strings.HasPrefix(d, "/") && prefix == "":
			b.WriteString(d[1:])
		case strings.HasPrefix(d, "/") || prefix == "":
			b.WriteString(d)
		default:
			b.WriteString(prefix)
			b.WriteByte('/')
			b.WriteString(d)
		}
	}
	return b.String()
}

// removeParentIndentation strips the first indent bytes from every line.
// Lines shorter than the indent (stray whitespace) are emptied. The
// trailing newline, if any, is dropped with it.
func removeParentIndentation(content string, indent int) string {
	if indent == 0 {
		return content
	}
	lines := splitLines(content)
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// Free content inside a group body is promoted into a segment named after
// the group itself, so it keeps its place between the group's child
// segments and runs whenever any of them does. The group's own
// dependencies go with it; at the document root a leading '/' on them is
// stripped.
func writePromotedContent(b *strings.Builder, prefix, name, indentation string, deps []string, body string) {
	b.WriteString(name)
	b.WriteByte(':')
	for _, d := range deps {
		b.WriteByte(' ')
		if strings.HasPrefix(d, "/") && prefix == "" {
			d = d[1:]
		}
		b.WriteString(d)
	}
	b.WriteByte('\n')
	lines := splitLines(body)
	for i, line := range lines {
		b.WriteString(indentation)
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	if strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
}

// writeChildSegment renders a segment of a group body under the group's
// prefix. The synthesised parent segment is inserted as the first
// dependency so the group's promoted content always precedes its
// children. Absolute dependencies ("/x") resolve at the document root;
// relative ones within the group.
func writeChildSegment(b *strings.Builder, prefix, group string, node Node) {
	b.WriteString(group)
	b.WriteByte('/')
	b.WriteString(node.Name)
	b.WriteString(": ")
	b.WriteString(group)
	for _, d := range node.Dependencies {
		b.WriteByte(' ')
		switch {
		case strings.HasPrefix(d, "/") && prefix == "":
			b.WriteString(d[1:])
		case strings.HasPrefix(d, "/"):
			b.WriteString(d)
		default:
			b.WriteString(group)
			b.WriteByte('/')
			b.WriteString(d)
		}
	}
	b.WriteByte('\n')
	b.WriteString(node.Body)
}

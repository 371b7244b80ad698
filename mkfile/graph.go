package mkfile

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// TargetNotFoundError reports a requested target that names no segment
// and, if it is a pattern, matches none.
type TargetNotFoundError struct {
	Target string
}

func (e TargetNotFoundError) Error() string {
	return fmt.Sprintf("target not found: %s", e.Target)
}

// makeGraph maps each segment name to its dependency set. A later
// declaration of a name overwrites the earlier one.
func makeGraph(nodes []Node) map[string]map[string]struct{} {
	graph := make(map[string]map[string]struct{})
	for _, n := range nodes {
		if n.Kind != SegmentNode {
			continue
		}
		deps := make(map[string]struct{}, len(n.Dependencies))
		for _, d := range n.Dependencies {
			deps[d] = struct{}{}
		}
		graph[n.Name] = deps
	}
	return graph
}

// admitTargets maps target-or-pattern strings to declared segment names.
// An exact segment name admits itself; otherwise a glob pattern admits
// every name it matches.
func admitTargets(graph map[string]map[string]struct{}, targets []string) ([]string, error) {
	var admitted []string
	for _, t := range targets {
		if _, ok := graph[t]; ok {
			admitted = append(admitted, t)
			continue
		}
		if containsGlobMeta(t) {
			if g, err := glob.Compile(t, '/'); err == nil {
				matched := false
				for name := range graph {
					if g.Match(name) {
						admitted = append(admitted, name)
						matched = true
					}
				}
				if matched {
					continue
				}
			}
		}
		return nil, TargetNotFoundError{Target: t}
	}
	return admitted, nil
}

// reachable walks the dependency relation from the admitted names. Cycles
// are harmless: a visited name is never walked twice. Edges to names that
// were never declared are ignored.
func reachable(graph map[string]map[string]struct{}, admitted []string) map[string]struct{} {
	visited := make(map[string]struct{})
	stack := append([]string(nil), admitted...)
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}
		for dep := range graph[name] {
			stack = append(stack, dep)
		}
	}
	return visited
}

// Resolve materialises the script for the given targets: free content is
// always emitted, reachable segment bodies are emitted in document order
// (not topological order; the output is text, not an execution plan) with
// their indentation stripped. An empty target list emits free content
// only.
func Resolve(nodes []Node, targets []string) (string, error) {
	graph := makeGraph(nodes)
	admitted, err := admitTargets(graph, targets)
	if err != nil {
		return "", err
	}
	included := reachable(graph, admitted)
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case ContentNode:
			b.WriteString(n.Body)
		case SegmentNode:
			if _, ok := included[n.Name]; ok {
				writeDeindented(&b, n.Body, len(n.Indentation))
			}
		}
	}
	return b.String(), nil
}

// writeDeindented strips indent bytes from every body line, preserving
// interior newlines. The output ends with a newline iff the body did.
func writeDeindented(b *strings.Builder, body string, indent int) {
	if indent == 0 {
		b.WriteString(body)
		return
	}
	trailing := strings.HasSuffix(body, "\n")
	lines := splitLines(body)
	for i, line := range lines {
		if len(line) >= indent {
			b.WriteString(line[indent:])
		}
		if i < len(lines)-1 || trailing {
			b.WriteByte('\n')
		}
	}
}

// ReachableSegments returns the reachable segment nodes in document
// order.
func ReachableSegments(nodes []Node, targets []string) ([]Node, error) {
	graph := makeGraph(nodes)
	admitted, err := admitTargets(graph, targets)
	if err != nil {
		return nil, err
	}
	included := reachable(graph, admitted)
	var segments []Node
	for _, n := range nodes {
		if n.Kind != SegmentNode {
			continue
		}
		if _, ok := included[n.Name]; ok {
			segments = append(segments, n)
		}
	}
	return segments, nil
}

package mk

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/x0k/mk/mkfile"
)

// DefaultInput is the glob used to discover task files in the working
// directory.
const DefaultInput = "[Mm]kfile*"

// Runbook is a set of task files assembled into one desugared document.
type Runbook struct {
	Files   []string // matched file names, in read order; empty for piped input
	Source  string   // concatenated raw input
	Content string   // the desugared document

	nodes []mkfile.Node
}

// Load reads every file matching pattern in the working directory, sorted,
// joined with single newlines. When nothing matches it changes into the
// parent directory and retries once: running mk from a subdirectory of the
// directory holding the mkfiles should work, and relative paths in the
// scripts should resolve against that directory.
func Load(pattern string) (*Runbook, error) {
	rb, err := load(pattern)
	if err != ErrNoInput {
		return rb, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	parent := filepath.Dir(cwd)
	if parent == cwd {
		return nil, ErrNoInput
	}
	if err := os.Chdir(parent); err != nil {
		return nil, err
	}
	return load(pattern)
}

func load(pattern string) (*Runbook, error) {
	names, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoInput
	}
	slices.Sort(names)
	contents := make([]string, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		contents = append(contents, string(data))
	}
	return New(names, strings.Join(contents, "\n")), nil
}

// FromReader assembles a runbook from a stream, typically a piped stdin.
func FromReader(r io.Reader) (*Runbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(nil, string(data)), nil
}

func New(files []string, source string) *Runbook {
	content := mkfile.Desugar(source)
	return &Runbook{
		Files:   files,
		Source:  source,
		Content: content,
		nodes:   mkfile.ScanAll(content),
	}
}

// Nodes returns the scanned nodes of the desugared document.
func (r *Runbook) Nodes() []mkfile.Node {
	return r.nodes
}

// Resolve concatenates the script for the given targets.
func (r *Runbook) Resolve(targets []string) (string, error) {
	return mkfile.Resolve(r.nodes, targets)
}

// Targets returns the reachable segments for the given targets, in
// document order; with no targets it returns every segment.
func (r *Runbook) Targets(targets []string) ([]mkfile.Node, error) {
	if len(targets) == 0 {
		return r.Segments(), nil
	}
	return mkfile.ReachableSegments(r.nodes, targets)
}

// Segments returns every segment node in document order.
func (r *Runbook) Segments() []mkfile.Node {
	var segments []mkfile.Node
	for _, n := range r.nodes {
		if n.Kind == mkfile.SegmentNode {
			segments = append(segments, n)
		}
	}
	return segments
}

// Names returns the declared segment names in document order.
func (r *Runbook) Names() []string {
	var names []string
	for _, n := range r.nodes {
		if n.Kind == mkfile.SegmentNode {
			names = append(names, n.Name)
		}
	}
	return names
}

// WantsExecutor reports whether a matched file name asks for the executor
// printer: a [Mm]kfile whose suffix before the first dot contains an 'x',
// e.g. mkfilex or Mkfilex.local.
func (r *Runbook) WantsExecutor() bool {
	for _, name := range r.Files {
		base := filepath.Base(name)
		if !strings.HasPrefix(base, "Mkfile") && !strings.HasPrefix(base, "mkfile") {
			continue
		}
		suffix := base[len("mkfile"):]
		if p := strings.IndexByte(suffix, '.'); p >= 0 {
			suffix = suffix[:p]
		}
		if strings.ContainsRune(suffix, 'x') {
			return true
		}
	}
	return false
}

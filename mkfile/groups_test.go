package mkfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGroupStart(t *testing.T) {
	test := func(input string, expectedStart, expectedLength int) func(*testing.T) {
		return func(t *testing.T) {
			start, length, ok := findGroupStart(input)
			require.True(t, ok)
			assert.Equal(t, expectedStart, start)
			assert.Equal(t, expectedLength, length)
		}
	}
	none := func(input string) func(*testing.T) {
		return func(t *testing.T) {
			_, _, ok := findGroupStart(input)
			assert.False(t, ok)
		}
	}

	t.Run("at start", test("group/:", 0, 6))
	t.Run("after line", test("skip\ngroup/:", 5, 6))
	t.Run("after segment", test("skip: this\n\tcontent\ngroup/:", 20, 6))
	t.Run("after empty line", test("\ngroup/:", 1, 6))
	t.Run("plain segment", none("segment:"))
	t.Run("slash inside name", none("not/group:"))
	t.Run("no colon", none("invalid/\n"))
	t.Run("indented", none("  group/:"))
}

func TestDesugarGroups(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, DesugarGroups(input))
		}
	}

	t.Run("empty group", test("group/: dep /root-dep", "group: dep root-dep"))

	t.Run("simple group", test("group/:\n\tcontent", "group:\n\tcontent"))

	// the blank lines inside the group carry the indentation of their
	// level, so they stay part of the bodies
	t.Run("group", test(
		"\ngroup/:\n"+
			"    pushd folder\n"+
			"    \n"+
			"    bar: /foo\n"+
			"        bar content\n"+
			"        \n"+
			"    baz: bar\n"+
			"        baz content\n"+
			"        \n"+
			"    popd",
		"\ngroup:\n"+
			"    pushd folder\n"+
			"    \n"+
			"group/bar: group foo\n"+
			"    bar content\n"+
			"    \n"+
			"group/baz: group group/bar\n"+
			"    baz content\n"+
			"    \n"+
			"group:\n"+
			"    popd"))

	t.Run("preserves newlines between group segments", test(`# Artifacts
a/:
  go/:
    pushd packages/testing-go/go
    build:
      GOOS=js GOARCH=wasm go build -o ../public/compiler.wasm cmd/compiler/main.go
    popd
  build: go/build
`, `# Artifacts
a/go: a
  pushd packages/testing-go/go
a/go/build: a a/go
  GOOS=js GOARCH=wasm go build -o ../public/compiler.wasm cmd/compiler/main.go
a/go: a
  popd
a/build: a a/go/build
`))
}

func TestDesugarGroupsIdempotence(t *testing.T) {
	inputs := []string{
		"group/: dep /root-dep",
		"group/:\n\tcontent",
		"\ngroup/:\n    pushd folder\n    \n    bar: /foo\n        bar content\n        \n    popd",
		"plain:\n\tcontent\n",
	}
	for _, input := range inputs {
		once := DesugarGroups(input)
		assert.Equal(t, once, DesugarGroups(once), "input: %q", input)
	}
}

func TestDesugarGroupsNoTrailingSlashNames(t *testing.T) {
	input := "a/:\n  b/:\n    c:\n      deep content\n  d: /root b/c\nroot:\n"
	for _, n := range ScanAll(DesugarGroups(input)) {
		if n.Kind == SegmentNode {
			assert.NotRegexp(t, "/$", n.Name)
		}
	}
}

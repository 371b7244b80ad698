package mkfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesugar(t *testing.T) {
	t.Run("globs see flattened names", func(t *testing.T) {
		input := "f/:\n" +
			"  check:\n" +
			"    check content\n" +
			"  build:\n" +
			"    build content\n" +
			"all: f/*\n"
		result := Desugar(input)
		nodes := ScanAll(result)
		var all Node
		for _, n := range nodes {
			if n.Kind == SegmentNode && n.Name == "all" {
				all = n
			}
		}
		require.Equal(t, SegmentNode, all.Kind)
		assert.Equal(t, []string{"f/build", "f/check"}, all.Dependencies)
	})

	t.Run("end to end", func(t *testing.T) {
		input := "f/:\n" +
			"  check:\n" +
			"    check content\n" +
			"all: f/check\n"
		resolved, err := Resolve(ScanAll(Desugar(input)), []string{"all"})
		require.NoError(t, err)
		assert.Equal(t, "check content\n", resolved)
	})
}

func TestDesugarIdempotence(t *testing.T) {
	inputs := []string{
		"",
		"content",
		"foo:\n\tcontent\n",
		"f/check:\nf/build:\nbuild: f/*",
		"\ngroup/:\n    pushd folder\n    \n    bar: /foo\n        bar content\n        \n    popd",
		"a/:\n  go/:\n    pushd go\n    build:\n      go build ./...\n    popd\n  build: go/build\n",
		"broken: [x\nfoo:\n",
	}
	for _, input := range inputs {
		once := Desugar(input)
		assert.Equal(t, once, Desugar(once), "input: %q", input)
	}
}

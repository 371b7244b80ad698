package mkfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesugarGlobs(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, DesugarGlobs(input))
		}
	}

	t.Run("expands sorted", test(
		"f/check:\nf/build:\nbuild: f/*",
		"f/check:\nf/build:\nbuild: f/build f/check\n"))

	t.Run("star does not cross slashes", test(
		"f/go/build:\nf/check:\nall: f/*",
		"f/go/build:\nf/check:\nall: f/check\n"))

	t.Run("question mark and class", test(
		"t1:\nt2:\nta:\nnum: t[0-9]\nany: t?",
		"t1:\nt2:\nta:\nnum: t1 t2\nany: t1 t2 ta\n"))

	t.Run("plain tokens pass through", test(
		"foo:\nbar: foo\n\tbar content",
		"foo:\nbar: foo\n\tbar content"))

	t.Run("unmatched pattern vanishes", test(
		"foo:\nbar: z*",
		"foo:\nbar:\n"))

	t.Run("broken pattern stays literal", test(
		"foo:\nbar: [x",
		"foo:\nbar: [x\n"))

	t.Run("free content untouched", test(
		"common\nbuild: *\nf:",
		"common\nbuild: build f\nf:\n"))
}

func TestDesugarGlobsInvariant(t *testing.T) {
	// after the pass, no dependency token contains a metacharacter
	// (as long as segment names themselves are glob-free)
	input := "f/check:\nf/build:\nbuild: f/* !bad [also-bad\nall: *"
	for _, n := range ScanAll(DesugarGlobs(input)) {
		if n.Kind != SegmentNode {
			continue
		}
		for _, d := range n.Dependencies {
			if d == "[also-bad" {
				// uncompilable, kept literal
				continue
			}
			assert.False(t, containsGlobMeta(d), "dep %q of %q", d, n.Name)
		}
	}
}

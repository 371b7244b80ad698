package mkfile

// Desugar rewrites a document into the flat canonical form: groups first,
// then glob dependencies. The order is load-bearing; glob expansion has to
// see the flattened universe of segment names.
func Desugar(content string) string {
	return DesugarGlobs(DesugarGroups(content))
}

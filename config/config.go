package config

// FormatVersion is the project file layout version. Bump when the yaml
// layout changes in a way old loaders cannot read.
const FormatVersion = 1

var strictLoading bool

// SetStrictLoading switches project loading between skipping entries it
// cannot restore (default) and failing on them.
func SetStrictLoading(strict bool) {
	strictLoading = strict
}

func StrictLoading() bool {
	return strictLoading
}

// Package deps defines the dependency record produced by lock-file parsers
// and the license lookup capability they resolve license text through.
//
// Parsers for a concrete package manager live in subpackages (see
// [github.com/matzehuels/attribute/pkg/deps/cocoapods]). They accept a
// [LicenseLookup] instead of touching the file system directly, so the
// parsing rules can be exercised with an in-memory [LicenseMap].
package deps

// Dependency is one resolved, licensed dependency.
type Dependency struct {
	Name    string // Dependency name exactly as it appears in the lock file
	Version string // Bare version string with delimiters removed
	License string // Verbatim license text
}

// LicenseLookup resolves the license text for a dependency by name.
// The boolean result reports whether a license was found; a dependency
// without one is excluded from the report.
type LicenseLookup interface {
	License(name string) (string, bool)
}

// LicenseFunc adapts an ordinary function to [LicenseLookup].
type LicenseFunc func(name string) (string, bool)

// License calls f(name).
func (f LicenseFunc) License(name string) (string, bool) { return f(name) }

// LicenseMap is an in-memory [LicenseLookup] keyed by dependency name.
type LicenseMap map[string]string

// License returns the mapped text for name.
func (m LicenseMap) License(name string) (string, bool) {
	text, ok := m[name]
	return text, ok
}

// Names returns the dependency names in order.
func Names(ds []Dependency) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}

package cocoapods

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/matzehuels/attribute/pkg/deps"
	"github.com/matzehuels/attribute/pkg/errors"
)

const (
	// DefaultPodsDir is the directory CocoaPods installs pods into.
	DefaultPodsDir = "Pods"

	// DefaultLicenseFile is the license file looked up in each pod directory.
	DefaultLicenseFile = "LICENSE"
)

// PodsDir reads license files from an installed pods directory.
type PodsDir struct {
	root  string
	files []string
}

// NewPodsDir returns a lookup reading <dir>/<podsDir>/<name>/<file> for the
// first readable file of files. Empty podsDir and files mean
// [DefaultPodsDir] and [DefaultLicenseFile].
func NewPodsDir(dir, podsDir string, files ...string) *PodsDir {
	if podsDir == "" {
		podsDir = DefaultPodsDir
	}
	if len(files) == 0 {
		files = []string{DefaultLicenseFile}
	}
	return &PodsDir{root: filepath.Join(dir, podsDir), files: files}
}

// Root returns the pods directory the lookup reads from.
func (p *PodsDir) Root() string { return p.root }

// License returns the text of the first readable license file for name.
// Names rejected by [errors.ValidatePackageName] have no license: names
// that would resolve outside the pods directory and names over 256 bytes.
func (p *PodsDir) License(name string) (string, bool) {
	if errors.ValidatePackageName(name) != nil {
		return "", false
	}
	for _, file := range p.files {
		data, err := os.ReadFile(filepath.Join(p.root, name, file))
		if err != nil || !utf8.Valid(data) {
			continue
		}
		return string(data), true
	}
	return "", false
}

var _ deps.LicenseLookup = (*PodsDir)(nil)

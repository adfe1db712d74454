package cocoapods

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/attribute/pkg/deps"
	"github.com/matzehuels/attribute/pkg/errors"
)

// LockfileName is the file CocoaPods writes next to the Podfile.
const LockfileName = "Podfile.lock"

// entryMarker prefixes every top-level entry of the PODS block.
const entryMarker = "  - "

// minTokens is the token count an entry line must exceed.
// "  - Name (1.0)" splits into "", "", "-", "Name", "(1.0)".
const minTokens = 4

// ParseStats describes what a parse pass saw besides the emitted records.
type ParseStats struct {
	Candidates int      // Lines carrying the entry marker
	Skipped    int      // Candidates with too few tokens or an empty name or version
	Unlicensed []string // Names dropped because no license was found
}

// ReadLockfile returns the text of the lock file called name in dir.
// An empty name means [LockfileName]. Any failure, including content that is
// not valid UTF-8, is reported as an [errors.ErrCodeRead] error.
func ReadLockfile(dir, name string) (string, error) {
	if name == "" {
		name = LockfileName
	}
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRead, err, "read %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeRead, "read %s: content is not valid UTF-8", path)
	}
	return string(data), nil
}

// Parse returns the licensed dependencies listed in the PODS block of text,
// in line order.
func Parse(text string, lookup deps.LicenseLookup) []deps.Dependency {
	ds, _ := ParseDetailed(text, lookup)
	return ds
}

// ParseDetailed is [Parse] that also reports skipped and unlicensed entries.
// A nil lookup finds no licenses.
func ParseDetailed(text string, lookup deps.LicenseLookup) ([]deps.Dependency, ParseStats) {
	var (
		out   []deps.Dependency
		stats ParseStats
	)
	if lookup == nil {
		lookup = deps.LicenseMap(nil)
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	// A single line can never be longer than the whole text.
	scanner.Buffer(nil, max(len(text)+1, bufio.MaxScanTokenSize))

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		if !strings.HasPrefix(line, entryMarker) {
			continue
		}
		stats.Candidates++

		name, version, ok := parseEntry(line)
		if !ok {
			stats.Skipped++
			continue
		}

		license, ok := lookup.License(name)
		if !ok {
			stats.Unlicensed = append(stats.Unlicensed, name)
			continue
		}

		out = append(out, deps.Dependency{Name: name, Version: version, License: license})
	}

	return out, stats
}

// parseEntry splits an entry line on single spaces and picks the name and
// the version tokens. Consecutive spaces produce empty tokens, so the token
// positions are fixed by the two-space indent. An empty name or version
// token rejects the line.
func parseEntry(line string) (name, version string, ok bool) {
	tokens := strings.Split(line, " ")
	if len(tokens) <= minTokens {
		return "", "", false
	}
	name, version = tokens[3], stripVersion(tokens[4])
	if name == "" || version == "" {
		return "", "", false
	}
	return name, version, true
}

var versionDelimiters = strings.NewReplacer("(", "", ")", "", ":", "")

// stripVersion removes every parenthesis and colon from a version token.
func stripVersion(token string) string {
	return versionDelimiters.Replace(token)
}

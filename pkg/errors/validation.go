package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageName checks that a dependency name can be used as a single
// directory component below the pods directory.
//
// Rejected names:
//   - empty names
//   - names longer than 256 bytes
//   - control characters and null bytes
//   - path traversal sequences (.., //) and backslashes
//   - absolute paths
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 bytes)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	if strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidPackage, "package name cannot be an absolute path")
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateManifestFilename validates a lock-file or report filename.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "filename cannot contain path separators: %q", filename)
	}

	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidManifest, "filename cannot be %q", filename)
	}

	return nil
}

// Package config loads the optional attribute configuration file.
//
// The file is TOML and every key is optional:
//
//	lockfile      = "Podfile.lock"
//	pods_dir      = "Pods"
//	output        = "attributions.json"
//	license_files = ["LICENSE", "LICENSE.md"]
//
// Without a file the defaults reproduce the fixed CocoaPods layout:
// Podfile.lock and Pods/<name>/LICENSE in, attributions.json out.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/attribute/pkg/deps/cocoapods"
	"github.com/matzehuels/attribute/pkg/errors"
)

const (
	// FileName is the config file looked up in the project directory.
	FileName = ".attribute.toml"

	// DefaultOutput is the report filename.
	DefaultOutput = "attributions.json"
)

// Config controls where the pipeline reads from and writes to.
// All paths are relative to the project directory.
type Config struct {
	Lockfile     string   `toml:"lockfile"`
	PodsDir      string   `toml:"pods_dir"`
	Output       string   `toml:"output"`
	LicenseFiles []string `toml:"license_files"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Lockfile:     cocoapods.LockfileName,
		PodsDir:      cocoapods.DefaultPodsDir,
		Output:       DefaultOutput,
		LicenseFiles: []string{cocoapods.DefaultLicenseFile},
	}
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.Lockfile == "" {
		c.Lockfile = d.Lockfile
	}
	if c.PodsDir == "" {
		c.PodsDir = d.PodsDir
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if len(c.LicenseFiles) == 0 {
		c.LicenseFiles = d.LicenseFiles
	}
	return c
}

// Validate checks that every configured name is a plain filename.
func (c Config) Validate() error {
	for _, name := range append([]string{c.Lockfile, c.Output}, c.LicenseFiles...) {
		if err := errors.ValidateManifestFilename(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid filename %q", name)
		}
	}
	if err := errors.ValidatePackageName(c.PodsDir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid pods_dir %q", c.PodsDir)
	}
	return nil
}

// Load reads the config file at path. Unset keys take their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}

	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Resolve returns the configuration for the project in dir.
// An explicit path must exist. Otherwise [FileName] in dir is used when
// present and the defaults when it is not.
func Resolve(dir, path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	path = filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

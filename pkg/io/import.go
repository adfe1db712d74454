package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/attribute/pkg/deps"
)

// ReadReport decodes a report from r.
//
// Every entry must carry a non-empty name; version and license are taken
// as-is. ReadReport does not close r.
func ReadReport(r io.Reader) ([]deps.Dependency, error) {
	var data []record
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	ds := make([]deps.Dependency, len(data))
	for i, rec := range data {
		if rec.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name", i)
		}
		ds[i] = deps.Dependency{Name: rec.Name, Version: rec.Version, License: rec.License}
	}
	return ds, nil
}

// ImportReport reads the report file at path.
func ImportReport(path string) ([]deps.Dependency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadReport(f)
}

package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/attribute/pkg/deps"
	"github.com/matzehuels/attribute/pkg/errors"
)

// record is the wire form of a dependency. Field order is the output order.
type record struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	License string `json:"license"`
}

// Marshal encodes ds as the report document.
// It returns an [errors.ErrCodeEncode] error if encoding fails. Records hold
// only strings, which encoding/json always encodes (invalid UTF-8 is
// replaced with U+FFFD), so the error is not reachable in practice.
func Marshal(ds []deps.Dependency) ([]byte, error) {
	out := make([]record, len(ds))
	for i, d := range ds {
		out[i] = record{Name: d.Name, Version: d.Version, License: d.License}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode attributions")
	}
	return buf.Bytes(), nil
}

// WriteReport encodes ds and writes the report to w.
func WriteReport(ds []deps.Dependency, w io.Writer) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write attributions")
	}
	return nil
}

// ExportReport writes the report for ds to path, replacing any file that
// already exists there. The existing file is removed only after ds has been
// encoded successfully.
func ExportReport(ds []deps.Dependency, path string) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeWrite, err, "remove %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "close %s", path)
	}
	return nil
}

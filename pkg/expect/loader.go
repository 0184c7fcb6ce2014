package expect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// suiteFile is the on-disk structure for an expectation suite
// (JSON or YAML).
type suiteFile struct {
	Version      string       `json:"version" yaml:"version"`
	Expectations []Definition `json:"expectations" yaml:"expectations"`
}

// LoadFile reads an expectation suite from a .json, .yaml, or
// .yml file, validates every definition, and returns them in
// file order.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return parse(data, ext == ".yaml" || ext == ".yml", path)
}

// LoadDir loads all .json and .yaml/.yml suite files from a
// directory in lexical order. It does not recurse into
// subdirectories.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		loaded, err := LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}
		defs = append(defs, loaded...)
	}

	return defs, nil
}

// parse unmarshals a suite and validates its definitions.
func parse(
	data []byte,
	asYAML bool,
	source string,
) ([]Definition, error) {
	var suite suiteFile

	var err error
	if asYAML {
		err = yaml.Unmarshal(data, &suite)
	} else {
		err = json.Unmarshal(data, &suite)
	}
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite from %s: %w", source, err,
		)
	}

	for i, d := range suite.Expectations {
		if err := d.Validate(); err != nil {
			name := d.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf(
				"expectation %s from %s: %w",
				name, source, err,
			)
		}
	}

	return suite.Expectations, nil
}

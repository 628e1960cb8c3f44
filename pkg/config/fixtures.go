package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/magemock/pkg/store"
)

// ErrInvalidFixtures is returned when a fixture file does not match the
// fixture schema.
var ErrInvalidFixtures = errors.New("invalid fixture file")

const fixtureSchemaURL = "fixtures.schema.json"

//go:embed fixtures.schema.json
var fixtureSchemaJSON []byte

var fixtureSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(fixtureSchemaURL, bytes.NewReader(fixtureSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile(fixtureSchemaURL)
})

// LoadFixtures reads every file matched by patterns and merges their
// content. Patterns may use ** to match directories recursively. Files are
// loaded in lexical order within each pattern. A pattern matching nothing is
// not an error.
func LoadFixtures(patterns []string) (*store.Fixtures, error) {
	out := &store.Fixtures{}
	for _, pattern := range patterns {
		matches, err := expandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, path := range matches {
			f, err := LoadFixtureFile(path)
			if err != nil {
				return nil, err
			}
			out.Append(f)
		}
	}
	return out, nil
}

// LoadFixtureFile reads one YAML or JSON fixture file and checks it against
// the fixture schema.
func LoadFixtureFile(path string) (*store.Fixtures, error) {
	data, err := readFile(path, ErrEmptyFile)
	if err != nil {
		return nil, err
	}

	if isYAML(path) {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w in file %s: %v", ErrInvalidYAML, path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert %s to JSON: %w", path, err)
		}
	} else if !json.Valid(data) {
		return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
	}

	if err := validateFixtures(data); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidFixtures, path, err)
	}

	var f store.Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures %s: %w", path, err)
	}
	return &f, nil
}

func validateFixtures(data []byte) error {
	schema, err := fixtureSchema()
	if err != nil {
		return fmt.Errorf("schema compilation error: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

// expandGlob expands a glob pattern to a list of matching file paths.
// Patterns without ** go through filepath.Glob.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}

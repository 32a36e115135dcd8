package lang

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type yamlVocab struct {
	Constants []string       `yaml:"constants"`
	Functions map[string]int `yaml:"functions"`
	Relations map[string]int `yaml:"relations"`
}

// FromYAML builds a Language from a YAML vocabulary document:
//
//	constants: [a, b, c]
//	functions: {f1: 1, f3: 3}
//	relations: {r2: 2}
func FromYAML(d []byte) (*Language, error) {
	var v yamlVocab
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVocab, err)
	}
	return New(v.Constants, v.Functions, v.Relations)
}

// LoadFile reads a YAML vocabulary file.
func LoadFile(path string) (*Language, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := FromYAML(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse builds a Lexicon from YAML-encoded Definition data.
func Parse(data []byte) (*Lexicon, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("lexicon: decode yaml: %w", err)
	}
	return New(def)
}

// LoadFile reads and validates a lexicon YAML file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return Parse(data)
}

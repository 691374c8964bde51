package lexicon

import "regexp"

// Category is a named group of keywords, e.g. "aircraft types".
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Definition is the raw, unvalidated content of a lexicon. It is the shape
// of a lexicon YAML file.
type Definition struct {
	Domain         string     `yaml:"domain"`
	Categories     []Category `yaml:"categories"`
	Phrases        []string   `yaml:"phrases"`
	Entities       []string   `yaml:"entities"`
	Codes          []string   `yaml:"codes"`
	CodeExclusions []string   `yaml:"code_exclusions"`
}

// KeywordMatch is a single category keyword found in a message.
type KeywordMatch struct {
	Keyword  string
	Category string
}

// term is a lower-cased keyword or entity with its word-boundary matcher.
type term struct {
	text     string
	category string
	pattern  *regexp.Regexp
}

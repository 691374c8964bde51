package lexicon

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultDomain labels lexicons that do not name their subject matter.
const DefaultDomain = "Aviation"

// Lexicon is an immutable, validated keyword taxonomy with pre-compiled
// matchers. It is safe for concurrent use.
type Lexicon struct {
	domain         string
	categories     []Category
	phrases        []string
	entities       []term
	keywords       []term
	codes          map[string]struct{}
	codeExclusions map[string]struct{}
}

// New validates def and builds a Lexicon. All terms are lower-cased and
// trimmed; codes are upper-cased.
func New(def Definition) (*Lexicon, error) {
	lex := &Lexicon{
		domain:         strings.TrimSpace(def.Domain),
		codes:          make(map[string]struct{}, len(def.Codes)),
		codeExclusions: make(map[string]struct{}, len(def.CodeExclusions)),
	}
	if lex.domain == "" {
		lex.domain = DefaultDomain
	}

	seen := make(map[string]bool, len(def.Categories))
	for _, c := range def.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, ErrEmptyCategoryName
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
		}
		seen[key] = true

		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, name)
		}

		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			norm, err := normalizeTerm(kw)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
			keywords = append(keywords, norm)
			lex.keywords = append(lex.keywords, newTerm(norm, name))
		}
		lex.categories = append(lex.categories, Category{Name: name, Keywords: keywords})
	}

	for _, p := range def.Phrases {
		norm, err := normalizeTerm(p)
		if err != nil {
			return nil, fmt.Errorf("phrases: %w", err)
		}
		lex.phrases = append(lex.phrases, norm)
	}

	for _, e := range def.Entities {
		norm, err := normalizeTerm(e)
		if err != nil {
			return nil, fmt.Errorf("entities: %w", err)
		}
		lex.entities = append(lex.entities, newTerm(norm, ""))
	}

	for _, c := range def.Codes {
		code := strings.ToUpper(strings.TrimSpace(c))
		if code == "" {
			return nil, fmt.Errorf("codes: %w", ErrBlankTerm)
		}
		lex.codes[code] = struct{}{}
	}
	for _, c := range def.CodeExclusions {
		lex.codeExclusions[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}

	return lex, nil
}

// MustNew is New for package-level lexicons; it panics on an invalid definition.
func MustNew(def Definition) *Lexicon {
	lex, err := New(def)
	if err != nil {
		panic(err)
	}
	return lex
}

func normalizeTerm(s string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return "", ErrBlankTerm
	}
	return norm, nil
}

func newTerm(text, category string) term {
	return term{
		text:     text,
		category: category,
		pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(text) + `\b`),
	}
}

// Domain returns the subject-matter label, e.g. "Aviation".
func (l *Lexicon) Domain() string {
	return l.domain
}

// Categories returns a copy of the categories in definition order.
func (l *Lexicon) Categories() []Category {
	out := make([]Category, len(l.categories))
	for i, c := range l.categories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Phrases returns a copy of the multi-word phrase list.
func (l *Lexicon) Phrases() []string {
	return append([]string(nil), l.phrases...)
}

// Entities returns a copy of the named entity list.
func (l *Lexicon) Entities() []string {
	out := make([]string, len(l.entities))
	for i, e := range l.entities {
		out[i] = e.text
	}
	return out
}

package lexicon

import (
	"regexp"
	"strings"
)

var (
	// codeToken matches 3-4 letter tokens that may be location or identifier codes.
	codeToken = regexp.MustCompile(`\b[A-Za-z]{3,4}\b`)

	// icaoCode is the shape of ICAO airport identifiers in the US (K) and
	// Europe (E, L). Other upper-case tokens only count when allow-listed.
	icaoCode = regexp.MustCompile(`^[KEL][A-Z]{3}$`)

	wordToken = regexp.MustCompile(`\b[A-Za-z]{2,}\b`)
)

// MatchPhrases returns every phrase contained in normalized, in lexicon order.
// normalized must already be lower-cased.
func (l *Lexicon) MatchPhrases(normalized string) []string {
	var out []string
	for _, p := range l.phrases {
		if strings.Contains(normalized, p) {
			out = append(out, p)
		}
	}
	return out
}

// MatchEntities returns every named entity found as a whole word in normalized.
func (l *Lexicon) MatchEntities(normalized string) []string {
	var out []string
	for _, e := range l.entities {
		if e.pattern.MatchString(normalized) {
			out = append(out, e.text)
		}
	}
	return out
}

// MatchKeywords returns every category keyword found as a whole word in
// normalized, with its owning category.
func (l *Lexicon) MatchKeywords(normalized string) []KeywordMatch {
	var out []KeywordMatch
	for _, k := range l.keywords {
		if k.pattern.MatchString(normalized) {
			out = append(out, KeywordMatch{Keyword: k.text, Category: k.category})
		}
	}
	return out
}

// MatchCodes scans the original-case text for location or identifier codes:
// upper-case tokens on the allow-list, plus upper-case ICAO-shaped tokens not
// on the exclusion list. The ICAO shape is ignored when most words are upper
// case. Codes are returned once each.
func (l *Lexicon) MatchCodes(text string) []string {
	icao := !mostlyUpper(text)

	var out []string
	seen := make(map[string]bool)
	for _, tok := range codeToken.FindAllString(text, -1) {
		if tok != strings.ToUpper(tok) || seen[tok] {
			continue
		}

		_, allowed := l.codes[tok]
		_, excluded := l.codeExclusions[tok]
		if allowed || (icao && !excluded && icaoCode.MatchString(tok)) {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

// mostlyUpper reports whether more than half of the words are upper case.
func mostlyUpper(text string) bool {
	words := wordToken.FindAllString(text, -1)
	upper := 0
	for _, w := range words {
		if w == strings.ToUpper(w) {
			upper++
		}
	}
	return upper*2 > len(words)
}

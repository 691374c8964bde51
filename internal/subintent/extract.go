package subintent

import (
	"regexp"
	"strings"
)

var (
	titlePattern       = regexp.MustCompile(`(?i)\b(?:find|search for|looking for)\s+(.+?)\s+(?:based\s+)?(?:at|in|from|with)\b`)
	locationPattern    = regexp.MustCompile(`\b(?:[Bb]ased in|[Ii]n|[Aa]t|[Ff]rom)\s+([A-Z][\w.'-]*(?:\s+[A-Z][\w.'-]*)*)`)
	companySizePattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\s*-\s*\d[\d,]*)?\s*\+?)[\s-]*employees\b`)
)

// extract pulls best-effort filter candidates from the original-case text.
// Parameters without a candidate stay unset.
func extract(intent IntentType, original string) Parameters {
	var p Parameters
	switch intent {
	case IntentPersonSearch:
		p.Title = extractTitle(original)
		p.Locations = extractLocations(original)
	case IntentOrganizationSearch:
		p.CompanySize = extractCompanySize(original)
	case IntentCampaignAnalysis, IntentSequenceManagement, IntentLeadGeneration, IntentGeneric:
	}
	return p
}

func extractTitle(text string) *string {
	m := titlePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return nil
	}
	return &title
}

func extractLocations(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range locationPattern.FindAllStringSubmatch(text, -1) {
		loc := strings.TrimRight(m[1], ".'-")
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, loc)
	}
	return out
}

func extractCompanySize(text string) *string {
	m := companySizePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	size := strings.Join(strings.Fields(m[1]), "")
	return &size
}

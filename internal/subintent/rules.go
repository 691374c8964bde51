package subintent

// DefaultRules returns the ordered rule list. The first matching rule wins;
// a message matching none is generic.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent:         IntentPersonSearch,
			Triggers:       SearchTriggers,
			Terms:          PersonNouns,
			BaseConfidence: PersonSearchConfidence,
			RequiresFetch:  true,
		},
		{
			Intent:         IntentOrganizationSearch,
			Terms:          []string{"company", "companies", "organization", "organizations", "firm", "firms"},
			BaseConfidence: OrganizationSearchConfidence,
			RequiresFetch:  true,
		},
		{
			Intent:         IntentSequenceManagement,
			Terms:          []string{"sequence", "sequences", "campaign", "campaigns", "outreach"},
			BaseConfidence: SequenceConfidence,
			RequiresFetch:  true,
		},
		{
			Intent:         IntentLeadGeneration,
			Terms:          []string{"lead", "leads", "prospect", "prospects", "prospecting"},
			BaseConfidence: LeadGenerationConfidence,
			RequiresFetch:  true,
		},
	}
}

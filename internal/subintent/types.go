package subintent

// IntentType is the closed set of structured-data intents.
type IntentType string

const (
	IntentPersonSearch       IntentType = "structured-search-by-person"
	IntentOrganizationSearch IntentType = "structured-search-by-organization"
	IntentCampaignAnalysis   IntentType = "campaign-analysis"
	IntentSequenceManagement IntentType = "sequence-management"
	IntentLeadGeneration     IntentType = "lead-generation"
	IntentGeneric            IntentType = "generic"
)

// AllIntentTypes returns every intent type in declaration order.
func AllIntentTypes() []IntentType {
	return []IntentType{
		IntentPersonSearch,
		IntentOrganizationSearch,
		IntentCampaignAnalysis,
		IntentSequenceManagement,
		IntentLeadGeneration,
		IntentGeneric,
	}
}

func (t IntentType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known intent types.
func (t IntentType) IsValid() bool {
	for _, it := range AllIntentTypes() {
		if it == t {
			return true
		}
	}
	return false
}

// Parameters holds filter candidates extracted from the original message.
// A nil or empty field means extraction found no candidate.
type Parameters struct {
	Title       *string  `json:"title,omitempty"`
	Locations   []string `json:"locations,omitempty"`
	CompanySize *string  `json:"companySize,omitempty"`
}

// Keys returns the names of the parameters that were extracted.
func (p Parameters) Keys() []string {
	keys := []string{}
	if p.Title != nil {
		keys = append(keys, ParamTitle)
	}
	if len(p.Locations) > 0 {
		keys = append(keys, ParamLocations)
	}
	if p.CompanySize != nil {
		keys = append(keys, ParamCompanySize)
	}
	return keys
}

// Result is the outcome of sub-intent classification.
type Result struct {
	IsMatch               bool       `json:"isMatch"`
	Intent                IntentType `json:"intentType"`
	Parameters            Parameters `json:"extractedParameters"`
	RequiresExternalFetch bool       `json:"requiresExternalFetch"`
	Confidence            float64    `json:"confidence"`
}

// Rule maps a keyword pattern to an intent. A rule applies when the message
// contains one of Terms and, if Triggers is set, one of Triggers as well.
type Rule struct {
	Intent         IntentType
	Triggers       []string
	Terms          []string
	BaseConfidence float64
	RequiresFetch  bool
}

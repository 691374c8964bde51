package subintent

// Parameter names
const (
	ParamTitle       = "title"
	ParamLocations   = "locations"
	ParamCompanySize = "companySize"
)

// Confidence tuning
const (
	PersonSearchConfidence       = 0.8
	OrganizationSearchConfidence = 0.7
	SequenceConfidence           = 0.6
	LeadGenerationConfidence     = 0.7

	SecondaryKeywordBoost = 0.1
	MaxConfidence         = 0.9
	MatchThreshold        = 0.3
)

// SearchTriggers open a person search.
var SearchTriggers = []string{"find", "search for", "looking for"}

// PersonNouns name the kind of record a person search asks for.
var PersonNouns = []string{
	"people", "person", "persons", "contact", "contacts", "executive", "executives",
	"decision maker", "decision makers", "founder", "founders", "ceo", "ceos", "cto", "ctos",
	"cfo", "cfos", "vp", "vps", "director", "directors", "manager", "managers",
	"assistant", "assistants", "engineer", "engineers", "recruiter", "recruiters",
	"professional", "professionals", "candidate", "candidates",
}

// SecondaryKeywords raise confidence once a rule has matched: role titles,
// data platform names and action verbs.
var SecondaryKeywords = []string{
	"ceo", "cto", "cfo", "coo", "vp", "director", "head of", "founder", "executive", "manager",
	"apollo", "linkedin", "salesforce", "hubspot", "zoominfo", "crunchbase",
	"find", "search", "list", "export", "enrich", "pull",
}

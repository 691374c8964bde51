package lexicon

// defaultLexicon is built once at startup and never mutated.
var defaultLexicon = MustNew(DefaultDefinition())

// Default returns the built-in private aviation lexicon.
func Default() *Lexicon {
	return defaultLexicon
}

// DefaultDefinition returns the raw built-in private aviation taxonomy.
func DefaultDefinition() Definition {
	return Definition{
		Domain: DefaultDomain,
		Categories: []Category{
			{
				Name: "aircraft types",
				Keywords: []string{
					"jet", "jets", "aircraft", "airplane", "plane", "planes",
					"turboprop", "turboprops", "helicopter", "helicopters", "bizjet", "airliner",
				},
			},
			{
				Name: "charter services",
				Keywords: []string{
					"charter", "charters", "chartering", "flight", "flights", "fly", "flying",
					"itinerary", "layover", "stopover", "roundtrip", "one-way", "catering", "quote",
				},
			},
			{
				Name: "locations",
				Keywords: []string{
					"airport", "airports", "fbo", "fbos", "runway", "hangar", "terminal",
					"tarmac", "airfield", "heliport", "airspace",
				},
			},
			{
				Name: "crew and operations",
				Keywords: []string{
					"pilot", "pilots", "crew", "captain", "dispatcher", "maintenance",
					"refuel", "refueling", "avionics", "payload",
				},
			},
			{
				Name: "regulatory terms",
				Keywords: []string{
					"faa", "easa", "wyvern", "argus", "is-bao", "airworthiness",
					"overflight", "customs",
				},
			},
		},
		Phrases: []string{
			"private jet", "private aviation", "private flight", "empty leg", "jet card",
			"charter flight", "aircraft for charter", "one-way charter", "round trip",
			"light jet", "midsize jet", "super midsize", "heavy jet", "ultra long range",
			"part 135", "part 91", "block hours", "flight hours", "fractional ownership",
			"aircraft management", "tail number", "ground handling", "customs clearance",
			"hourly rate", "repositioning fee", "landing fee", "flight time",
		},
		Entities: []string{
			"gulfstream", "bombardier", "embraer", "cessna", "dassault", "falcon", "learjet",
			"pilatus", "hondajet", "netjets", "vistajet", "wheels up", "flexjet", "xojet",
			"flyexclusive", "signature flight support", "jet aviation", "g650", "g550",
			"global 7500", "challenger 350", "citation x", "phenom 300", "king air", "pc-12",
		},
		Codes: []string{
			"JFK", "LAX", "TEB", "HPN", "VNY", "OPF", "MIA", "FLL", "PBI", "LAS", "SFO",
			"ORD", "DFW", "IAH", "BOS", "ASE", "EGE", "SDL", "LTN", "LHR", "CDG", "DXB",
			"KTEB", "KHPN", "KVNY", "KLAX", "KJFK", "KOPF", "KPBI", "LFPB", "EGGW", "EGLF", "OMDB",
		},
		CodeExclusions: []string{
			"CEO", "CFO", "CTO", "COO", "CMO", "VP", "USA", "LLC", "INC", "FAQ", "ASAP",
			"API", "URL", "PDF", "HTML", "JSON", "CRM", "SAAS", "THE", "AND", "FOR",
			"KEEP", "KIND", "KNOW", "EACH", "EASY", "EDIT", "ELSE", "EVEN", "EVER", "EXIT",
			"LAST", "LATE", "LESS", "LIFE", "LIKE", "LIVE", "LONG", "LOOK", "LOST", "LOVE",
		},
	}
}

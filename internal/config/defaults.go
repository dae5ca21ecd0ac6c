package config

// Default returns the repository defaults applied before any file or
// environment values.
func Default() Config {
	return Config{
		OutputDir: "results",
		LogLevel:  "info",
		LogFormat: "console",
		MLC: MLC{
			BaseURL:    "https://api.ptl.themlc.com",
			PageSize:   20,
			MaxRetries: 3,
		},
		Matching: Matching{
			SimilarityThreshold: 0.85,
			CodeMatchConfidence: 0.95,
			TextMatchCap:        0.85,
			Concurrency:         4,
		},
		Opportunity: Opportunity{
			MajorPublishers: []string{
				"SONY", "UNIVERSAL", "WARNER", "EMI", "BMG", "KOBALT", "CONCORD", "DOWNTOWN",
			},
			HighThreshold:   70,
			MediumThreshold: 50,
			Coverage:        CoverageWeights{Under25: 40, Under50: 30, Under75: 20, Covered: 10},
			Representation:  RepresentationWeights{NoMajor: 30, NoIndie: 10, SelfPublished: 10},
			Catalog:         CatalogWeights{Over50: 20, Over20: 15, Base: 10},
		},
	}
}

package config

// Lexicon holds the fixed indicator term lists used by the text extractor.
// Matching is substring-based against the lower-cased transcript, so a term
// can match inside a longer word ("like" matches "unlikely").
type Lexicon struct {
	PositiveIndicators []string `yaml:"positive_indicators"`
	NegativeIndicators []string `yaml:"negative_indicators"`
	ProfessionalTerms  []string `yaml:"professional_terms"`
	FillerWords        []string `yaml:"filler_words"`
}

// DefaultLexicon returns the built-in term lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		// Terms indicating concrete, accomplishment-oriented answers.
		PositiveIndicators: []string{
			"specifically", "example", "experience", "implemented", "achieved",
			"developed", "managed", "led", "improved", "solved", "created",
			"designed", "analyzed", "collaborated", "successfully",
		},
		// Hedging language indicating weak answers.
		NegativeIndicators: []string{
			"maybe", "probably", "kind of", "sort of", "like", "you know",
			"basically", "actually", "honestly", "pretty much",
		},
		ProfessionalTerms: []string{
			"methodology", "strategy", "implementation", "analysis",
			"development", "management", "coordination", "leadership",
			"optimization", "innovation", "solution", "framework",
		},
		FillerWords: []string{
			"um", "uh", "like", "you know", "so", "basically", "actually",
			"literally", "pretty much", "kind of", "sort of",
		},
	}
}

package analyze

import (
	"strings"
	"unicode/utf8"

	"speechgrade/internal/config"
)

// CleanText lower-cases and trims a transcript the way the extractor and the
// sentiment capability expect it.
func CleanText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// TextFeatures extracts lexical indicator counts from a transcript. Sentiment
// comes from the external capability and is passed through unchanged. An
// empty transcript yields zero counts and an average word length of 0.
func TextFeatures(text string, sentiment Sentiment, lex config.Lexicon) TextFeatureSet {
	cleaned := CleanText(text)
	words := strings.Fields(cleaned)

	avgLen := 0.0
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += utf8.RuneCountInString(w)
		}
		avgLen = float64(total) / float64(len(words))
	}

	return TextFeatureSet{
		WordCount:             len(words),
		AvgWordLength:         avgLen,
		PositiveCount:         countTerms(cleaned, lex.PositiveIndicators),
		NegativeCount:         countTerms(cleaned, lex.NegativeIndicators),
		ProfessionalCount:     countTerms(cleaned, lex.ProfessionalTerms),
		FillerCount:           countTerms(cleaned, lex.FillerWords),
		SentimentPolarity:     sentiment.Polarity,
		SentimentSubjectivity: sentiment.Subjectivity,
	}
}

// countTerms returns how many list terms occur as a substring anywhere in the
// text. Matching is deliberately not token-boundary-aware.
func countTerms(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

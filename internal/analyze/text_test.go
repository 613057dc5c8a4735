package analyze

import (
	"math"
	"testing"

	"speechgrade/internal/config"
)

func TestTextFeatures_Empty(t *testing.T) {
	f := TextFeatures("", Sentiment{}, config.DefaultLexicon())

	if f.WordCount != 0 {
		t.Errorf("word count = %d, want 0", f.WordCount)
	}
	if f.AvgWordLength != 0 {
		t.Errorf("avg word length = %f, want 0", f.AvgWordLength)
	}
	if f.PositiveCount != 0 || f.NegativeCount != 0 || f.ProfessionalCount != 0 || f.FillerCount != 0 {
		t.Errorf("indicator counts should all be 0, got %+v", f)
	}
}

func TestTextFeatures_Scenario(t *testing.T) {
	text := "I implemented a solution and achieved great results specifically through collaboration"
	f := TextFeatures(text, Sentiment{Polarity: 0.4, Subjectivity: 0.5}, config.DefaultLexicon())

	if f.WordCount != 11 {
		t.Errorf("word count = %d, want 11", f.WordCount)
	}
	// "implemented", "achieved", "specifically".
	if f.PositiveCount != 3 {
		t.Errorf("positive count = %d, want 3", f.PositiveCount)
	}
	// "solution".
	if f.ProfessionalCount != 1 {
		t.Errorf("professional count = %d, want 1", f.ProfessionalCount)
	}
	// "so" matches inside "solution" — substring matching is intentional.
	if f.FillerCount != 1 {
		t.Errorf("filler count = %d, want 1", f.FillerCount)
	}
	if f.NegativeCount != 0 {
		t.Errorf("negative count = %d, want 0", f.NegativeCount)
	}
	if f.SentimentPolarity != 0.4 {
		t.Errorf("polarity = %f, want 0.4", f.SentimentPolarity)
	}
}

func TestTextFeatures_SubstringMatching(t *testing.T) {
	// "like" matches inside "unlikely" in both the negative and filler lists.
	f := TextFeatures("unlikely", Sentiment{}, config.DefaultLexicon())
	if f.NegativeCount != 1 {
		t.Errorf("negative count = %d, want 1", f.NegativeCount)
	}
	if f.FillerCount != 1 {
		t.Errorf("filler count = %d, want 1", f.FillerCount)
	}
}

func TestTextFeatures_CaseInsensitive(t *testing.T) {
	f := TextFeatures("I IMPLEMENTED the STRATEGY", Sentiment{}, config.DefaultLexicon())
	if f.PositiveCount != 1 {
		t.Errorf("positive count = %d, want 1", f.PositiveCount)
	}
	if f.ProfessionalCount != 1 {
		t.Errorf("professional count = %d, want 1", f.ProfessionalCount)
	}
}

func TestTextFeatures_AvgWordLength(t *testing.T) {
	f := TextFeatures("ab cdef", Sentiment{}, config.DefaultLexicon())
	if math.Abs(f.AvgWordLength-3) > 1e-9 {
		t.Errorf("avg word length = %f, want 3", f.AvgWordLength)
	}
}

func TestTextFeatures_TermAppearsOncePerList(t *testing.T) {
	// Repeats of one term count once: matching is per list term, not per
	// occurrence.
	f := TextFeatures("um um um um", Sentiment{}, config.DefaultLexicon())
	if f.FillerCount != 1 {
		t.Errorf("filler count = %d, want 1", f.FillerCount)
	}
}

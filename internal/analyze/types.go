package analyze

import "context"

// AudioSignal is a decoded mono waveform. Produced by the decode capability;
// multi-channel sources are down-mixed before this boundary.
type AudioSignal struct {
	Samples    []float64 // amplitudes in [-1, 1]
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s AudioSignal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// VolumeStats summarizes the frame-wise RMS energy sequence. All fields are
// 0 for a silent or empty signal.
type VolumeStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// AudioFeatureSet holds the aggregate audio features fed to the scorer.
type AudioFeatureSet struct {
	Volume           VolumeStats `json:"volume_stats"`
	SpeakingPaceWPM  float64     `json:"speaking_pace"`
	ClarityScore     float64     `json:"clarity_score"`
	ZeroCrossingRate float64     `json:"zero_crossing_rate"`
	TempoBPM         float64     `json:"tempo_bpm"`
}

// TextFeatureSet holds lexical indicator counts plus externally supplied
// sentiment.
type TextFeatureSet struct {
	WordCount             int     `json:"word_count"`
	AvgWordLength         float64 `json:"avg_word_length"`
	PositiveCount         int     `json:"positive_indicators"`
	NegativeCount         int     `json:"negative_indicators"`
	ProfessionalCount     int     `json:"professional_terms"`
	FillerCount           int     `json:"filler_words"`
	SentimentPolarity     float64 `json:"sentiment_polarity"`
	SentimentSubjectivity float64 `json:"sentiment_subjectivity"`
}

// Category classifies a feedback item.
type Category string

const (
	CategoryPositive    Category = "positive"
	CategoryNeutral     Category = "neutral"
	CategoryNegative    Category = "negative"
	CategoryImprovement Category = "improvement"
)

// FeedbackItem is one categorized, user-facing message.
type FeedbackItem struct {
	Category Category `json:"type"`
	Message  string   `json:"message"`
}

// TextAnalysis is the result of scoring one transcript.
type TextAnalysis struct {
	Score    float64        `json:"quality_score"`
	Features TextFeatureSet `json:"metrics"`
	Feedback []FeedbackItem `json:"feedback"`
}

// AudioAnalysis is the result of scoring one audio signal.
type AudioAnalysis struct {
	Score    float64         `json:"audio_quality_score"`
	Features AudioFeatureSet `json:"metrics"`
	Feedback []FeedbackItem  `json:"feedback"`
}

// Sentiment is the output of the external sentiment capability.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`     // [-1, 1]
	Subjectivity float64 `json:"subjectivity"` // [0, 1]
}

// SentimentAnalyzer scores the emotional valence of text. Implementations
// must be total: when unable to score (empty text, transport failure) they
// return the neutral zero value rather than an error.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) Sentiment
}

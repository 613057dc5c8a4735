// Package analyze implements the response quality scoring engine: feature
// aggregation over a decoded waveform, lexical feature extraction from a
// transcript, heuristic scoring bounded to [0, 100], and rule-based feedback
// generation. Every analysis is a side-effect-free computation over immutable
// inputs; the Analyzer holds only configuration and may be shared across
// goroutines.
package analyze

import (
	"context"

	"speechgrade/internal/config"
)

// Analyzer fuses features into quality scores and feedback. Construct with
// New; the zero value is not usable.
type Analyzer struct {
	settings  *config.Settings
	sentiment SentimentAnalyzer
}

// New returns an Analyzer using the given settings and sentiment capability.
// A nil sentiment analyzer falls back to neutral scores.
func New(settings *config.Settings, sentiment SentimentAnalyzer) *Analyzer {
	if settings == nil {
		settings = config.Default()
	}
	if sentiment == nil {
		sentiment = neutralSentiment{}
	}
	return &Analyzer{settings: settings, sentiment: sentiment}
}

// AnalyzeText scores a transcript. It never fails: an empty transcript
// produces zeroed features and a score computed from them.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) TextAnalysis {
	cleaned := CleanText(text)
	sentiment := a.sentiment.Analyze(ctx, cleaned)

	features := TextFeatures(cleaned, sentiment, a.settings.Lexicon)
	score := ScoreText(features, a.settings.Scoring)

	return TextAnalysis{
		Score:    score,
		Features: features,
		Feedback: TextFeedback(score, features, a.settings.Scoring),
	}
}

// AnalyzeSignal scores a decoded audio signal. Degenerate signals (empty,
// silent) score against zeroed statistics rather than failing.
func (a *Analyzer) AnalyzeSignal(sig AudioSignal) AudioAnalysis {
	features := AudioFeatures(sig, a.settings.Analysis)
	score := ScoreAudio(features, a.settings.Scoring)

	return AudioAnalysis{
		Score:    score,
		Features: features,
		Feedback: AudioFeedback(score, features, a.settings.Scoring),
	}
}

// CombineScores is the overall score when both tracks are present: their
// simple mean.
func CombineScores(audio, text float64) float64 {
	return (audio + text) / 2
}

type neutralSentiment struct{}

func (neutralSentiment) Analyze(context.Context, string) Sentiment { return Sentiment{} }

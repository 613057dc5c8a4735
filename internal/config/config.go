package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalysisSettings holds the signal-processing parameters.
type AnalysisSettings struct {
	SampleRate       int     `yaml:"sample_rate"`        // target rate for decoded audio
	FrameLength      int     `yaml:"frame_length"`       // RMS/spectral window in samples
	HopLength        int     `yaml:"hop_length"`         // frame hop in samples
	TopDB            float64 `yaml:"top_db"`             // silence threshold below peak energy
	TempoMinBPM      float64 `yaml:"tempo_min_bpm"`      // lower bound of tempo search
	TempoMaxBPM      float64 `yaml:"tempo_max_bpm"`      // upper bound of tempo search
	TempoFallbackBPM float64 `yaml:"tempo_fallback_bpm"` // substituted when no periodicity is found
	PaceAdjustment   float64 `yaml:"pace_adjustment"`    // tempo-to-word-rate factor, uncalibrated proxy
}

// ScoringSettings holds the quality-model thresholds and weights.
type ScoringSettings struct {
	BaseScore float64 `yaml:"base_score"`

	// Text scoring.
	PositiveWeight     float64 `yaml:"positive_weight"`
	NegativeWeight     float64 `yaml:"negative_weight"`
	ProfessionalWeight float64 `yaml:"professional_weight"`
	FillerWeight       float64 `yaml:"filler_weight"`
	SentimentWeight    float64 `yaml:"sentiment_weight"`
	MinWords           int     `yaml:"min_words"`
	MaxWords           int     `yaml:"max_words"`
	ShortWordPenalty   float64 `yaml:"short_word_penalty"` // per word under MinWords
	LongWordPenalty    float64 `yaml:"long_word_penalty"`  // per word over MaxWords

	// Audio scoring.
	VolumeStdLow      float64 `yaml:"volume_std_low"`  // below this: consistency bonus
	VolumeStdHigh     float64 `yaml:"volume_std_high"` // above this: consistency penalty
	VolumeBonus       float64 `yaml:"volume_bonus"`
	VolumePenalty     float64 `yaml:"volume_penalty"`
	PaceIdealMin      float64 `yaml:"pace_ideal_min"` // WPM
	PaceIdealMax      float64 `yaml:"pace_ideal_max"` // WPM
	PaceCenter        float64 `yaml:"pace_center"`    // WPM
	PaceBonus         float64 `yaml:"pace_bonus"`
	PacePenaltyPerWPM float64 `yaml:"pace_penalty_per_wpm"`
	ClarityWeight     float64 `yaml:"clarity_weight"`

	// Feedback thresholds.
	TierPositive    float64 `yaml:"tier_positive"` // score at or above: positive tier
	TierNeutral     float64 `yaml:"tier_neutral"`  // score at or above: neutral tier
	FillerLimit     int     `yaml:"filler_limit"`
	ProfessionalMin int     `yaml:"professional_min"`
	VolumeMeanLow   float64 `yaml:"volume_mean_low"`
	VolumeMeanHigh  float64 `yaml:"volume_mean_high"`
	ClarityLow      float64 `yaml:"clarity_low"`
}

// Settings is the full immutable configuration injected into the analyzer.
type Settings struct {
	Analysis AnalysisSettings `yaml:"analysis"`
	Scoring  ScoringSettings  `yaml:"scoring"`
	Lexicon  Lexicon          `yaml:"lexicon"`
}

// Default returns the tuned defaults. Frame and hop sizes follow the common
// 2048/512 analysis windowing; pace and scoring constants are the tuned
// heuristic model.
func Default() *Settings {
	return &Settings{
		Analysis: AnalysisSettings{
			SampleRate:       22050,
			FrameLength:      2048,
			HopLength:        512,
			TopDB:            20,
			TempoMinBPM:      30,
			TempoMaxBPM:      240,
			TempoFallbackBPM: 120,
			PaceAdjustment:   1.2,
		},
		Scoring: ScoringSettings{
			BaseScore: 70,

			PositiveWeight:     2,
			NegativeWeight:     2,
			ProfessionalWeight: 2,
			FillerWeight:       3,
			SentimentWeight:    5,
			MinWords:           50,
			MaxWords:           300,
			ShortWordPenalty:   0.5,
			LongWordPenalty:    0.2,

			VolumeStdLow:      0.1,
			VolumeStdHigh:     0.3,
			VolumeBonus:       10,
			VolumePenalty:     10,
			PaceIdealMin:      120,
			PaceIdealMax:      160,
			PaceCenter:        140,
			PaceBonus:         15,
			PacePenaltyPerWPM: 0.1,
			ClarityWeight:     20,

			TierPositive:    80,
			TierNeutral:     60,
			FillerLimit:     5,
			ProfessionalMin: 2,
			VolumeMeanLow:   0.1,
			VolumeMeanHigh:  0.8,
			ClarityLow:      0.5,
		},
		Lexicon: DefaultLexicon(),
	}
}

// Load returns the defaults overlaid with values from a YAML tuning file.
func Load(path string) (*Settings, error) {
	s := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

package analyze

import (
	"math"
	"math/rand"
	"testing"

	"speechgrade/internal/config"
)

func scoring() config.ScoringSettings {
	return config.Default().Scoring
}

func TestScoreText_Scenario(t *testing.T) {
	// 70 base + 3 positive*2 + 1 professional*2 - 1 filler*3
	// - (50-11)*0.5 short penalty + 0.4 polarity*5 = 57.5
	f := TextFeatureSet{
		WordCount:         11,
		PositiveCount:     3,
		ProfessionalCount: 1,
		FillerCount:       1,
		SentimentPolarity: 0.4,
	}
	if score := ScoreText(f, scoring()); math.Abs(score-57.5) > 1e-9 {
		t.Errorf("score = %f, want 57.5", score)
	}
}

func TestScoreText_WordCountBoundaries(t *testing.T) {
	cases := []struct {
		words int
		want  float64
	}{
		{50, 70},   // exactly at the lower bound: no penalty
		{49, 69.5}, // one under: -0.5
		{300, 70},  // exactly at the upper bound: no penalty
		{301, 69.8}, // one over: -0.2
		{175, 70},
	}
	for _, c := range cases {
		f := TextFeatureSet{WordCount: c.words}
		if score := ScoreText(f, scoring()); math.Abs(score-c.want) > 1e-9 {
			t.Errorf("words=%d: score = %f, want %f", c.words, score, c.want)
		}
	}
}

func TestScoreText_EmptyTranscript(t *testing.T) {
	// word_count 0: 70 - 50*0.5 = 45, computed without raising.
	if score := ScoreText(TextFeatureSet{}, scoring()); math.Abs(score-45) > 1e-9 {
		t.Errorf("score = %f, want 45", score)
	}
}

func TestScoreAudio_Scenario(t *testing.T) {
	// 70 + 10 volume + 15 pace + 0.8*20 clarity = 111, clamped to 100.
	f := AudioFeatureSet{
		Volume:          VolumeStats{Std: 0.05},
		SpeakingPaceWPM: 140,
		ClarityScore:    0.8,
	}
	if score := ScoreAudio(f, scoring()); score != 100 {
		t.Errorf("score = %f, want 100 (clamped)", score)
	}
}

func TestScoreAudio_PaceDeviation(t *testing.T) {
	// Pace 100 WPM: outside [120,160], |100-140|*0.1 = 4 penalty.
	// Volume std 0.2 is between the bonus and penalty thresholds.
	f := AudioFeatureSet{
		Volume:          VolumeStats{Std: 0.2},
		SpeakingPaceWPM: 100,
	}
	if score := ScoreAudio(f, scoring()); math.Abs(score-66) > 1e-9 {
		t.Errorf("score = %f, want 66", score)
	}
}

func TestScoreAudio_PaceBandEdges(t *testing.T) {
	s := scoring()
	for _, pace := range []float64{120, 160} {
		f := AudioFeatureSet{Volume: VolumeStats{Std: 0.2}, SpeakingPaceWPM: pace}
		if score := ScoreAudio(f, s); math.Abs(score-85) > 1e-9 {
			t.Errorf("pace=%v: score = %f, want 85 (bonus applies at band edge)", pace, score)
		}
	}
}

func TestScores_AlwaysBounded(t *testing.T) {
	// Clamping invariant: extreme feature values never escape [0, 100].
	s := scoring()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		tf := TextFeatureSet{
			WordCount:         rng.Intn(10000),
			PositiveCount:     rng.Intn(1000),
			NegativeCount:     rng.Intn(1000),
			ProfessionalCount: rng.Intn(1000),
			FillerCount:       rng.Intn(1000),
			SentimentPolarity: rng.Float64()*2 - 1,
		}
		if score := ScoreText(tf, s); score < 0 || score > 100 {
			t.Fatalf("text score out of bounds: %f for %+v", score, tf)
		}

		af := AudioFeatureSet{
			Volume:          VolumeStats{Mean: rng.Float64() * 2, Std: rng.Float64() * 2},
			SpeakingPaceWPM: rng.Float64() * 1000,
			ClarityScore:    rng.Float64(),
		}
		if score := ScoreAudio(af, s); score < 0 || score > 100 {
			t.Fatalf("audio score out of bounds: %f for %+v", score, af)
		}
	}

	// Pathological filler count still clamps to zero.
	if score := ScoreText(TextFeatureSet{WordCount: 100, FillerCount: 1000}, s); score != 0 {
		t.Errorf("extreme filler count should clamp to 0, got %f", score)
	}
}

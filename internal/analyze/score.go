package analyze

import (
	"math"

	"speechgrade/internal/config"
)

// ScoreText maps a text feature set to a quality score in [0, 100]. Fillers
// are penalized more than positive terms reward: hedging language signals a
// weak response more strongly than buzzwords signal a strong one. Length
// penalties are linear in the overage beyond the ideal word band.
func ScoreText(f TextFeatureSet, s config.ScoringSettings) float64 {
	score := s.BaseScore

	score += float64(f.PositiveCount) * s.PositiveWeight
	score -= float64(f.NegativeCount) * s.NegativeWeight
	score += float64(f.ProfessionalCount) * s.ProfessionalWeight
	score -= float64(f.FillerCount) * s.FillerWeight

	if f.WordCount < s.MinWords {
		score -= float64(s.MinWords-f.WordCount) * s.ShortWordPenalty
	} else if f.WordCount > s.MaxWords {
		score -= float64(f.WordCount-s.MaxWords) * s.LongWordPenalty
	}

	score += f.SentimentPolarity * s.SentimentWeight

	return clampScore(score)
}

// ScoreAudio maps an audio feature set to a quality score in [0, 100]. The
// pace deviation penalty is linear and symmetric around the center WPM,
// independent of the bonus-band check.
func ScoreAudio(f AudioFeatureSet, s config.ScoringSettings) float64 {
	score := s.BaseScore

	if f.Volume.Std < s.VolumeStdLow {
		score += s.VolumeBonus
	} else if f.Volume.Std > s.VolumeStdHigh {
		score -= s.VolumePenalty
	}

	if f.SpeakingPaceWPM >= s.PaceIdealMin && f.SpeakingPaceWPM <= s.PaceIdealMax {
		score += s.PaceBonus
	} else {
		score -= math.Abs(f.SpeakingPaceWPM-s.PaceCenter) * s.PacePenaltyPerWPM
	}

	score += f.ClarityScore * s.ClarityWeight

	return clampScore(score)
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

package analyze

import (
	"fmt"

	"speechgrade/internal/config"
)

// Feedback rules are independent predicates evaluated in order; any number
// may fire, so the list is cumulative rather than exclusive.

// TextFeedback maps a text score and feature set to categorized messages.
func TextFeedback(score float64, f TextFeatureSet, s config.ScoringSettings) []FeedbackItem {
	items := []FeedbackItem{scoreTier(score, s,
		"Excellent response! Your answer is well-structured and professional.",
		"Good response, but there's room for improvement.",
		"Your response needs significant improvement.",
	)}

	if f.FillerCount > s.FillerLimit {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  fmt.Sprintf("Try to reduce filler words (used %d times).", f.FillerCount),
		})
	}
	if f.ProfessionalCount < s.ProfessionalMin {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Consider using more professional terminology.",
		})
	}
	if f.WordCount < s.MinWords {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Your response is quite brief. Consider expanding with more details.",
		})
	} else if f.WordCount > s.MaxWords {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Your response is quite long. Try to be more concise.",
		})
	}

	return items
}

// AudioFeedback maps an audio score and feature set to categorized messages.
func AudioFeedback(score float64, f AudioFeatureSet, s config.ScoringSettings) []FeedbackItem {
	items := []FeedbackItem{scoreTier(score, s,
		"Strong delivery with clear and confident speech.",
		"Solid delivery, but there's room for improvement.",
		"Your delivery needs significant improvement.",
	)}

	if f.Volume.Mean < s.VolumeMeanLow {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Try to speak louder for better clarity.",
		})
	} else if f.Volume.Mean > s.VolumeMeanHigh {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Consider speaking a bit softer.",
		})
	}
	if f.Volume.Std > s.VolumeStdHigh {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Try to maintain more consistent volume levels.",
		})
	}
	if f.SpeakingPaceWPM < s.PaceIdealMin {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Try to speak a bit faster to maintain engagement.",
		})
	} else if f.SpeakingPaceWPM > s.PaceIdealMax {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Consider slowing down for better clarity.",
		})
	}
	if f.ClarityScore < s.ClarityLow {
		items = append(items, FeedbackItem{
			Category: CategoryImprovement,
			Message:  "Focus on speaking more clearly and enunciating words.",
		})
	}

	return items
}

func scoreTier(score float64, s config.ScoringSettings, positive, neutral, negative string) FeedbackItem {
	switch {
	case score >= s.TierPositive:
		return FeedbackItem{Category: CategoryPositive, Message: positive}
	case score >= s.TierNeutral:
		return FeedbackItem{Category: CategoryNeutral, Message: neutral}
	default:
		return FeedbackItem{Category: CategoryNegative, Message: negative}
	}
}

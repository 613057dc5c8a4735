// Package sentiment provides implementations of the sentiment capability the
// analysis core consumes. The capability contract is total: every
// implementation returns a neutral score when it cannot produce one, so the
// core never sees a sentiment error.
package sentiment

import (
	"context"

	"speechgrade/internal/analyze"
)

// Neutral always returns the neutral sentiment. It is the fallback when no
// external analyzer is configured.
type Neutral struct{}

func (Neutral) Analyze(context.Context, string) analyze.Sentiment {
	return analyze.Sentiment{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"speechgrade/internal/analyze"
)

// Service calls an external sentiment HTTP service. Any transport or decode
// failure degrades to the neutral score with a warning; the analysis still
// completes.
type Service struct {
	url string
	c   *http.Client
}

// NewService returns a Service posting to url + "/analyze".
func NewService(url string) *Service {
	return &Service{
		url: strings.TrimSuffix(url, "/"),
		c:   &http.Client{Timeout: 30 * time.Second},
	}
}

type serviceRequest struct {
	Text string `json:"text"`
}

type serviceResponse struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

func (s *Service) Analyze(ctx context.Context, text string) analyze.Sentiment {
	if strings.TrimSpace(text) == "" {
		return analyze.Sentiment{}
	}

	payload, _ := json.Marshal(serviceRequest{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/analyze", bytes.NewReader(payload))
	if err != nil {
		slog.Warn("sentiment request build failed", "err", err)
		return analyze.Sentiment{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.c.Do(req)
	if err != nil {
		slog.Warn("sentiment service unreachable", "err", err)
		return analyze.Sentiment{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("sentiment service error", "status", resp.Status)
		return analyze.Sentiment{}
	}

	var out serviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Warn("sentiment decode failed", "err", err)
		return analyze.Sentiment{}
	}

	return analyze.Sentiment{
		Polarity:     clamp(out.Polarity, -1, 1),
		Subjectivity: clamp(out.Subjectivity, 0, 1),
	}
}

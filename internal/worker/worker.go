// Package worker orchestrates analysis runs: decoding, transcript
// acquisition, scoring, and report persistence. All I/O happens here, at the
// boundary, before the scoring core receives its inputs.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"speechgrade/internal/analyze"
	"speechgrade/internal/config"
	"speechgrade/internal/decode"
	"speechgrade/internal/sentiment"
	"speechgrade/internal/transcribe"
)

// ErrEmptyTranscript reports a transcript with no content. The scoring core
// is never invoked on one.
var ErrEmptyTranscript = errors.New("empty transcript")

// Transcriber produces a transcript for a recording.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Options configures a worker run.
type Options struct {
	Inputs          []string
	TranscriptPath  string // explicit transcript file, single input only
	Text            string // text-only analysis, no audio
	OutputDir       string
	SentimentURL    string
	OpenAIKey       string
	NoAsync         bool
	MaxConcurrent   int
	MaxRetries      int
	RateLimitPerMin int
	Settings        *config.Settings
}

// Report is one persisted analysis result.
type Report struct {
	ID          string                 `json:"report_id"`
	Input       string                 `json:"input,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
	DurationSec float64                `json:"duration_seconds,omitempty"`
	Audio       *analyze.AudioAnalysis `json:"audio_analysis,omitempty"`
	Text        *analyze.TextAnalysis  `json:"transcript_analysis,omitempty"`
	Overall     *float64               `json:"overall_score,omitempty"`
}

// Run is the top-level orchestrator.
func Run(ctx context.Context, opts Options) error {
	analyzer := analyze.New(opts.Settings, newSentiment(opts))

	if opts.Text != "" {
		return runTextOnly(ctx, analyzer, opts)
	}
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("no input files")
	}

	var tr Transcriber
	if opts.OpenAIKey != "" {
		tr = transcribe.NewClient(opts.OpenAIKey)
	}

	limiter := newLimiter(opts.RateLimitPerMin)

	if opts.NoAsync || len(opts.Inputs) == 1 {
		return runSequential(ctx, analyzer, tr, limiter, opts)
	}
	return runConcurrent(ctx, analyzer, tr, limiter, opts)
}

// newSentiment picks the sentiment capability: an HTTP service when a URL is
// configured, the OpenAI analyzer when only a key is, neutral otherwise.
func newSentiment(opts Options) analyze.SentimentAnalyzer {
	switch {
	case opts.SentimentURL != "":
		return sentiment.NewService(opts.SentimentURL)
	case opts.OpenAIKey != "":
		return sentiment.NewOpenAI(opts.OpenAIKey)
	default:
		slog.Debug("no sentiment backend configured, using neutral scores")
		return sentiment.Neutral{}
	}
}

func newLimiter(perMin int) *rate.Limiter {
	if perMin <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(float64(perMin)/60.0), 1)
}

func runTextOnly(ctx context.Context, analyzer *analyze.Analyzer, opts Options) error {
	if strings.TrimSpace(opts.Text) == "" {
		return ErrEmptyTranscript
	}

	result := analyzer.AnalyzeText(ctx, opts.Text)
	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Text:        &result,
	}

	if opts.OutputDir == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	path := filepath.Join(opts.OutputDir, "response_analysis_"+report.ID+".json")
	if err := writeReport(path, report); err != nil {
		return err
	}
	slog.Info("report saved", "path", path, "score", result.Score)
	return nil
}

// processFile analyzes one recording: decode, score the audio track, obtain
// a transcript (explicit file, sibling .txt, or transcription backend) and
// score the text track, then persist the combined report.
func processFile(ctx context.Context, analyzer *analyze.Analyzer, tr Transcriber, limiter *rate.Limiter, path string, opts Options) (*Report, error) {
	slog.Info("processing file", "input", filepath.Base(path))
	decode.LogMediaInfo(ctx, path)

	sig, err := decode.Decode(ctx, path, opts.Settings.Analysis.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	audioResult := analyzer.AnalyzeSignal(sig)

	report := &Report{
		ID:          uuid.NewString(),
		Input:       path,
		GeneratedAt: time.Now().UTC(),
		DurationSec: sig.Duration(),
		Audio:       &audioResult,
	}

	text, err := obtainTranscript(ctx, tr, limiter, path, opts)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) != "" {
		textResult := analyzer.AnalyzeText(ctx, text)
		report.Text = &textResult
		overall := analyze.CombineScores(audioResult.Score, textResult.Score)
		report.Overall = &overall
	} else {
		slog.Info("no transcript available, scoring audio track only", "input", filepath.Base(path))
	}

	outPath := reportPath(path, opts)
	if err := writeReport(outPath, report); err != nil {
		return nil, err
	}
	slog.Info("report saved", "path", outPath)
	return report, nil
}

// obtainTranscript resolves the transcript for a recording. A missing
// transcript is not an error: the audio track still scores on its own.
func obtainTranscript(ctx context.Context, tr Transcriber, limiter *rate.Limiter, audioPath string, opts Options) (string, error) {
	if opts.TranscriptPath != "" {
		data, err := os.ReadFile(opts.TranscriptPath)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(data), nil
	}

	// Sibling transcript file next to the recording.
	sibling := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
	if data, err := os.ReadFile(sibling); err == nil {
		slog.Debug("using sibling transcript", "path", sibling)
		return string(data), nil
	}

	if tr == nil {
		return "", nil
	}

	var text string
	err := withRetry(ctx, opts.MaxRetries, limiter, func() error {
		t, err := tr.Transcribe(ctx, audioPath)
		if err != nil {
			return err
		}
		text = t
		return nil
	})
	if err != nil {
		// Transcription is best-effort; keep the audio-only result.
		slog.Warn("transcription failed, continuing without text track", "err", err)
		return "", nil
	}
	return text, nil
}

// withRetry runs op up to attempts times with exponential backoff, waiting on
// the shared rate limiter before each try.
func withRetry(ctx context.Context, attempts int, limiter *rate.Limiter, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		if err := op(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < attempts-1 {
			backoff := 1 << uint(attempt) // 1s, 2s, 4s...
			slog.Warn("call failed, retrying",
				"attempt", attempt+1,
				"backoff_sec", backoff,
				"err", lastErr)

			timer := time.NewTimer(time.Duration(backoff) * time.Second)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return lastErr
}

func reportPath(audioPath string, opts Options) string {
	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(audioPath)
	}
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	return filepath.Join(dir, base+"_analysis.json")
}

func writeReport(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

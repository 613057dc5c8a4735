package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"speechgrade/internal/config"
	"speechgrade/internal/decode"
	"speechgrade/internal/worker"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [recording...]",
	Short: "Score recordings and/or a transcript for response quality",
	Long: `Analyze one or more recorded answers. Each recording is decoded, scored on
its audio track (volume, clarity, speaking pace) and, when a transcript is
available, on its text track (indicator terms, fillers, length, sentiment).
A transcript is taken from --transcript, from a sibling .txt file, or from
the transcription backend when an API key is configured.

With --text and no recordings, only the transcript is scored.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

var (
	transcriptPath string
	inlineText     string
	outputDir      string
	configPath     string
	sentimentURL   string
	noAsync        bool
	maxConcurrent  int
	maxRetries     int
	rateLimit      int

	// Analysis tuning flags.
	sampleRate int
	topDB      float64
)

func init() {
	defaults := config.Default()

	analyzeCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "transcript file for a single recording")
	analyzeCmd.Flags().StringVar(&inlineText, "text", "", "analyze this transcript text instead of a recording")
	analyzeCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for JSON reports (default: next to each input)")
	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML tuning file overriding the built-in thresholds")
	analyzeCmd.Flags().StringVar(&sentimentURL, "sentiment-url", os.Getenv("SENTIMENT_URL"), "sentiment service base URL")
	analyzeCmd.Flags().BoolVar(&noAsync, "no-async", false, "disable concurrent batch processing")
	analyzeCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", 3, "max concurrent analyses")
	analyzeCmd.Flags().IntVar(&maxRetries, "max-retries", 3, "max retries per external API call")
	analyzeCmd.Flags().IntVar(&rateLimit, "rate-limit", 30, "external API requests per minute")

	// Analysis tuning flags.
	analyzeCmd.Flags().IntVar(&sampleRate, "sample-rate", defaults.Analysis.SampleRate, "analysis sample rate in Hz")
	analyzeCmd.Flags().Float64Var(&topDB, "top-db", defaults.Analysis.TopDB, "silence threshold below peak energy, in dB")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && inlineText == "" {
		return fmt.Errorf("provide at least one recording or --text")
	}
	if inlineText != "" && len(args) > 0 {
		return fmt.Errorf("--text cannot be combined with recordings; analyze one or the other")
	}
	if transcriptPath != "" && len(args) > 1 {
		return fmt.Errorf("--transcript applies to a single recording")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		absPath, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}

		ext := strings.ToLower(filepath.Ext(absPath))
		if !decode.IsAudioExtension(ext) {
			return fmt.Errorf("unsupported file type: %s", ext)
		}
		inputs = append(inputs, absPath)
	}

	if len(inputs) > 0 && !decode.Available() {
		return fmt.Errorf("ffmpeg is required to decode recordings but was not found on PATH")
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		Inputs:          inputs,
		TranscriptPath:  transcriptPath,
		Text:            inlineText,
		OutputDir:       outputDir,
		SentimentURL:    sentimentURL,
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		NoAsync:         noAsync,
		MaxConcurrent:   maxConcurrent,
		MaxRetries:      maxRetries,
		RateLimitPerMin: rateLimit,
		Settings:        settings,
	}

	return worker.Run(ctx, opts)
}

// resolveSettings builds the analysis settings: defaults, overlaid with the
// tuning file, overlaid with any flag the user explicitly set. Flags left at
// their defaults never override the file.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if cmd.Flags().Changed("sample-rate") {
		settings.Analysis.SampleRate = sampleRate
	}
	if cmd.Flags().Changed("top-db") {
		settings.Analysis.TopDB = topDB
	}
	return settings, nil
}

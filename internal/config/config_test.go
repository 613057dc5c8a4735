package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.Analysis.FrameLength != 2048 || s.Analysis.HopLength != 512 {
		t.Errorf("unexpected framing defaults: %+v", s.Analysis)
	}
	if s.Analysis.TopDB != 20 {
		t.Errorf("top_db = %v, want 20", s.Analysis.TopDB)
	}
	if s.Analysis.TempoFallbackBPM != 120 {
		t.Errorf("tempo fallback = %v, want 120", s.Analysis.TempoFallbackBPM)
	}
	if s.Scoring.BaseScore != 70 {
		t.Errorf("base score = %v, want 70", s.Scoring.BaseScore)
	}
	if s.Scoring.MinWords != 50 || s.Scoring.MaxWords != 300 {
		t.Errorf("word band = [%d, %d], want [50, 300]", s.Scoring.MinWords, s.Scoring.MaxWords)
	}
	if len(s.Lexicon.FillerWords) == 0 || len(s.Lexicon.PositiveIndicators) == 0 {
		t.Error("lexicon must not be empty")
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := "scoring:\n  base_score: 60\nanalysis:\n  top_db: 30\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scoring.BaseScore != 60 {
		t.Errorf("base score = %v, want overridden 60", s.Scoring.BaseScore)
	}
	if s.Analysis.TopDB != 30 {
		t.Errorf("top_db = %v, want overridden 30", s.Analysis.TopDB)
	}
	// Untouched values keep their defaults.
	if s.Scoring.MinWords != 50 {
		t.Errorf("min words = %d, want default 50", s.Scoring.MinWords)
	}
	if len(s.Lexicon.FillerWords) == 0 {
		t.Error("lexicon should keep defaults when absent from the file")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

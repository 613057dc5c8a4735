// Package transcribe wraps the Whisper transcription boundary. Used when a
// recording arrives without a transcript; the scoring core never performs
// speech recognition itself.
package transcribe

import (
	"context"
	"fmt"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// Client transcribes audio files through the OpenAI audio API.
type Client struct {
	c *openai.Client
}

// NewClient returns a transcription client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{c: openai.NewClient(apiKey)}
}

// Transcribe uploads the file at path and returns its transcript text.
func (cl *Client) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := cl.c.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", filepath.Base(path), err)
	}
	return resp.Text, nil
}

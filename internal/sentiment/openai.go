package sentiment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"speechgrade/internal/analyze"
)

const sentimentPrompt = `You rate the sentiment of an interview answer. Respond with only a JSON object
of the form {"polarity": <float in [-1,1]>, "subjectivity": <float in [0,1]>}.
Polarity is the emotional valence of the text; subjectivity is how
opinion-based rather than factual it is.`

// OpenAI scores sentiment with a chat-completion call. Like every sentiment
// implementation it is total: failures degrade to neutral.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns an analyzer using the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (o *OpenAI) Analyze(ctx context.Context, text string) analyze.Sentiment {
	if strings.TrimSpace(text) == "" {
		return analyze.Sentiment{}
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		slog.Warn("sentiment completion failed", "err", err)
		return analyze.Sentiment{}
	}
	if len(resp.Choices) == 0 {
		return analyze.Sentiment{}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Tolerate fenced output.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out struct {
		Polarity     float64 `json:"polarity"`
		Subjectivity float64 `json:"subjectivity"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		slog.Warn("sentiment response parse failed", "err", err)
		return analyze.Sentiment{}
	}

	return analyze.Sentiment{
		Polarity:     clamp(out.Polarity, -1, 1),
		Subjectivity: clamp(out.Subjectivity, 0, 1),
	}
}

package llmclient

import (
	"context"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/pkg/errors"

	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
)

// Client is the narrow contract to the text-completion service: one blocking
// call with a system and user message. No retries, no streaming.
type Client interface {
	Complete(ctx context.Context, systemMessage, userMessage string) (string, error)
}

type OpenAIClient struct {
	cfg    *config.Config
	client openai.Client
}

func NewClient(cfg *config.Config) Client {
	client := openai.NewClient(
		option.WithBaseURL(cfg.LLM.BaseURL),
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &OpenAIClient{
		cfg:    cfg,
		client: client,
	}
}

// Complete performs a single chat-completion call bounded by the configured
// timeout.
func (c *OpenAIClient) Complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	timeout := time.Duration(c.cfg.LLM.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.LLM.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemMessage),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(int64(c.cfg.LLM.MaxTokens)),
		Temperature: openai.Float(c.cfg.LLM.Temperature),
	})
	if err != nil {
		return "", errors.Wrap(err, "calling completion API")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("completion API returned an empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

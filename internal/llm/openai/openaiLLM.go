package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/pkg/logger_i"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

// GetOpenAIClient returns the shared OpenAI-backed provider, or nil when no
// API key is configured. The client is stateless and reentrant.
func GetOpenAIClient(modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is not configured")
			return
		}
		openaiClient = &llmClient{
			client:    openaisdk.NewClient(option.WithAPIKey(apikey)),
			modelName: modelName,
		}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *llmClient) Name() string {
	return "openai"
}

func (c *llmClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model: shared.ChatModel(c.modelName),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(req.System),
			openaisdk.UserMessage(req.Prompt),
		},
		MaxTokens:   openaisdk.Int(int64(req.MaxTokens)),
		Temperature: openaisdk.Float(req.Temperature),
	}
	if req.ForceJSON {
		params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openaisdk.Error
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.StatusCode == http.StatusTooManyRequests:
				return "", fmt.Errorf("%w: %s", llm.ErrRateLimited, apiErr.Error())
			case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
				return "", fmt.Errorf("%w: %s", llm.ErrInvalidRequest, apiErr.Error())
			}
		}
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

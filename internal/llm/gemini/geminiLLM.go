package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/cramcortex/backend/internal/llm"
	"github.com/cramcortex/backend/pkg/logger_i"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

// GetGeminiClient returns the shared Gemini-backed provider, or nil when the
// client could not be initialized.
func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
	go closeClient(ctx, geminiClient)
}

func (c *llmClient) Name() string {
	return "gemini"
}

func (c *llmClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	temperature := float32(req.Temperature)
	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.ForceJSON {
		contentConfig.ResponseMIMEType = "application/json"
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(req.Prompt), contentConfig)
	if err != nil {
		if s, ok := status.FromError(err); ok {
			switch s.Code() {
			case codes.ResourceExhausted:
				return "", fmt.Errorf("%w: %s", llm.ErrRateLimited, err.Error())
			case codes.InvalidArgument, codes.Unauthenticated, codes.PermissionDenied, codes.NotFound:
				return "", fmt.Errorf("%w: %s", llm.ErrInvalidRequest, err.Error())
			}
		}
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

func closeClient(ctx context.Context, llmc *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llmc.client = nil
	llmc.modelName = ""
}

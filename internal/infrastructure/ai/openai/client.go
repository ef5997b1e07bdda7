// Package openai provides the OpenAI-backed completion, transcription,
// and image generation collaborators
package openai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/infrastructure/config"
	"github.com/platewise/backend/internal/ports/outbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

const requestTimeout = 60 * time.Second

// Client implements the completion, image, and transcription ports
// using the OpenAI API
type Client struct {
	client             *openai.Client
	model              string
	transcriptionModel string
	imageModel         string
	temperature        float32
	maxTokens          int
	cache              outbound.CacheRepository
	cacheTTL           time.Duration
	logger             *zap.Logger
}

// NewClient creates a new OpenAI client. The cache is optional; pass
// nil to disable completion response caching.
func NewClient(cfg *config.Config, cache outbound.CacheRepository, logger *zap.Logger) *Client {
	clientConfig := openai.DefaultConfig(cfg.AI.APIKey)
	if cfg.AI.BaseURL != "" {
		clientConfig.BaseURL = cfg.AI.BaseURL
	}

	if !cfg.AI.EnableCache {
		cache = nil
	}

	return &Client{
		client:             openai.NewClientWithConfig(clientConfig),
		model:              cfg.AI.Model,
		transcriptionModel: cfg.AI.TranscriptionModel,
		imageModel:         cfg.AI.ImageModel,
		temperature:        float32(cfg.AI.Temperature),
		maxTokens:          cfg.AI.MaxTokens,
		cache:              cache,
		cacheTTL:           cfg.AI.CacheTTL,
		logger:             logger.Named("openai"),
	}
}

// PickDailyRecommendation asks the model to choose one recipe from the
// candidate pool described in the prompts
func (c *Client) PickDailyRecommendation(ctx context.Context, systemPrompt, userPrompt string) (*outbound.DailyPick, error) {
	content, err := c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONObject(content)
	if err != nil {
		return nil, apperrors.NewGenerationError(err)
	}

	var pick outbound.DailyPick
	if err := json.Unmarshal([]byte(payload), &pick); err != nil {
		return nil, apperrors.NewGenerationError(fmt.Errorf("malformed pick response: %w", err))
	}
	if pick.RecommendedRecipeID == "" {
		return nil, apperrors.NewGenerationError(fmt.Errorf("pick response missing recommended recipe id"))
	}

	return &pick, nil
}

// recipesEnvelope is the JSON contract for batch generation
type recipesEnvelope struct {
	Recipes []outbound.GeneratedRecipe `json:"recipes"`
}

// GenerateRecipes asks the model for count brand-new recipes
func (c *Client) GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string, count int) ([]outbound.GeneratedRecipe, error) {
	content, err := c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONObject(content)
	if err != nil {
		return nil, apperrors.NewGenerationError(err)
	}

	var envelope recipesEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, apperrors.NewGenerationError(fmt.Errorf("malformed recipes response: %w", err))
	}

	recipes := make([]outbound.GeneratedRecipe, 0, len(envelope.Recipes))
	for _, r := range envelope.Recipes {
		if r.Name == "" {
			continue
		}
		recipes = append(recipes, r)
	}
	if len(recipes) > count {
		recipes = recipes[:count]
	}

	return recipes, nil
}

// GenerateRecipeImage generates an image for the recipe and returns its
// URL. Callers treat failures as non-fatal.
func (c *Client) GenerateRecipeImage(ctx context.Context, recipeName, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Professional food photography of %s. %s. Overhead shot, natural lighting, appetizing presentation.",
		recipeName, description,
	)

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", apperrors.NewExternalServiceError("image generation", err)
	}
	if len(resp.Data) == 0 {
		return "", apperrors.NewExternalServiceError("image generation", fmt.Errorf("empty image response"))
	}

	return resp.Data[0].URL, nil
}

// Transcribe converts audio to text. The transcription endpoint is
// tried first; when it fails, the translation endpoint serves as the
// fallback since it accepts the same audio and yields English text.
// Only after both fail does the caller see an error.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", apperrors.NewTranscriptionError(err)
	}

	text, primaryErr := c.transcribeAudio(ctx, data, filename)
	if primaryErr == nil {
		return text, nil
	}
	c.logger.Warn("Transcription failed, falling back to translation",
		zap.String("mime_type", mimeType),
		zap.Error(primaryErr),
	)

	text, fallbackErr := c.translateAudio(ctx, data, filename)
	if fallbackErr == nil {
		return text, nil
	}
	c.logger.Warn("Translation fallback failed",
		zap.String("mime_type", mimeType),
		zap.Error(fallbackErr),
	)

	return "", apperrors.NewTranscriptionError(fallbackErr)
}

func (c *Client) transcribeAudio(ctx context.Context, data []byte, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		Reader:   bytes.NewReader(data),
		FilePath: filename,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text), nil
}

func (c *Client) translateAudio(ctx context.Context, data []byte, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		Reader:   bytes.NewReader(data),
		FilePath: filename,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text), nil
}

// complete issues a chat completion, consulting the response cache first
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cacheKey := completionCacheKey(systemPrompt, userPrompt)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			c.logger.Debug("Completion cache hit", zap.String("key", cacheKey))
			return string(cached), nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", apperrors.NewExternalServiceError("completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewExternalServiceError("completion", fmt.Errorf("empty completion response"))
	}

	content := resp.Choices[0].Message.Content

	c.logger.Debug("Completion received",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, []byte(content), c.cacheTTL); err != nil {
			c.logger.Debug("Completion cache write failed", zap.Error(err))
		}
	}

	return content, nil
}

func completionCacheKey(systemPrompt, userPrompt string) string {
	sum := sha256.Sum256([]byte(systemPrompt + "\x00" + userPrompt))
	return fmt.Sprintf("ai:completion:%x", sum[:16])
}

var (
	_ outbound.CompletionService    = (*Client)(nil)
	_ outbound.ImageService         = (*Client)(nil)
	_ outbound.TranscriptionService = (*Client)(nil)
)

// extractJSONObject pulls the outermost JSON object out of a model
// response, tolerating markdown fences and prose around it
func extractJSONObject(response string) (string, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return response[start : end+1], nil
}

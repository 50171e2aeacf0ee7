package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini backed Generator.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// BaseURL overrides the API endpoint, e.g. for a proxy.
	BaseURL string
}

// GeminiGenerator sends augmentation requests to the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	cfg    GeminiConfig
	logger *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, cfg: cfg, logger: logger}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) ([]string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(req), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    getResponseSchema(req),
	}
	if req.Task != TaskTranslate {
		config.Temperature = genai.Ptr(g.cfg.Temperature)
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(userPrompt(req)), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()
	g.logger.Debug("gemini response",
		zap.String("task", string(req.Task)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(respText)))

	var out []string
	if err := json.Unmarshal([]byte(respText), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return out, nil
}

func getResponseSchema(req Request) *genai.Schema {
	description := "Independent rewrites of the input fragment."
	if req.Task == TaskTranslate {
		description = "A single translation of the input text."
	}

	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

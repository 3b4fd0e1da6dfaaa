package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
)

const providerName = "gemini"

// Config holds credentials and backend selection for the Google GenAI SDK.
type Config struct {
	APIKey string
	Model  string
	// Vertex switches from the Gemini Developer API to Vertex AI.
	Vertex   bool
	Project  string
	Location string
	BaseURL  string

	Temperature *float32
	// Timeout bounds one HTTP exchange. Zero leaves it to the request context.
	Timeout     time.Duration
}

// Client generates structured replies with Gemini models.
type Client struct {
	client      *genai.Client
	model       string
	temperature *float32
}

// New creates a Gemini-backed llm.Model.
func New(ctx context.Context, cfg Config) (*Client, error) {
	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Vertex {
		if cfg.Project == "" || cfg.Location == "" {
			return nil, errors.New("gemini: project and location are required for Vertex AI")
		}
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	} else {
		if cfg.APIKey == "" {
			return nil, errors.New("gemini: api key is empty")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{client: gc, model: model, temperature: cfg.Temperature}, nil
}

// Name returns the configured model name.
func (c *Client) Name() string { return c.model }

// Generate implements llm.Model.
func (c *Client) Generate(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, buildContents(req), buildConfig(req, c.temperature))
	if err != nil {
		return nil, llm.Fail(providerName, err)
	}
	return replyFromResponse(res)
}

func buildContents(req llm.Request) []*genai.Content {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil && len(req.Image.Data) > 0 {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func buildConfig(req llm.Request, temperature *float32) *genai.GenerateContentConfig {
	schema := req.Schema
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: &schema,
	}
	if temperature != nil {
		cfg.Temperature = genai.Ptr[float32](*temperature)
	}
	if threshold, ok := harmThreshold(req.Safety); ok {
		cfg.SafetySettings = []*genai.SafetySetting{{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: threshold,
		}}
	}
	return cfg
}

func harmThreshold(s llm.SafetyThreshold) (genai.HarmBlockThreshold, bool) {
	switch s {
	case llm.SafetyBlockOnlyHigh:
		return genai.HarmBlockThresholdBlockOnlyHigh, true
	case llm.SafetyBlockMedium:
		return genai.HarmBlockThresholdBlockMediumAndAbove, true
	default:
		return "", false
	}
}

func replyFromResponse(res *genai.GenerateContentResponse) (json.RawMessage, error) {
	if res == nil {
		return nil, llm.NoOutput(providerName, "empty response")
	}
	if res.PromptFeedback != nil && res.PromptFeedback.BlockReason != "" {
		return nil, llm.NoOutput(providerName, "prompt blocked: "+string(res.PromptFeedback.BlockReason))
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, llm.NoOutput(providerName, "no candidates")
	}
	cand := res.Candidates[0]
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Text == "" || p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		reason := "empty text"
		if cand.FinishReason != "" {
			reason = "finish reason " + string(cand.FinishReason)
		}
		return nil, llm.NoOutput(providerName, reason)
	}
	obj, ok := llm.ExtractObject(text)
	if !ok {
		return nil, llm.NoOutput(providerName, "reply is not a JSON object")
	}
	return obj, nil
}

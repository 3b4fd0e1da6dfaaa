package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
)

const providerName = "openai"

// Config holds credentials for OpenAI or any OpenAI-compatible endpoint
// (OpenRouter included: set BaseURL, AppTitle and Referer).
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string

	Temperature *float32
	// Timeout bounds one HTTP exchange. Zero leaves it to the request context.
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client is a chat completions client returning JSON-schema shaped replies.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

// New creates an OpenAI-backed llm.Model.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is empty")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = httpClient(cfg)

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := float32(0.2)
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return &Client{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		temperature: temperature,
	}, nil
}

// Name returns the configured model name.
func (c *Client) Name() string { return c.model }

// Generate implements llm.Model.
func (c *Client) Generate(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(req))
	if err != nil {
		return nil, llm.Fail(providerName, err)
	}
	if len(resp.Choices) == 0 {
		return nil, llm.NoOutput(providerName, "no choices returned by model")
	}
	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, llm.NoOutput(providerName, "refused: "+choice.Message.Refusal)
	}
	obj, ok := llm.ExtractObject(choice.Message.Content)
	if !ok {
		return nil, llm.NoOutput(providerName, "reply is not a JSON object")
	}
	return obj, nil
}

func (c *Client) buildRequest(req llm.Request) openai.ChatCompletionRequest {
	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if req.Image != nil && len(req.Image.Data) > 0 {
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    media.Encode(req.Image.MIMEType, req.Image.Data),
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	} else {
		msg.Content = req.Prompt
	}
	name := req.Name
	if name == "" {
		name = "response"
	}
	schema := req.Schema
	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{msg},
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &schema,
			},
		},
	}
}

func httpClient(cfg Config) *http.Client {
	hc := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		*hc = *cfg.HTTPClient
		if cfg.Timeout > 0 {
			hc.Timeout = cfg.Timeout
		}
	}
	if cfg.AppTitle != "" || cfg.Referer != "" {
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = &attributionTransport{base: base, title: cfg.AppTitle, referer: cfg.Referer}
	}
	return hc
}

// attributionTransport adds the OpenRouter attribution headers.
type attributionTransport struct {
	base    http.RoundTripper
	title   string
	referer string
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(r)
}

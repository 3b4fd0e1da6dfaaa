package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
)

type captured struct {
	body    map[string]any
	headers http.Header
}

func newServer(t *testing.T, reply string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got.body))
		got.headers = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "cmpl-1",
		"object":  "chat.completion",
		"choices": []any{map[string]any{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"}},
	})
	return string(b)
}

func request() llm.Request {
	return llm.Request{
		Name:   "medical_ai_chat",
		Prompt: "What is a normal resting heart rate?",
		Schema: jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{"answer": {Type: jsonschema.String}},
			Required:   []string{"answer"},
		},
	}
}

func TestGenerateSendsSchemaAndAttribution(t *testing.T) {
	srv, got := newServer(t, completion("```json\n{\"answer\":\"60 to 100 bpm\"}\n```"))

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/v1/", Model: "openai/gpt-4o", AppTitle: "MediAid AI", Referer: "https://mediaid.example"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", c.Name())

	out, err := c.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"60 to 100 bpm"}`, string(out))

	assert.Equal(t, "Bearer k", got.headers.Get("Authorization"))
	assert.Equal(t, "MediAid AI", got.headers.Get("X-Title"))
	assert.Equal(t, "https://mediaid.example", got.headers.Get("HTTP-Referer"))

	assert.Equal(t, "openai/gpt-4o", got.body["model"])
	format, ok := got.body["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	schema, ok := format["json_schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medical_ai_chat", schema["name"])
	assert.NotNil(t, schema["schema"])

	msgs := got.body["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "What is a normal resting heart rate?", msgs[0].(map[string]any)["content"])
}

func TestGenerateWithImage(t *testing.T) {
	srv, got := newServer(t, completion(`{"answer":"ok"}`))
	c, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	req := request()
	req.Image = &llm.Image{MIMEType: "image/jpeg", Data: []byte("jpeg")}
	_, err = c.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, got.headers.Get("X-Title"))
	parts := got.body["messages"].([]any)[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	img := parts[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "data:image/jpeg;base64,anBlZw==", img["url"])
}

func TestGenerateUnusableReplies(t *testing.T) {
	cases := map[string]string{
		"no choices": `{"id":"x","choices":[]}`,
		"refusal":    `{"id":"x","choices":[{"message":{"role":"assistant","content":"","refusal":"cannot help"}}]}`,
		"not json":   completion("Sorry, I am not sure."),
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newServer(t, reply)
			c, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/v1"})
			require.NoError(t, err)

			_, err = c.Generate(context.Background(), request())
			require.Error(t, err)
			assert.True(t, llm.IsModelError(err))
			assert.True(t, errors.Is(err, llm.ErrNoOutput))
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"rate limited","type":"rate_limit"}}`)
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/v1", HTTPClient: srv.Client()})
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), request())
	require.Error(t, err)
	assert.True(t, llm.IsModelError(err))
	assert.False(t, errors.Is(err, llm.ErrNoOutput))
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHTTPClientHasNoTimeoutByDefault(t *testing.T) {
	assert.Zero(t, httpClient(Config{}).Timeout)
	assert.Zero(t, httpClient(Config{AppTitle: "MediAid AI"}).Timeout)
	assert.Equal(t, 90*time.Second, httpClient(Config{Timeout: 90 * time.Second}).Timeout)
}

func TestSlowReplyIsBoundByContextOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion(`{"answer":"slow but fine"}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	out, err := c.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"slow but fine"}`, string(out))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Generate(ctx, request())
	require.Error(t, err)
	assert.True(t, llm.IsModelError(err))
}

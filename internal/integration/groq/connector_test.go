package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrisense/farm-backend/internal/config"
	"github.com/agrisense/farm-backend/internal/entity"
	"go.uber.org/zap"
)

func testConfig(url string) config.GroqConnectorConfig {
	return config.GroqConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:   url,
			Token: "test-key",
		},
		Model:                   "meta-llama/llama-4-scout-17b-16e-instruct",
		ChatCompletionsEndpoint: "/openai/v1/chat/completions",
	}
}

func completionReply(content string) string {
	resp := entity.GroqChatResponse{
		Choices: []entity.GroqChoice{{Message: entity.GroqResponseMessage{Content: content}}},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGenerateTextOnly(t *testing.T) {
	var captured entity.GroqChatRequest
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`{"report":"ok"}`)))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	temp := 0.1
	got, err := c.Generate(context.Background(), &entity.GenerateRequest{
		Prompt:      "analyze this farm",
		Temperature: &temp,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got != `{"report":"ok"}` {
		t.Errorf("content = %q", got)
	}
	if authHeader != "Bearer test-key" {
		t.Errorf("Authorization = %q", authHeader)
	}
	if captured.Model != "meta-llama/llama-4-scout-17b-16e-instruct" {
		t.Errorf("model = %q", captured.Model)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
	if content, ok := captured.Messages[0].Content.(string); !ok || content != "analyze this farm" {
		t.Errorf("content = %v", captured.Messages[0].Content)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.1 {
		t.Errorf("temperature = %v", captured.Temperature)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v", captured.ResponseFormat)
	}
}

func TestGenerateMultimodalContent(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		w.Write([]byte(completionReply("report text")))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.Generate(context.Background(), &entity.GenerateRequest{
		Prompt:    "inspect the crop",
		ImageURLs: []string{"https://img.example/a.jpg", "https://img.example/b.jpg"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	messages := raw["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	if len(content) != 3 {
		t.Fatalf("content has %d parts, want text plus 2 images", len(content))
	}

	first := content[0].(map[string]any)
	if first["type"] != "text" || first["text"] != "inspect the crop" {
		t.Errorf("first part = %v", first)
	}
	second := content[1].(map[string]any)
	if second["type"] != "image_url" {
		t.Errorf("second part type = %v", second["type"])
	}
	if url := second["image_url"].(map[string]any)["url"]; url != "https://img.example/a.jpg" {
		t.Errorf("image order not preserved, first image = %v", url)
	}
}

func TestGenerateNoResponseFormatWithoutJSONMode(t *testing.T) {
	var captured entity.GroqChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(completionReply("x")))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	if _, err := c.Generate(context.Background(), &entity.GenerateRequest{Prompt: "p"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if captured.ResponseFormat != nil {
		t.Errorf("response_format = %+v, want omitted", captured.ResponseFormat)
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Token = ""
	c := NewConnector(cfg, zap.NewNop())

	if _, err := c.Generate(context.Background(), &entity.GenerateRequest{Prompt: "p"}); !errors.Is(err, entity.ErrMissingCredential) {
		t.Errorf("err = %v, want ErrMissingCredential", err)
	}
	if calls != 0 {
		t.Errorf("made %d upstream calls without a credential", calls)
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	if _, err := c.Generate(context.Background(), &entity.GenerateRequest{Prompt: "p"}); !errors.Is(err, entity.ErrEmptyCompletion) {
		t.Errorf("err = %v, want ErrEmptyCompletion", err)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	if _, err := c.Generate(context.Background(), &entity.GenerateRequest{Prompt: "p"}); err == nil {
		t.Error("expected error for upstream 429")
	}
}

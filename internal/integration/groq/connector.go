package groq

import (
	"context"
	"net/http"

	"github.com/agrisense/farm-backend/internal/config"
	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/agrisense/farm-backend/internal/integration/common"
	pkghttp "github.com/agrisense/farm-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector calls the Groq chat-completions API. One request per Generate
// call: no retry, no streaming.
type Connector struct {
	config    config.GroqConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GroqConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAuthToken(cfg.Token)),
		config:    cfg,
		logger:    logger,
	}
}

// Generate sends the prompt as a single user-role message and returns the
// first choice's content unmodified. Whether the content is valid JSON is the
// coercion layer's concern, not this one's.
func (c *Connector) Generate(ctx context.Context, req *entity.GenerateRequest) (string, error) {
	if c.config.Token == "" {
		return "", entity.ErrMissingCredential
	}

	ctxzap.Info(ctx, "generating completion via Groq",
		zap.String("model", c.config.Model),
		zap.Int("image_count", len(req.ImageURLs)),
		zap.Bool("json_mode", req.JSONMode),
	)

	chatReq := &entity.GroqChatRequest{
		Model: c.config.Model,
		Messages: []entity.GroqMessage{
			{Role: "user", Content: messageContent(req)},
		},
		Temperature: req.Temperature,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &entity.GroqResponseFormat{Type: "json_object"}
	}

	var resp entity.GroqChatResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatCompletionsEndpoint, chatReq, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", entity.ErrEmptyCompletion
	}

	content := resp.Choices[0].Message.Content
	ctxzap.Info(ctx, "completion generated", zap.Int("content_length", len(content)))

	return content, nil
}

// messageContent builds the message payload: a plain string for text-only
// prompts, or a text block plus one image-reference block per image, in
// input order, for multimodal ones.
func messageContent(req *entity.GenerateRequest) any {
	if len(req.ImageURLs) == 0 {
		return req.Prompt
	}

	parts := make([]entity.GroqContentPart, 0, len(req.ImageURLs)+1)
	parts = append(parts, entity.GroqContentPart{Type: "text", Text: req.Prompt})
	for _, url := range req.ImageURLs {
		parts = append(parts, entity.GroqContentPart{
			Type:     "image_url",
			ImageURL: &entity.GroqImageURL{URL: url},
		})
	}
	return parts
}

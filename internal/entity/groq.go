package entity

// GenerateRequest is a single generation round trip: one user-role message,
// optionally multimodal, with JSON output mode and temperature per artifact.
type GenerateRequest struct {
	Prompt      string
	ImageURLs   []string
	Temperature *float64
	JSONMode    bool
}

// Groq chat-completions wire types (OpenAI-compatible subset this service
// actually sends and reads).

type GroqImageURL struct {
	URL string `json:"url"`
}

type GroqContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *GroqImageURL `json:"image_url,omitempty"`
}

// GroqMessage content is either a plain string or a []GroqContentPart for
// multimodal messages.
type GroqMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type GroqResponseFormat struct {
	Type string `json:"type"`
}

type GroqChatRequest struct {
	Model          string              `json:"model"`
	Messages       []GroqMessage       `json:"messages"`
	Temperature    *float64            `json:"temperature,omitempty"`
	ResponseFormat *GroqResponseFormat `json:"response_format,omitempty"`
}

type GroqResponseMessage struct {
	Content string `json:"content"`
}

type GroqChoice struct {
	Message GroqResponseMessage `json:"message"`
}

type GroqChatResponse struct {
	Choices []GroqChoice `json:"choices"`
}

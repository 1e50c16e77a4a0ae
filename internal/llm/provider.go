package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the app uses to talk to a
// generative backend. Implementations exist for Gemini, OpenAI, Anthropic and
// OpenRouter; a mock implementation serves the tests.
type Provider interface {
	// Generate sends one request and returns the model output. When
	// req.Schema is set the provider asks for structured output and the
	// returned Content is JSON already validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model this provider targets.
	ModelID() string
}

// Profile selects a model tier for one request. Each provider maps the tier
// to a concrete model; the zero value keeps the provider's configured model.
type Profile string

const (
	ProfileDefault Profile = ""
	// ProfileFast is the configured default model.
	ProfileFast Profile = "fast"
	// ProfileThink is the provider's stronger reasoning model.
	ProfileThink Profile = "think"
)

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Explanation chat sends the full
	// transcript; quiz and exam generation send a single user message.
	Messages []Message

	// Schema, when non-nil, is the structural contract the response must
	// satisfy. Nil means free-form text.
	Schema *Schema

	// Profile picks the model tier serving this request.
	Profile Profile

	// WebSearch asks for search-grounded generation. Providers without a
	// native search tool rely on the prompt instruction alone.
	WebSearch bool

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema contract for structured output.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "lesson-quiz". Used as the
	// schema name for providers that require one and as the cache key for
	// compiled validators.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the normalized model output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token counts for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

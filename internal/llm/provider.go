// Package llm talks to hosted language models for story generation. Every
// backend returns JSON checked against the request schema, and decorators
// add timeouts, retries and journaling on top.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Provider generates one structured reply.
type Provider interface {
	// Generate sends req and returns the reply. When req.Schema is set the
	// reply content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the backend name as configured, e.g. "gemini".
	Name() string

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema selects the backend's structured output mode. Nil asks for
	// plain text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the backend default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema with the name the backends want for it.
type Schema struct {
	// Name is kebab-case, e.g. "kuku-story". It doubles as the cache key
	// for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// StopReason is the backend finish reason, normalised.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
	StopRefused   StopReason = "refused"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish turns raw backend output into a Response. Structured replies
// that hit the token limit are reported as truncated rather than
// validated, since a cut-off JSON object never passes the schema.
func finish(provider string, req Request, content json.RawMessage, resp Response) (*Response, error) {
	resp.Content = content
	if req.Schema == nil {
		return &resp, nil
	}
	switch resp.StopReason {
	case StopMaxTokens:
		return nil, &Error{Kind: KindTruncated, Provider: provider, Content: content,
			Err: errors.New("reply hit the token limit")}
	case StopRefused:
		return nil, &Error{Kind: KindInvalid, Provider: provider, Content: content,
			Err: errors.New("model refused the prompt")}
	}
	if err := ValidateResponse(req.Schema, content); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Provider = provider
		}
		return nil, err
	}
	return &resp, nil
}

// resolveModel expands a short alias from models, or returns name as-is.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

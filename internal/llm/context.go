package llm

import "context"

// Tags label a request in the journal.
type Tags struct {
	Purpose   string
	SessionID string
	ItemKey   string
}

type tagsKey struct{}

// WithPurpose sets the purpose label, keeping any other tags.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	t := TagsFrom(ctx)
	t.Purpose = purpose
	return context.WithValue(ctx, tagsKey{}, t)
}

// WithSession ties requests to a drill session.
func WithSession(ctx context.Context, sessionID string) context.Context {
	t := TagsFrom(ctx)
	t.SessionID = sessionID
	return context.WithValue(ctx, tagsKey{}, t)
}

// WithItem ties requests to one question, e.g. "7x8".
func WithItem(ctx context.Context, itemKey string) context.Context {
	t := TagsFrom(ctx)
	t.ItemKey = itemKey
	return context.WithValue(ctx, tagsKey{}, t)
}

// TagsFrom returns the tags on ctx. Purpose defaults to "unknown".
func TagsFrom(ctx context.Context) Tags {
	t, _ := ctx.Value(tagsKey{}).(Tags)
	if t.Purpose == "" {
		t.Purpose = "unknown"
	}
	return t
}

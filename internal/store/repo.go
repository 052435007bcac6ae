package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a drill lifecycle event.
type SessionEventData struct {
	SessionID string
	Mode      string // concept or shape
	Deck      string
	Action    string // start, complete or exit
	Items     int
	Correct   int
	Wrong     int
}

// AnswerEventData captures one well-formed submission.
type AnswerEventData struct {
	SessionID string
	Mode      string
	ItemKey   string
	Index     int
	Expected  int
	Given     int
	Correct   bool
	HintLevel int
	TimeMs    int
}

// HintEventData captures a hint level increase.
type HintEventData struct {
	SessionID string
	Mode      string
	Index     int
	ItemKey   string
	Level     int
}

// PlaybackEventData captures one completed listening step.
type PlaybackEventData struct {
	Token        int64
	Kind         string // intro or phrase
	Dan          int
	Multiplier   int
	Source       string // clip, speech or silent
	ErrorMessage string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string // empty outside a drill
	ItemKey      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// JournalEntry is a one-line view of any event, used by the journal listing.
type JournalEntry struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string // session, answer, hint, playback or llm
	SessionID string
	Summary   string
}

// SessionTotals summarizes the answers recorded for one session.
type SessionTotals struct {
	Answers   int
	Correct   int
	HintsUsed int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Recent returns events of every kind, newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]JournalEntry, error)

	// SessionTotals aggregates answers and hints for one session.
	SessionTotals(ctx context.Context, sessionID string) (SessionTotals, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns nil when no event has the given ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	Before int64     // id < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)
}

// AssessmentRecord is a completed assessment as persisted.
type AssessmentRecord struct {
	ID        string // session UUID
	CreatedAt time.Time
	Domain    string
	Skills    []string
	Score     int
	Total     int
	Level     string
	Strengths []string
	WeakAreas []string
}

// AssessmentRepo persists completed assessments.
type AssessmentRepo interface {
	// Save stores a completed assessment.
	Save(ctx context.Context, rec *AssessmentRecord) error

	// List returns assessments, newest first, capped at limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]AssessmentRecord, error)

	// Get returns a single assessment by id, or nil if not found.
	Get(ctx context.Context, id string) (*AssessmentRecord, error)
}

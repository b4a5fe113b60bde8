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

// BoxRecord is one unopened mystery box in a profile's inventory.
type BoxRecord struct {
	ID          string
	Tier        string
	CollectedAt time.Time
}

// ProfileRecord is the persisted form of a learner profile.
type ProfileRecord struct {
	ProfileID string
	Name      string
	Points    int
	Badges    []string
	Boxes     []BoxRecord
}

// LeaderboardRecord is one row of the leaderboard view.
type LeaderboardRecord struct {
	ProfileID string
	Name      string
	Points    int
	Badges    []string
	BoxCount  int
}

// ProfileRepo manages profile state and its leaderboard mirror.
type ProfileRepo interface {
	// Get returns the profile for profileID, or nil if none exists.
	Get(ctx context.Context, profileID string) (*ProfileRecord, error)

	// Save upserts the profile row and its leaderboard entry in a
	// single transaction, so the two views can never diverge.
	Save(ctx context.Context, rec *ProfileRecord) error

	// Leaderboard returns entries ordered by points descending.
	// limit <= 0 returns all entries.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// RewardEventData captures a mystery box issuance or opening.
type RewardEventData struct {
	ProfileID         string
	BoxID             string
	Action            string // "issued" or "opened"
	Tier              string
	RewardDescription string // opened only
	RewardPoints      int    // opened only
}

// RewardEventRecord is a stored reward event.
type RewardEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	RewardEventData
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	SessionID     string
	Kind          string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	TimeMs        int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	Kind            string
	Topic           string
	QuestionsServed int  // end only
	CorrectAnswers  int  // end only
	PointsEarned    int  // end only
	BoxAwarded      bool // end only
	DurationSecs    int  // end only
}

// SessionSummaryRecord is a finished session as shown in history.
type SessionSummaryRecord struct {
	SessionID       string
	Timestamp       time.Time
	Kind            string
	Topic           string
	QuestionsServed int
	CorrectAnswers  int
	PointsEarned    int
	BoxAwarded      bool
	DurationSecs    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil if
	// none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// AppendRewardEvent records a box issuance or opening.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QueryRewardEvents returns reward events, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// AppendAnswerEvent records a single answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}

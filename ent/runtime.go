// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sahajm/quizdeck/ent/answerevent"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
	"github.com/sahajm/quizdeck/ent/llmrequestevent"
	"github.com/sahajm/quizdeck/ent/profile"
	"github.com/sahajm/quizdeck/ent/rewardevent"
	"github.com/sahajm/quizdeck/ent/schema"
	"github.com/sahajm/quizdeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[1].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[3].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	leaderboardentryFields := schema.LeaderboardEntry{}.Fields()
	_ = leaderboardentryFields
	// leaderboardentryDescProfileID is the schema descriptor for profile_id field.
	leaderboardentryDescProfileID := leaderboardentryFields[0].Descriptor()
	// leaderboardentry.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	leaderboardentry.ProfileIDValidator = leaderboardentryDescProfileID.Validators[0].(func(string) error)
	// leaderboardentryDescName is the schema descriptor for name field.
	leaderboardentryDescName := leaderboardentryFields[1].Descriptor()
	// leaderboardentry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	leaderboardentry.NameValidator = leaderboardentryDescName.Validators[0].(func(string) error)
	// leaderboardentryDescPoints is the schema descriptor for points field.
	leaderboardentryDescPoints := leaderboardentryFields[2].Descriptor()
	// leaderboardentry.DefaultPoints holds the default value on creation for the points field.
	leaderboardentry.DefaultPoints = leaderboardentryDescPoints.Default.(int)
	// leaderboardentry.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	leaderboardentry.PointsValidator = leaderboardentryDescPoints.Validators[0].(func(int) error)
	// leaderboardentryDescBoxCount is the schema descriptor for box_count field.
	leaderboardentryDescBoxCount := leaderboardentryFields[4].Descriptor()
	// leaderboardentry.DefaultBoxCount holds the default value on creation for the box_count field.
	leaderboardentry.DefaultBoxCount = leaderboardentryDescBoxCount.Default.(int)
	// leaderboardentry.BoxCountValidator is a validator for the "box_count" field. It is called by the builders before save.
	leaderboardentry.BoxCountValidator = leaderboardentryDescBoxCount.Validators[0].(func(int) error)
	// leaderboardentryDescUpdatedAt is the schema descriptor for updated_at field.
	leaderboardentryDescUpdatedAt := leaderboardentryFields[5].Descriptor()
	// leaderboardentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leaderboardentry.DefaultUpdatedAt = leaderboardentryDescUpdatedAt.Default.(func() time.Time)
	// leaderboardentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leaderboardentry.UpdateDefaultUpdatedAt = leaderboardentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescProfileID is the schema descriptor for profile_id field.
	profileDescProfileID := profileFields[0].Descriptor()
	// profile.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	profile.ProfileIDValidator = profileDescProfileID.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescPoints is the schema descriptor for points field.
	profileDescPoints := profileFields[2].Descriptor()
	// profile.DefaultPoints holds the default value on creation for the points field.
	profile.DefaultPoints = profileDescPoints.Default.(int)
	// profile.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	profile.PointsValidator = profileDescPoints.Validators[0].(func(int) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescProfileID is the schema descriptor for profile_id field.
	rewardeventDescProfileID := rewardeventFields[0].Descriptor()
	// rewardevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	rewardevent.ProfileIDValidator = rewardeventDescProfileID.Validators[0].(func(string) error)
	// rewardeventDescBoxID is the schema descriptor for box_id field.
	rewardeventDescBoxID := rewardeventFields[1].Descriptor()
	// rewardevent.BoxIDValidator is a validator for the "box_id" field. It is called by the builders before save.
	rewardevent.BoxIDValidator = rewardeventDescBoxID.Validators[0].(func(string) error)
	// rewardeventDescAction is the schema descriptor for action field.
	rewardeventDescAction := rewardeventFields[2].Descriptor()
	// rewardevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	rewardevent.ActionValidator = rewardeventDescAction.Validators[0].(func(string) error)
	// rewardeventDescTier is the schema descriptor for tier field.
	rewardeventDescTier := rewardeventFields[3].Descriptor()
	// rewardevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	rewardevent.TierValidator = rewardeventDescTier.Validators[0].(func(string) error)
	// rewardeventDescRewardDescription is the schema descriptor for reward_description field.
	rewardeventDescRewardDescription := rewardeventFields[4].Descriptor()
	// rewardevent.DefaultRewardDescription holds the default value on creation for the reward_description field.
	rewardevent.DefaultRewardDescription = rewardeventDescRewardDescription.Default.(string)
	// rewardeventDescRewardPoints is the schema descriptor for reward_points field.
	rewardeventDescRewardPoints := rewardeventFields[5].Descriptor()
	// rewardevent.DefaultRewardPoints holds the default value on creation for the reward_points field.
	rewardevent.DefaultRewardPoints = rewardeventDescRewardPoints.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[3].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPointsEarned is the schema descriptor for points_earned field.
	sessioneventDescPointsEarned := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	sessionevent.DefaultPointsEarned = sessioneventDescPointsEarned.Default.(int)
	// sessioneventDescBoxAwarded is the schema descriptor for box_awarded field.
	sessioneventDescBoxAwarded := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultBoxAwarded holds the default value on creation for the box_awarded field.
	sessionevent.DefaultBoxAwarded = sessioneventDescBoxAwarded.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/kakezan/ent/answerevent"
	"github.com/abhisek/kakezan/ent/hintevent"
	"github.com/abhisek/kakezan/ent/llmrequestevent"
	"github.com/abhisek/kakezan/ent/playbackevent"
	"github.com/abhisek/kakezan/ent/schema"
	"github.com/abhisek/kakezan/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventMixinFields1 := answereventMixin[1].Fields()
	_ = answereventMixinFields1
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventMixinFields1[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventMixinFields1[1].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescPosition is the schema descriptor for position field.
	answereventDescPosition := answereventMixinFields1[2].Descriptor()
	// answerevent.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	answerevent.PositionValidator = answereventDescPosition.Validators[0].(func(int) error)
	// answereventDescItemKey is the schema descriptor for item_key field.
	answereventDescItemKey := answereventMixinFields1[3].Descriptor()
	// answerevent.ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	answerevent.ItemKeyValidator = answereventDescItemKey.Validators[0].(func(string) error)
	// answereventDescHintLevel is the schema descriptor for hint_level field.
	answereventDescHintLevel := answereventFields[3].Descriptor()
	// answerevent.DefaultHintLevel holds the default value on creation for the hint_level field.
	answerevent.DefaultHintLevel = answereventDescHintLevel.Default.(int)
	// answerevent.HintLevelValidator is a validator for the "hint_level" field. It is called by the builders before save.
	answerevent.HintLevelValidator = answereventDescHintLevel.Validators[0].(func(int) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[4].Descriptor()
	// answerevent.TimeMsValidator is a validator for the "time_ms" field. It is called by the builders before save.
	answerevent.TimeMsValidator = answereventDescTimeMs.Validators[0].(func(int) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventMixinFields1 := hinteventMixin[1].Fields()
	_ = hinteventMixinFields1
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventMixinFields1[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescMode is the schema descriptor for mode field.
	hinteventDescMode := hinteventMixinFields1[1].Descriptor()
	// hintevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	hintevent.ModeValidator = hinteventDescMode.Validators[0].(func(string) error)
	// hinteventDescPosition is the schema descriptor for position field.
	hinteventDescPosition := hinteventMixinFields1[2].Descriptor()
	// hintevent.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	hintevent.PositionValidator = hinteventDescPosition.Validators[0].(func(int) error)
	// hinteventDescItemKey is the schema descriptor for item_key field.
	hinteventDescItemKey := hinteventMixinFields1[3].Descriptor()
	// hintevent.ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	hintevent.ItemKeyValidator = hinteventDescItemKey.Validators[0].(func(string) error)
	// hinteventDescLevel is the schema descriptor for level field.
	hinteventDescLevel := hinteventFields[0].Descriptor()
	// hintevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	hintevent.LevelValidator = hinteventDescLevel.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescSessionID is the schema descriptor for session_id field.
	llmrequesteventDescSessionID := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultSessionID holds the default value on creation for the session_id field.
	llmrequestevent.DefaultSessionID = llmrequesteventDescSessionID.Default.(string)
	// llmrequesteventDescItemKey is the schema descriptor for item_key field.
	llmrequesteventDescItemKey := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultItemKey holds the default value on creation for the item_key field.
	llmrequestevent.DefaultItemKey = llmrequesteventDescItemKey.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	playbackeventMixin := schema.PlaybackEvent{}.Mixin()
	playbackeventMixinFields0 := playbackeventMixin[0].Fields()
	_ = playbackeventMixinFields0
	playbackeventFields := schema.PlaybackEvent{}.Fields()
	_ = playbackeventFields
	// playbackeventDescTimestamp is the schema descriptor for timestamp field.
	playbackeventDescTimestamp := playbackeventMixinFields0[1].Descriptor()
	// playbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	playbackevent.DefaultTimestamp = playbackeventDescTimestamp.Default.(func() time.Time)
	// playbackeventDescKind is the schema descriptor for kind field.
	playbackeventDescKind := playbackeventFields[1].Descriptor()
	// playbackevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	playbackevent.KindValidator = playbackeventDescKind.Validators[0].(func(string) error)
	// playbackeventDescDan is the schema descriptor for dan field.
	playbackeventDescDan := playbackeventFields[2].Descriptor()
	// playbackevent.DanValidator is a validator for the "dan" field. It is called by the builders before save.
	playbackevent.DanValidator = playbackeventDescDan.Validators[0].(func(int) error)
	// playbackeventDescMultiplier is the schema descriptor for multiplier field.
	playbackeventDescMultiplier := playbackeventFields[3].Descriptor()
	// playbackevent.DefaultMultiplier holds the default value on creation for the multiplier field.
	playbackevent.DefaultMultiplier = playbackeventDescMultiplier.Default.(int)
	// playbackevent.MultiplierValidator is a validator for the "multiplier" field. It is called by the builders before save.
	playbackevent.MultiplierValidator = playbackeventDescMultiplier.Validators[0].(func(int) error)
	// playbackeventDescSource is the schema descriptor for source field.
	playbackeventDescSource := playbackeventFields[4].Descriptor()
	// playbackevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	playbackevent.SourceValidator = playbackeventDescSource.Validators[0].(func(string) error)
	// playbackeventDescErrorMessage is the schema descriptor for error_message field.
	playbackeventDescErrorMessage := playbackeventFields[5].Descriptor()
	// playbackevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	playbackevent.DefaultErrorMessage = playbackeventDescErrorMessage.Default.(string)
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
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescDeck is the schema descriptor for deck field.
	sessioneventDescDeck := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultDeck holds the default value on creation for the deck field.
	sessionevent.DefaultDeck = sessioneventDescDeck.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemCount is the schema descriptor for item_count field.
	sessioneventDescItemCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemCount holds the default value on creation for the item_count field.
	sessionevent.DefaultItemCount = sessioneventDescItemCount.Default.(int)
	// sessionevent.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	sessionevent.ItemCountValidator = sessioneventDescItemCount.Validators[0].(func(int) error)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
	// sessionevent.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	sessionevent.CorrectCountValidator = sessioneventDescCorrectCount.Validators[0].(func(int) error)
	// sessioneventDescWrongCount is the schema descriptor for wrong_count field.
	sessioneventDescWrongCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultWrongCount holds the default value on creation for the wrong_count field.
	sessionevent.DefaultWrongCount = sessioneventDescWrongCount.Default.(int)
	// sessionevent.WrongCountValidator is a validator for the "wrong_count" field. It is called by the builders before save.
	sessionevent.WrongCountValidator = sessioneventDescWrongCount.Validators[0].(func(int) error)
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kakezan/ent/answerevent"
	"github.com/abhisek/kakezan/ent/hintevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	return r.appendEvent(ctx, "session", func(seq int64) error {
		return r.client.SessionEvent.Create().
			SetSequence(seq).
			SetSessionID(data.SessionID).
			SetMode(data.Mode).
			SetDeck(data.Deck).
			SetAction(data.Action).
			SetItemCount(data.Items).
			SetCorrectCount(data.Correct).
			SetWrongCount(data.Wrong).
			Exec(ctx)
	})
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	return r.appendEvent(ctx, "answer", func(seq int64) error {
		return r.client.AnswerEvent.Create().
			SetSequence(seq).
			SetSessionID(data.SessionID).
			SetMode(data.Mode).
			SetItemKey(data.ItemKey).
			SetPosition(data.Index).
			SetExpected(data.Expected).
			SetGiven(data.Given).
			SetCorrect(data.Correct).
			SetHintLevel(data.HintLevel).
			SetTimeMs(data.TimeMs).
			Exec(ctx)
	})
}

// SessionTotals counts one session's answers and hints with three
// COUNT queries rather than loading the rows.
func (r *eventRepo) SessionTotals(ctx context.Context, sessionID string) (SessionTotals, error) {
	answers := r.client.AnswerEvent.Query().Where(answerevent.SessionID(sessionID))

	var (
		t   SessionTotals
		err error
	)
	if t.Answers, err = answers.Clone().Count(ctx); err != nil {
		return t, fmt.Errorf("count answers of %s: %w", sessionID, err)
	}
	if t.Correct, err = answers.Where(answerevent.Correct(true)).Count(ctx); err != nil {
		return t, fmt.Errorf("count correct answers of %s: %w", sessionID, err)
	}
	if t.HintsUsed, err = r.client.HintEvent.Query().Where(hintevent.SessionID(sessionID)).Count(ctx); err != nil {
		return t, fmt.Errorf("count hints of %s: %w", sessionID, err)
	}
	return t, nil
}

package store

import "context"

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	return r.appendEvent(ctx, "hint", func(seq int64) error {
		return r.client.HintEvent.Create().
			SetSequence(seq).
			SetSessionID(data.SessionID).
			SetMode(data.Mode).
			SetPosition(data.Index).
			SetItemKey(data.ItemKey).
			SetLevel(data.Level).
			Exec(ctx)
	})
}

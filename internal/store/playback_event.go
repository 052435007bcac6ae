package store

import "context"

func (r *eventRepo) AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error {
	return r.appendEvent(ctx, "playback", func(seq int64) error {
		return r.client.PlaybackEvent.Create().
			SetSequence(seq).
			SetToken(data.Token).
			SetKind(data.Kind).
			SetDan(data.Dan).
			SetMultiplier(data.Multiplier).
			SetSource(data.Source).
			SetErrorMessage(data.ErrorMessage).
			Exec(ctx)
	})
}

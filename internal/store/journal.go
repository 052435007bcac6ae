package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/kakezan/ent"
	"github.com/abhisek/kakezan/ent/answerevent"
	"github.com/abhisek/kakezan/ent/hintevent"
	"github.com/abhisek/kakezan/ent/llmrequestevent"
	"github.com/abhisek/kakezan/ent/playbackevent"
	"github.com/abhisek/kakezan/ent/predicate"
	"github.com/abhisek/kakezan/ent/sessionevent"
)

// Recent merges the newest events from every table by global sequence.
// Each table is asked for at most Limit rows, so the merged result is exact.
func (r *eventRepo) Recent(ctx context.Context, opts QueryOpts) ([]JournalEntry, error) {
	var entries []JournalEntry

	sq := r.client.SessionEvent.Query().
		Where(eventPredicates[predicate.SessionEvent](opts)...).
		Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		sq = sq.Limit(opts.Limit)
	}
	sessions, err := sq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	for _, e := range sessions {
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "session",
			SessionID: e.SessionID,
			Summary: fmt.Sprintf("%s %s %q items=%d correct=%d wrong=%d",
				e.Action, e.Mode, e.Deck, e.ItemCount, e.CorrectCount, e.WrongCount),
		})
	}

	aq := r.client.AnswerEvent.Query().
		Where(eventPredicates[predicate.AnswerEvent](opts)...).
		Order(ent.Desc(answerevent.FieldSequence))
	if opts.Limit > 0 {
		aq = aq.Limit(opts.Limit)
	}
	answers, err := aq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	for _, e := range answers {
		mark := "✗"
		if e.Correct {
			mark = "✓"
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "answer",
			SessionID: e.SessionID,
			Summary: fmt.Sprintf("%s #%d %s given=%d expected=%d hints=%d %dms",
				mark, e.Position+1, e.ItemKey, e.Given, e.Expected, e.HintLevel, e.TimeMs),
		})
	}

	hq := r.client.HintEvent.Query().
		Where(eventPredicates[predicate.HintEvent](opts)...).
		Order(ent.Desc(hintevent.FieldSequence))
	if opts.Limit > 0 {
		hq = hq.Limit(opts.Limit)
	}
	hints, err := hq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query hint events: %w", err)
	}
	for _, e := range hints {
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "hint",
			SessionID: e.SessionID,
			Summary:   fmt.Sprintf("%s #%d %s level=%d", e.Mode, e.Position+1, e.ItemKey, e.Level),
		})
	}

	pq := r.client.PlaybackEvent.Query().
		Where(eventPredicates[predicate.PlaybackEvent](opts)...).
		Order(ent.Desc(playbackevent.FieldSequence))
	if opts.Limit > 0 {
		pq = pq.Limit(opts.Limit)
	}
	plays, err := pq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query playback events: %w", err)
	}
	for _, e := range plays {
		what := fmt.Sprintf("%d×%d", e.Dan, e.Multiplier)
		if e.Kind == "intro" {
			what = fmt.Sprintf("intro %d", e.Dan)
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "playback",
			Summary:   fmt.Sprintf("%s via %s", what, e.Source),
		})
	}

	lq := r.client.LLMRequestEvent.Query().
		Where(eventPredicates[predicate.LLMRequestEvent](opts)...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		lq = lq.Limit(opts.Limit)
	}
	calls, err := lq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	for _, e := range calls {
		what := e.Purpose
		if e.ItemKey != "" {
			what += " " + e.ItemKey
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "llm",
			SessionID: e.SessionID,
			Summary:   fmt.Sprintf("%s %s ok=%v %dms", what, e.Model, e.Success, e.LatencyMs),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Sequence > entries[j].Sequence })
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}

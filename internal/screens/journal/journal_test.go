package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	entries   []store.JournalEntry
	err       error
	opts      store.QueryOpts
	totalsFor []string
}

func (f *fakeRepo) Recent(_ context.Context, opts store.QueryOpts) ([]store.JournalEntry, error) {
	f.opts = opts
	return f.entries, f.err
}

func (f *fakeRepo) SessionTotals(_ context.Context, id string) (store.SessionTotals, error) {
	f.totalsFor = append(f.totalsFor, id)
	return store.SessionTotals{Answers: 5, Correct: 4, HintsUsed: 2}, nil
}

func load(t *testing.T, s *Screen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestLoadAndNavigate(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{entries: []store.JournalEntry{
		{Sequence: 3, Timestamp: now, Kind: "playback", Summary: "3×4 via clip"},
		{Sequence: 2, Timestamp: now, Kind: "answer", SessionID: "0123456789ab", Summary: "✓ #1 3x4 given=12"},
		{Sequence: 1, Timestamp: now, Kind: "session", SessionID: "0123456789ab", Summary: "start concept"},
	}}
	s := New(repo)

	assert.Contains(t, s.View(100, 30), "よみこみちゅう")
	load(t, s)
	assert.Equal(t, Limit, repo.opts.Limit)

	view := s.View(100, 30)
	assert.Contains(t, view, "3×4 via clip")
	assert.Contains(t, view, "start concept")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 2, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, []string{"0123456789ab"}, repo.totalsFor)
	assert.Contains(t, s.View(100, 30), "セッション 01234567  こたえ 5  せいかい 4  ヒント 2")

	// Totals are cached per session.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestEntryWithoutSession(t *testing.T) {
	repo := &fakeRepo{entries: []store.JournalEntry{
		{Sequence: 9, Timestamp: time.Now(), Kind: "llm", Summary: "story ok=true"},
	}}
	s := New(repo)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "#9")
}

func TestEmptyAndError(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)
	assert.Contains(t, s.View(80, 20), "まだ きろくが ありません")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)

	s = New(&fakeRepo{err: errors.New("disk gone")})
	load(t, s)
	assert.Contains(t, s.View(80, 20), "disk gone")
}

func TestViewScrollsToSelection(t *testing.T) {
	var entries []store.JournalEntry
	for i := range 30 {
		entries = append(entries, store.JournalEntry{Sequence: int64(30 - i), Kind: "hint", Summary: "row"})
	}
	entries[29].Summary = "last-row"
	s := New(&fakeRepo{entries: entries})
	load(t, s)

	assert.NotContains(t, s.View(80, 12), "last-row")
	for range 29 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Contains(t, s.View(80, 12), "last-row")
}

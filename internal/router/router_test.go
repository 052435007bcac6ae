package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	closed  int
	updates []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates = append(s.updates, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Close()               { s.closed++ }

type ping struct{}

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	listen := &stubScreen{title: "listen"}
	r.Update(PushScreenMsg{Screen: listen})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, 1, listen.inits)
	assert.Equal(t, "listen", r.View(80, 24))

	r.Update(ping{})
	assert.Len(t, listen.updates, 1, "messages go to the top screen")
	assert.Empty(t, home.updates)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 1, listen.closed)
	assert.Same(t, home, r.Active())

	r.Pop()
	assert.Equal(t, 1, r.Depth(), "home is never popped")
	assert.Zero(t, home.closed)
}

func TestOpenBuildsLazily(t *testing.T) {
	built := 0
	cmd := Open(func() screen.Screen {
		built++
		return &stubScreen{title: "journal"}
	})
	assert.Zero(t, built)

	msg, ok := cmd().(PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, 1, built)
	assert.Equal(t, "journal", msg.Screen.Title())

	assert.IsType(t, PopScreenMsg{}, Back())
}

func TestCloseAll(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	drill := &stubScreen{title: "drill"}
	r.Push(drill)

	r.CloseAll()
	assert.Equal(t, 1, home.closed)
	assert.Equal(t, 1, drill.closed)
}

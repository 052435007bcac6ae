// Package router keeps the stack of screens. The bottom screen is the
// home menu and is never popped.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/screen"
)

// PushScreenMsg opens Screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// Open returns a command that pushes the screen built by build. The
// screen is built when the command runs, off the update loop.
func Open(build func() screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: build()} }
}

// Back is a command that pops the top screen.
func Back() tea.Msg { return PopScreenMsg{} }

type Router struct {
	stack []screen.Screen
}

func New(home screen.Screen) *Router {
	return &Router{stack: []screen.Screen{home}}
}

// Push puts s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes and drops the top screen, unless it is home.
func (r *Router) Pop() {
	n := len(r.stack)
	if n <= 1 {
		return
	}
	release(r.stack[n-1])
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]
}

// CloseAll releases every screen, top first, before the program exits.
func (r *Router) CloseAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		release(r.stack[i])
	}
}

func release(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}

func (r *Router) Active() screen.Screen { return r.stack[len(r.stack)-1] }
func (r *Router) Depth() int            { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	}
	top := len(r.stack) - 1
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}

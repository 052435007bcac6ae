package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/kakezan/internal/problemgen"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// session's current phase or result state. The session is left unchanged.
var ErrInvalidTransition = errors.New("invalid session transition")

// Phase is the top-level state of a drill session.
type Phase int

const (
	PhaseSelecting Phase = iota // Choosing a profile or dan
	PhaseActive                 // Serving items
	PhaseComplete               // Every item answered correctly once
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Result is the evaluation state of the current item.
type Result int

const (
	ResultIdle    Result = iota // No well-formed submission yet
	ResultCorrect               // Answered correctly; Advance is allowed
	ResultWrong                 // Last submission was wrong; retry allowed
)

func (r Result) String() string {
	switch r {
	case ResultIdle:
		return "idle"
	case ResultCorrect:
		return "correct"
	case ResultWrong:
		return "wrong"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Mode names the learning mode a deck belongs to.
type Mode string

const (
	ModeConcept Mode = "concept"
	ModeShape   Mode = "shape"
)

// Tally counts submissions within one run.
type Tally struct {
	Correct int
	Wrong   int
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	SessionID string
	Mode      Mode
	Phase     Phase

	// Label describes the chosen deck, e.g. the profile label.
	Label string

	// Index is the zero-based position of Item; Total is the run length.
	Index int
	Total int

	// Item is the current item, nil outside PhaseActive.
	Item problemgen.Item

	HintLevel int

	// Hints holds the scaffolding revealed so far (len == HintLevel).
	Hints []string

	Result Result
	Tally  Tally

	// ShowScaffold is true whenever a hint was requested or the current
	// item has been evaluated, right or wrong.
	ShowScaffold bool
}

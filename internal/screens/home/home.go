package home

import (
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/router"
	"github.com/abhisek/kakezan/internal/screen"
	"github.com/abhisek/kakezan/internal/screens/drill"
	"github.com/abhisek/kakezan/internal/screens/journal"
	"github.com/abhisek/kakezan/internal/screens/listen"
	"github.com/abhisek/kakezan/internal/store"
	"github.com/abhisek/kakezan/internal/story"
	"github.com/abhisek/kakezan/internal/ui/components"
)

// QuitMsg asks the application to exit.
type QuitMsg struct{}

// Deps are the collaborators the home menu hands to each drill.
type Deps struct {
	Journal   store.EventRepo
	Teller    story.Teller
	NewEngine func() *playback.Engine
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu   components.Menu
	phrase catalog.Phrase
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Open(build) }
	}

	items := []components.MenuItem{
		{Label: "かけざんの いみ", Action: push(func() screen.Screen {
			return drill.NewConcept(deps.Journal, deps.Teller)
		})},
		{Label: "かたちで おぼえる", Action: push(func() screen.Screen {
			return drill.NewShape(deps.Journal)
		})},
		{Label: "おとで おぼえる", Disabled: deps.NewEngine == nil, Action: push(func() screen.Screen {
			return listen.New(deps.NewEngine())
		})},
		{Label: "きろく", Disabled: deps.Journal == nil, Action: push(func() screen.Screen {
			return journal.New(deps.Journal)
		})},
		{Label: "おわる", Action: func() tea.Cmd {
			return func() tea.Msg { return QuitMsg{} }
		}},
	}

	dan := catalog.MinDan + 1 + rand.IntN(catalog.MaxDan-catalog.MinDan)
	phrase, _ := catalog.LookupPhrase(dan, 1+rand.IntN(catalog.MaxDan))

	return &HomeScreen{
		menu:   components.NewMenu(items),
		phrase: phrase,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}

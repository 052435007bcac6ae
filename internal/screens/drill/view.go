package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/problemgen"
	"github.com/abhisek/kakezan/internal/session"
	"github.com/abhisek/kakezan/internal/ui/components"
	"github.com/abhisek/kakezan/internal/ui/layout"
	"github.com/abhisek/kakezan/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	snap := s.sess.Snapshot()
	cw := components.ContentWidth(width)

	var body string
	switch snap.Phase {
	case session.PhaseActive:
		body = s.renderActive(snap, cw)
	case session.PhaseComplete:
		body = renderComplete(snap, cw)
	default:
		body = s.renderPicker(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) renderPicker(cw int) string {
	heading := "ステップを えらんでね"
	if s.mode == session.ModeShape {
		heading = "だんを えらんでね"
	}
	return theme.Title.Width(cw).Render(heading) + "\n\n" + s.picker.View()
}

func (s *Screen) renderActive(snap session.Snapshot, cw int) string {
	var b strings.Builder

	progress := components.ProgressBar{Label: snap.Label, Done: snap.Index, Total: snap.Total, Width: cw}
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	if s.story.Text != "" {
		b.WriteString(components.Card(theme.Body.Render(s.story.Text), cw))
		b.WriteString("\n\n")
	}

	b.WriteString(renderItem(snap.Item, cw))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(s.input.View(), cw))
	b.WriteString("\n\n")
	b.WriteString(renderFeedback(snap, cw))

	if snap.ShowScaffold {
		b.WriteString("\n")
		b.WriteString(renderScaffold(snap, cw))
	}
	return b.String()
}

// renderItem draws the prompt, or the grid for mini-table puzzles.
func renderItem(item problemgen.Item, cw int) string {
	if p, ok := item.(problemgen.Puzzle); ok && p.Kind == problemgen.PuzzleMiniTable && p.Table != nil {
		return layout.Center(renderMiniTable(*p.Table), cw) + "\n" +
			layout.Center(theme.Hint.Render(item.Prompt()), cw)
	}
	return layout.Center(theme.Prompt.Render(item.Prompt()), cw)
}

func renderMiniTable(t problemgen.MiniTable) string {
	var rows []string

	header := theme.HeaderCell.Render("×")
	for _, c := range t.Cols {
		header += theme.HeaderCell.Render(fmt.Sprint(c))
	}
	rows = append(rows, header)

	for r, rv := range t.Rows {
		line := theme.HeaderCell.Render(fmt.Sprint(rv))
		for c := range t.Cols {
			if t.Masked(r, c) {
				line += theme.HoleCell.Render("□")
			} else {
				line += theme.Cell.Render(fmt.Sprint(t.Value(r, c)))
			}
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func renderFeedback(snap session.Snapshot, cw int) string {
	switch snap.Result {
	case session.ResultCorrect:
		return layout.Center(theme.Correct.Render("せいかい！ Enter で つぎへ"), cw)
	case session.ResultWrong:
		return layout.Center(theme.Incorrect.Render("ざんねん。もういちど やってみよう"), cw)
	default:
		return layout.Center(theme.Hint.Render("H で ヒント"), cw)
	}
}

// renderScaffold lists the revealed hints with dots for those still hidden.
func renderScaffold(snap session.Snapshot, cw int) string {
	var lines []string
	for i := range problemgen.MaxHintLevel {
		if i < len(snap.Hints) {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("ヒント%d  %s", i+1, snap.Hints[i])))
		} else {
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("ヒント%d  ・・・", i+1)))
		}
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func renderComplete(snap session.Snapshot, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("ぜんぶ できたね！"))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(theme.Body.Render(snap.Label), cw))
	b.WriteString("\n\n")

	tally := fmt.Sprintf("%s  %s",
		theme.Correct.Render(fmt.Sprintf("○ せいかい %d", snap.Tally.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("× まちがい %d", snap.Tally.Wrong)))
	b.WriteString(components.Card(tally, cw))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(theme.Hint.Render("R で もういちど ・ Enter で えらびなおす"), cw))
	return b.String()
}

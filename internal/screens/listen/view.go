package listen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/playback"
	"github.com/abhisek/kakezan/internal/ui/components"
	"github.com/abhisek/kakezan/internal/ui/layout"
	"github.com/abhisek/kakezan/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.state.Phase == playback.PhasePlaying {
		body = s.renderPlaying(cw)
	} else {
		body = theme.Title.Width(cw).Render("だんを えらんでね") + "\n\n" + s.picker.View()
	}
	if s.err != nil {
		body += "\n\n" + theme.Incorrect.Render(errorText(s.err))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) renderPlaying(cw int) string {
	st := s.state
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(catalog.DanName(st.Dan)))
	b.WriteString("\n\n")

	progress := components.ProgressBar{Done: st.Index + 1, Total: st.Total, Width: cw}
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	p := st.Current
	reading := theme.Reading.Render(p.Reading)
	equation := theme.Body.Render(fmt.Sprintf("%d × %d = %d", p.Dan, p.Multiplier, p.Result))
	b.WriteString(components.Card(layout.Center(reading, cw-4)+"\n"+layout.Center(equation, cw-4), cw))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Hint.Render(s.statusLine()), cw))
	return b.String()
}

// statusLine summarises auto-play, rate and how the last step sounded.
func (s *Screen) statusLine() string {
	st := s.state
	parts := []string{"▶ さいせいちゅう"}
	switch {
	case !st.AutoPlay:
		parts[0] = "⏸ ていし"
	case st.AtEnd && !st.Running:
		parts[0] = "■ おしまい"
	}
	parts = append(parts, fmt.Sprintf("はやさ %.2f", st.Settings.Rate))
	if st.Last != nil {
		parts = append(parts, sourceLabel(st.Last.Source))
	}
	return strings.Join(parts, "  ")
}

func sourceLabel(src playback.Source) string {
	switch src {
	case playback.SourceClip:
		return "♪ ろくおん"
	case playback.SourceSpeech:
		return "♪ よみあげ"
	default:
		return "♪ おとなし"
	}
}

func errorText(err error) string {
	switch err {
	case playback.ErrDanOutOfRange:
		return "その だんは えらべません"
	case playback.ErrClosed:
		return "おとが つかえません"
	default:
		return err.Error()
	}
}

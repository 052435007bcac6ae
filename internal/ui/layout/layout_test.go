package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestFrameRender(t *testing.T) {
	f := Frame{
		Width:  80,
		Height: 24,
		Title:  "れんしゅう",
		Status: "○ 3  × 1",
		Hints:  []KeyHint{{Key: "Esc", Description: "もどる"}},
	}
	assert.True(t, f.Fits())

	out := f.Render("body")
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, brand)
	assert.Contains(t, out, "れんしゅう")
	assert.Contains(t, out, "○ 3  × 1")
	assert.Contains(t, out, "もどる")
	assert.Contains(t, out, "body")
	assert.Equal(t, 18, f.BodyHeight(), "two bordered bars take three rows each")
}

func TestFrameTooSmall(t *testing.T) {
	f := Frame{Width: 40, Height: 10}
	assert.False(t, f.Fits())

	out := f.Render("body")
	assert.NotContains(t, out, "body")
	assert.True(t, strings.Contains(out, "40 x 10"))
}

func TestCompact(t *testing.T) {
	assert.True(t, Compact(79))
	assert.False(t, Compact(80))
}

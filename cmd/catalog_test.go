package cmd

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kakezan/internal/audio"
	"github.com/abhisek/kakezan/internal/playback"
)

func TestKukuRows_MarksInstalledClips(t *testing.T) {
	clips := audio.NewPlayer(fstest.MapFS{
		"kuku/intro-6.wav": {Data: []byte("RIFF")},
		"kuku/6-2.wav":     {Data: []byte("RIFF")},
	}, nil)

	rows := kukuRows(clips, playback.DefaultSettings(), 6)
	require.Len(t, rows, 10, "intro plus nine phrases")

	assert.Equal(t, []string{"intro", "", "ろくのだん、いくよ", "✓"}, rows[0])
	assert.Equal(t, "6 × 1", rows[1][0])
	assert.Equal(t, "-", rows[1][3])
	assert.Equal(t, []string{"6 × 2", "12", rows[2][2], "✓"}, rows[2])
	assert.Equal(t, "-", rows[9][3])
}

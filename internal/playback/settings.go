package playback

import (
	"fmt"
	"path"
	"time"

	"github.com/abhisek/kakezan/internal/catalog"
)

// Settings tunes the sequencing.
type Settings struct {
	Rate  float64
	Pitch float64
	Lang  string

	IntroPause   time.Duration
	Gap          time.Duration
	IntroEnabled bool

	MinDan int
	MaxDan int

	// BaseDir and Ext address the pre-recorded resources.
	BaseDir string
	Ext     string
}

const (
	MinRate = 0.7
	MaxRate = 1.1

	MaxIntroPause = 800 * time.Millisecond
	MinGap        = 200 * time.Millisecond
	MaxGap        = 1200 * time.Millisecond
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Rate:         0.95,
		Pitch:        1.0,
		Lang:         "ja-JP",
		IntroPause:   250 * time.Millisecond,
		Gap:          450 * time.Millisecond,
		IntroEnabled: true,
		MinDan:       catalog.MinDan,
		MaxDan:       catalog.MaxDan,
		BaseDir:      "kuku",
		Ext:          "wav",
	}
}

// Normalize fills empty fields from DefaultSettings and clamps ranges.
// IntroPause and IntroEnabled are taken as given: zero is meaningful for both.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.Rate == 0 {
		s.Rate = d.Rate
	}
	s.Rate = clamp(s.Rate, MinRate, MaxRate)
	if s.Pitch <= 0 {
		s.Pitch = d.Pitch
	}
	if s.Lang == "" {
		s.Lang = d.Lang
	}
	s.IntroPause = clamp(s.IntroPause, 0, MaxIntroPause)
	if s.Gap == 0 {
		s.Gap = d.Gap
	}
	s.Gap = clamp(s.Gap, MinGap, MaxGap)
	if s.MinDan == 0 {
		s.MinDan = d.MinDan
	}
	if s.MaxDan == 0 {
		s.MaxDan = d.MaxDan
	}
	s.MinDan = clamp(s.MinDan, catalog.MinDan, catalog.MaxDan)
	s.MaxDan = clamp(s.MaxDan, s.MinDan, catalog.MaxDan)
	if s.Ext == "" {
		s.Ext = d.Ext
	}
	return s
}

// IntroPath addresses the introductory resource for dan.
func (s Settings) IntroPath(dan int) string {
	return path.Join(s.BaseDir, fmt.Sprintf("intro-%d.%s", dan, s.Ext))
}

// PhrasePath addresses the resource for dan × multiplier.
func (s Settings) PhrasePath(dan, multiplier int) string {
	return path.Join(s.BaseDir, fmt.Sprintf("%d-%d.%s", dan, multiplier, s.Ext))
}

func clamp[T int | float64 | time.Duration](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

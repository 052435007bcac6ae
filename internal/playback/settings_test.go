package playback

import (
	"testing"
	"time"
)

func TestSettingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want func(Settings) bool
	}{
		{"zero fills defaults", Settings{}, func(s Settings) bool {
			return s.Rate == 0.95 && s.Pitch == 1 && s.Lang == "ja-JP" && s.Gap == 450*time.Millisecond &&
				s.MinDan == 1 && s.MaxDan == 9 && s.Ext == "wav"
		}},
		{"rate clamped high", Settings{Rate: 2}, func(s Settings) bool { return s.Rate == MaxRate }},
		{"rate clamped low", Settings{Rate: 0.1}, func(s Settings) bool { return s.Rate == MinRate }},
		{"gap clamped", Settings{Gap: 5 * time.Second}, func(s Settings) bool { return s.Gap == MaxGap }},
		{"short gap raised", Settings{Gap: time.Millisecond}, func(s Settings) bool { return s.Gap == MinGap }},
		{"zero intro pause kept", Settings{}, func(s Settings) bool { return s.IntroPause == 0 }},
		{"intro pause clamped", Settings{IntroPause: time.Second}, func(s Settings) bool { return s.IntroPause == MaxIntroPause }},
		{"inverted dan range", Settings{MinDan: 7, MaxDan: 3}, func(s Settings) bool { return s.MinDan == 7 && s.MaxDan == 7 }},
		{"dan range clamped", Settings{MinDan: -1, MaxDan: 12}, func(s Settings) bool { return s.MinDan == 1 && s.MaxDan == 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !tt.want(got) {
				t.Errorf("Normalize() = %+v", got)
			}
		})
	}
}

func TestSettingsPaths(t *testing.T) {
	s := DefaultSettings()
	if got := s.IntroPath(2); got != "kuku/intro-2.wav" {
		t.Errorf("IntroPath = %q", got)
	}
	if got := s.PhrasePath(2, 5); got != "kuku/2-5.wav" {
		t.Errorf("PhrasePath = %q", got)
	}

	s.BaseDir, s.Ext = "", "mp3"
	if got := s.PhrasePath(9, 9); got != "9-9.mp3" {
		t.Errorf("PhrasePath = %q", got)
	}
}

package audio

import (
	"bytes"
	"reflect"
	"testing"
)

type fakeClip struct {
	calls []string
}

func (f *fakeClip) Pause()  { f.calls = append(f.calls, "pause") }
func (f *fakeClip) Rewind() { f.calls = append(f.calls, "rewind") }
func (f *fakeClip) Play()   { f.calls = append(f.calls, "play") }

func TestPlaySoundEffect(t *testing.T) {
	tests := []struct {
		name     string
		player   Player
		expected []string
	}{
		{
			name:     "enabled and supported",
			player:   Player{AudioDisabled: false, SupportsRestart: true},
			expected: []string{"pause", "rewind", "play"},
		},
		{
			name:     "audio disabled",
			player:   Player{AudioDisabled: true, SupportsRestart: true},
			expected: nil,
		},
		{
			name:     "restart unsupported",
			player:   Player{AudioDisabled: false, SupportsRestart: false},
			expected: nil,
		},
		{
			name:     "disabled and unsupported",
			player:   Player{AudioDisabled: true, SupportsRestart: false},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := &fakeClip{}
			tc.player.PlaySoundEffect(clip)
			if !reflect.DeepEqual(clip.calls, tc.expected) {
				t.Errorf("clip calls = %v, expected %v", clip.calls, tc.expected)
			}
		})
	}
}

func TestPlaySoundEffectNilClip(t *testing.T) {
	// Must not panic
	Player{SupportsRestart: true}.PlaySoundEffect(nil)
}

func TestBellClip(t *testing.T) {
	var buf bytes.Buffer
	clip := NewBellClip(&buf)

	Player{SupportsRestart: true}.PlaySoundEffect(clip)
	Player{SupportsRestart: true}.PlaySoundEffect(clip)

	if buf.String() != "\a\a" {
		t.Errorf("bell output = %q, expected %q", buf.String(), "\a\a")
	}
}

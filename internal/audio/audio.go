// Package audio plays short sound effects through host-provided clips.
package audio

import "io"

// Clip is a playable sound owned by the host environment.
type Clip interface {
	Pause()
	Rewind()
	Play()
}

// Player gates sound effects on user preference and host capability.
type Player struct {
	// AudioDisabled mirrors the user's preference. Read on every call.
	AudioDisabled bool
	// SupportsRestart is set by the host when a clip can be stopped and
	// replayed from the start cheaply. Hosts without it get no sound.
	SupportsRestart bool
}

// PlaySoundEffect plays clip from the beginning.
func (p Player) PlaySoundEffect(clip Clip) {
	if p.AudioDisabled || !p.SupportsRestart || clip == nil {
		return
	}

	clip.Pause()
	clip.Rewind()
	clip.Play()
}

// BellClip is a Clip that rings the terminal bell.
type BellClip struct {
	w io.Writer
}

// NewBellClip creates a bell clip writing to w.
func NewBellClip(w io.Writer) *BellClip {
	return &BellClip{w: w}
}

// Pause is a no-op; the bell cannot be interrupted.
func (b *BellClip) Pause() {}

// Rewind is a no-op; the bell has no playback position.
func (b *BellClip) Rewind() {}

// Play rings the bell.
func (b *BellClip) Play() {
	if b == nil || b.w == nil {
		return
	}
	//nolint:errcheck // Best-effort sound, game continues regardless
	b.w.Write([]byte{'\a'})
}

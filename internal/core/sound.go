package core

// SoundPlayer plays named sound effects.
// Play must not block the caller; failures are the player's business.
type SoundPlayer interface {
	Play(name string)
}

// NopSoundPlayer discards every sound.
type NopSoundPlayer struct{}

// Play does nothing.
func (NopSoundPlayer) Play(string) {}

package constants

import "time"

// Sound effect tones
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	FireToneHz     = 660
	FireDuration   = 40 * time.Millisecond
	HitToneHz      = 880
	HitDuration    = 50 * time.Millisecond
	EscapeToneHz   = 220
	EscapeDuration = 120 * time.Millisecond
)

package constants

import "time"

// Audio Engine
const (
	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Drop Sound Timing
const (
	DropSoundDuration = 90 * time.Millisecond
	DropSoundAttack   = 2 * time.Millisecond
	DropSoundRelease  = 70 * time.Millisecond
)

// Win Sound Timing
const (
	WinNoteDuration = 140 * time.Millisecond
	WinNoteAttack   = 5 * time.Millisecond
	WinNoteRelease  = 60 * time.Millisecond
	WinFinalNote    = 500 * time.Millisecond
	WinFinalRelease = 400 * time.Millisecond
)

// Draw Sound Timing
const (
	DrawNoteDuration = 250 * time.Millisecond
	DrawNoteAttack   = 10 * time.Millisecond
	DrawNoteRelease  = 150 * time.Millisecond
)

package audio

import "github.com/lixenwraith/connect-four/config"

// AudioConfig holds the resolved audio settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the audio settings of the built-in game configuration
func DefaultAudioConfig() *AudioConfig {
	return NewAudioConfig(config.Default())
}

// NewAudioConfig derives the audio settings from the game configuration
func NewAudioConfig(cfg *config.Config) *AudioConfig {
	return &AudioConfig{
		Enabled:      !cfg.Mute,
		SampleRate:   cfg.Audio.SampleRate,
		MasterVolume: min(max(cfg.Audio.Volume, 0), 1),
		EffectVolumes: [soundTypeCount]float64{
			SoundDrop: 0.6,
			SoundWin:  1.0,
			SoundDraw: 0.8,
		},
	}
}

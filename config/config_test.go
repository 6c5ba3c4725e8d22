package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Mute)
	assert.False(t, cfg.KeepOpen)
	assert.Equal(t, time.Second, cfg.EndGameWait)
	assert.Equal(t, 6, cfg.Layout.CellWidth)
	assert.Equal(t, 3, cfg.Layout.CellHeight)
	assert.Equal(t, "#46519c", cfg.Theme.Board)
	assert.Equal(t, "#333333", cfg.Theme.Hole)
	assert.Equal(t, "#ff0000", cfg.Theme.Player1)
	assert.Equal(t, "#ffff00", cfg.Theme.Player2)
	assert.Equal(t, "#ffffff", cfg.Theme.Text)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.InDelta(t, 0.5, cfg.Audio.Volume, 1e-9)

	assert.Equal(t, cfg, Default())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "connect4.yaml", `
debug: true
keep-open: true
end-game-wait: 250ms
layout:
  cell-width: 4
theme:
  player2: gold
audio:
  volume: 0.8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.KeepOpen)
	assert.Equal(t, 250*time.Millisecond, cfg.EndGameWait)
	assert.Equal(t, 4, cfg.Layout.CellWidth)
	assert.Equal(t, 3, cfg.Layout.CellHeight, "unset fields keep defaults")
	assert.Equal(t, "gold", cfg.Theme.Player2)
	assert.Equal(t, "#ff0000", cfg.Theme.Player1)
	assert.InDelta(t, 0.8, cfg.Audio.Volume, 1e-9)
}

func TestLoadExplicitZeroValues(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", `
end-game-wait: 0s
audio:
  volume: 0
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Zero(t, cfg.EndGameWait, "zero wait exits right away")
		assert.Zero(t, cfg.Audio.Volume, "zero volume is silent")
		assert.Equal(t, 48000, cfg.Audio.SampleRate, "siblings keep defaults")
	})

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "connect4.toml", `
end-game-wait = "0s"

[audio]
volume = 0.0
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Zero(t, cfg.EndGameWait)
		assert.Zero(t, cfg.Audio.Volume)
	})

	t.Run("Zero cell size is rejected", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", `
layout:
  cell-width: 0
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "layout.cell-width")
	})
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, "connect4.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "connect4.toml", `
mute = true

[layout]
cell-height = 2

[theme]
board = "#112233"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Mute)
	assert.Equal(t, 2, cfg.Layout.CellHeight)
	assert.Equal(t, "#112233", cfg.Theme.Board)
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		path := writeFile(t, "connect4.ini", "debug=true\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("Invalid values", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", `
layout:
  cell-width: 1
theme:
  hole: not-a-color
audio:
  volume: 3
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "layout.cell-width")
		assert.Contains(t, err.Error(), "theme.hole")
		assert.Contains(t, err.Error(), "audio.volume")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.EndGameWait = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "end-game-wait")

	cfg = Default()
	cfg.Audio.SampleRate = 0
	assert.ErrorContains(t, cfg.Validate(), "audio.sample-rate")
}

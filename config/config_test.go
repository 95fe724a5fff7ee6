package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pixleon/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads default values correctly", func(t *testing.T) {
		// Ensure no env vars are lingering from other tests
		t.Setenv("PIXLEON_FFMPEG_BIN", "")
		t.Setenv("PIXLEON_JPEG_QUALITY", "")
		t.Setenv("PIXLEON_VIDEO_QUALITY", "")
		t.Setenv("PIXLEON_KILL_GRACE", "")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "ffmpeg", cfg.FFmpegBin)
		assert.Equal(t, "rembg", cfg.RembgBin)
		assert.Equal(t, 85, cfg.JpegQuality)
		assert.Equal(t, 3, cfg.VideoQuality)
		assert.Equal(t, 800, cfg.ResizeWidth)
		assert.Equal(t, 600, cfg.ResizeHeight)
		assert.Equal(t, true, cfg.KeepAspect)
		assert.Equal(t, "medium", cfg.Preset)
		assert.Equal(t, "128k", cfg.AudioBitrate)
		assert.Equal(t, 2*time.Second, cfg.KillGrace)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("overrides defaults with environment variables", func(t *testing.T) {
		t.Setenv("PIXLEON_FFMPEG_BIN", "/opt/ffmpeg/bin/ffmpeg")
		t.Setenv("PIXLEON_JPEG_QUALITY", "60")
		t.Setenv("PIXLEON_VIDEO_QUALITY", "5")
		t.Setenv("PIXLEON_KEEP_ASPECT", "false")
		t.Setenv("PIXLEON_KILL_GRACE", "1m30s")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegBin)
		assert.Equal(t, 60, cfg.JpegQuality)
		assert.Equal(t, 5, cfg.VideoQuality)
		assert.Equal(t, false, cfg.KeepAspect)
		assert.Equal(t, 90*time.Second, cfg.KillGrace)
	})
}

package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config carries the tool defaults and external-binary settings. CLI flags
// override these per invocation.
type Config struct {
	FFmpegBin    string        `mapstructure:"FFMPEG_BIN"`
	RembgBin     string        `mapstructure:"REMBG_BIN"`
	JpegQuality  int           `mapstructure:"JPEG_QUALITY"`
	VideoQuality int           `mapstructure:"VIDEO_QUALITY"`
	ResizeWidth  int           `mapstructure:"RESIZE_WIDTH"`
	ResizeHeight int           `mapstructure:"RESIZE_HEIGHT"`
	KeepAspect   bool          `mapstructure:"KEEP_ASPECT"`
	Preset       string        `mapstructure:"PRESET"`
	AudioBitrate string        `mapstructure:"AUDIO_BITRATE"`
	KillGrace    time.Duration `mapstructure:"KILL_GRACE"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	LogFile      string        `mapstructure:"LOG_FILE"`
}

// stringToDurationHookFunc parses Go duration strings from config values.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		return time.ParseDuration(data.(string))
	}
}

// Load reads pixleon_config.yaml (working directory, then ~/.config/pixleon)
// and PIXLEON_* environment variables on top of the built-in defaults. A
// missing config file is not an error.
func Load() (*Config, error) {
	vp := viper.New()

	vp.SetDefault("FFMPEG_BIN", "ffmpeg")
	vp.SetDefault("REMBG_BIN", "rembg")
	vp.SetDefault("JPEG_QUALITY", 85)
	vp.SetDefault("VIDEO_QUALITY", 3)
	vp.SetDefault("RESIZE_WIDTH", 800)
	vp.SetDefault("RESIZE_HEIGHT", 600)
	vp.SetDefault("KEEP_ASPECT", true)
	vp.SetDefault("PRESET", "medium")
	vp.SetDefault("AUDIO_BITRATE", "128k")
	vp.SetDefault("KILL_GRACE", "2s")
	vp.SetDefault("LOG_LEVEL", "info")
	vp.SetDefault("LOG_FILE", "")

	vp.SetConfigName("pixleon_config")
	vp.SetConfigType("yaml")
	vp.AddConfigPath(".")
	vp.AddConfigPath("$HOME/.config/pixleon/")

	if err := vp.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	vp.SetEnvPrefix("PIXLEON")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	var cfg Config
	err := vp.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			stringToDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

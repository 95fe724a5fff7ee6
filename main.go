package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"pixleon/cmd"
	"pixleon/config"
	"pixleon/types"
)

var Version = "dev"

type CLI struct {
	Convert  cmd.ConvertCmd  `cmd:"" help:"Convert images to another format"`
	Compress cmd.CompressCmd `cmd:"" help:"Re-encode images with size-oriented settings"`
	Resize   cmd.ResizeCmd   `cmd:"" help:"Resize images to a target size"`
	Removebg cmd.RemovebgCmd `cmd:"" help:"Remove the background from an image"`
	Video    cmd.VideoCmd    `cmd:"" help:"Compress a video with ffmpeg"`
}

// newLogger writes to the configured log file, or nowhere: the terminal
// belongs to the TUI.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		if f, ferr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			w = f
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pixleon"),
		kong.Description("Batch image and video processing tools"),
	)

	cfg, err := config.Load()
	ctx.FatalIfErrorf(err)

	appCtx := &types.AppContext{
		Version: Version,
		Config:  cfg,
		Logger:  newLogger(cfg),
	}

	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}

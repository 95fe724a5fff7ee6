package cmd

import (
	"fmt"

	"pixleon/task"
	"pixleon/types"
	"pixleon/utils"
	"pixleon/video"
)

type VideoCmd struct {
	File      string `arg:"" name:"file" help:"Video file to compress" type:"path"`
	Quality   int    `help:"Quality level (1=smallest file, 5=best quality, 0 = use config)" default:"0"`
	OutputDir string `help:"Directory for the compressed file (default: next to the input)" type:"path"`
	NoTUI     bool   `help:"Plain progress output instead of the interactive UI"`
}

func (cmd *VideoCmd) Run(appCtx *types.AppContext) error {
	ffmpegPath, err := utils.LookupTool(appCtx.Config.FFmpegBin)
	if err != nil {
		return err
	}

	if !video.IsVideoFile(cmd.File) {
		return fmt.Errorf("%s is not a supported video file", cmd.File)
	}

	quality := cmd.Quality
	if quality <= 0 {
		quality = appCtx.Config.VideoQuality
	}
	if quality < 1 || quality > 5 {
		return fmt.Errorf("quality must be between 1 and 5, got %d", quality)
	}

	compressor := video.NewCompressor(quality, video.CompressOptions{
		Bin:          ffmpegPath,
		Preset:       appCtx.Config.Preset,
		AudioBitrate: appCtx.Config.AudioBitrate,
		KillGrace:    appCtx.Config.KillGrace,
	})

	req := task.Request{Inputs: []string{cmd.File}, OutputDir: cmd.OutputDir}
	title := fmt.Sprintf("Video Compressor %s (quality %d)", appCtx.Version, quality)
	return runSingle(appCtx, title, req, compressor.Apply, compressor, cmd.NoTUI)
}

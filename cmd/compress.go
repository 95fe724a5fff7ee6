package cmd

import (
	"fmt"

	"pixleon/images"
	"pixleon/task"
	"pixleon/types"
)

type CompressCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files or directories to compress" type:"path"`
	Quality   int      `help:"Quality for lossy formats (1-100, 0 = use config)" default:"0"`
	OutputDir string   `help:"Directory for compressed files (default: next to each input)" type:"path"`
	NoTUI     bool     `help:"Plain progress output instead of the interactive UI"`
}

func (cmd *CompressCmd) Run(appCtx *types.AppContext) error {
	quality := cmd.Quality
	if quality <= 0 {
		quality = appCtx.Config.JpegQuality
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	files, err := expandImageInputs(cmd.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("🎯 No image files to compress.")
		return nil
	}

	req := task.Request{Inputs: files, OutputDir: cmd.OutputDir}
	title := fmt.Sprintf("Image Compressor %s (Q=%d)", appCtx.Version, quality)
	return runBatch(appCtx, title, req, images.NewCompressor(quality).Apply, cmd.NoTUI)
}

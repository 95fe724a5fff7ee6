package cmd

import (
	"fmt"

	"pixleon/images"
	"pixleon/task"
	"pixleon/types"
)

type ResizeCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files or directories to resize" type:"path"`
	Width     int      `help:"Target width in pixels (0 = use config)" default:"0"`
	Height    int      `help:"Target height in pixels (0 = use config)" default:"0"`
	Stretch   bool     `help:"Stretch to the exact dimensions instead of keeping the aspect ratio"`
	OutputDir string   `help:"Directory for resized files (default: next to each input)" type:"path"`
	NoTUI     bool     `help:"Plain progress output instead of the interactive UI"`
}

func (cmd *ResizeCmd) Run(appCtx *types.AppContext) error {
	width, height := cmd.Width, cmd.Height
	if width <= 0 {
		width = appCtx.Config.ResizeWidth
	}
	if height <= 0 {
		height = appCtx.Config.ResizeHeight
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("target dimensions must be positive, got %dx%d", width, height)
	}

	keepAspect := appCtx.Config.KeepAspect
	if cmd.Stretch {
		keepAspect = false
	}

	files, err := expandImageInputs(cmd.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("🎯 No image files to resize.")
		return nil
	}

	req := task.Request{Inputs: files, OutputDir: cmd.OutputDir}
	title := fmt.Sprintf("Image Resizer %s (%dx%d)", appCtx.Version, width, height)
	return runBatch(appCtx, title, req, images.NewResizer(width, height, keepAspect).Apply, cmd.NoTUI)
}

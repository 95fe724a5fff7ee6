package cmd

import (
	"fmt"

	"pixleon/images"
	"pixleon/task"
	"pixleon/types"
)

type ConvertCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files or directories to convert" type:"path"`
	To        string   `help:"Target format" default:"png" enum:"jpg,jpeg,png,gif,bmp,tiff"`
	OutputDir string   `help:"Directory for converted files (default: next to each input)" type:"path"`
	NoTUI     bool     `help:"Plain progress output instead of the interactive UI"`
}

func (cmd *ConvertCmd) Run(appCtx *types.AppContext) error {
	converter, err := images.NewConverter(cmd.To)
	if err != nil {
		return err
	}

	files, err := expandImageInputs(cmd.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("🎯 No image files to convert.")
		return nil
	}

	req := task.Request{Inputs: files, OutputDir: cmd.OutputDir}
	title := fmt.Sprintf("Image Converter %s (to %s)", appCtx.Version, converter.Ext())
	return runBatch(appCtx, title, req, converter.Apply, cmd.NoTUI)
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"pixleon/images"
	"pixleon/task"
	"pixleon/types"
	"pixleon/utils"
)

type RemovebgCmd struct {
	File   string `arg:"" name:"file" help:"Image file to remove the background from" type:"path"`
	Output string `help:"Output file (default: {name}_nobg.png next to the input)" type:"path"`
	NoTUI  bool   `help:"Plain progress output instead of the interactive UI"`
}

func (cmd *RemovebgCmd) Run(appCtx *types.AppContext) error {
	rembgPath, err := utils.LookupTool(appCtx.Config.RembgBin)
	if err != nil {
		return err
	}

	if !images.IsImageFile(cmd.File) {
		return fmt.Errorf("%s is not a supported image file", cmd.File)
	}

	output := cmd.Output
	if output == "" {
		base := strings.TrimSuffix(cmd.File, filepath.Ext(cmd.File))
		output = base + "_nobg.png"
	}

	remover := images.NewBackgroundRemover(&images.RembgCLI{Bin: rembgPath}, output)
	req := task.Request{Inputs: []string{cmd.File}}
	title := fmt.Sprintf("Background Remover %s", appCtx.Version)
	return runSingle(appCtx, title, req, remover.Apply, remover, cmd.NoTUI)
}

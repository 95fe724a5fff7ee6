package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"pixleon/task"
	"pixleon/utils"
)

// Matter removes the background from an encoded image, returning the
// foreground-only result as encoded bytes. No streaming, no progress.
type Matter interface {
	Remove(ctx context.Context, data []byte) ([]byte, error)
}

// RembgCLI implements Matter by piping the image through the external rembg
// binary.
type RembgCLI struct {
	Bin string
}

func (m *RembgCLI) Remove(ctx context.Context, data []byte) ([]byte, error) {
	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.Bin, "i")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, task.Errf(task.ReasonCancelled, "background removal cancelled")
		}
		if errors.Is(err, exec.ErrNotFound) || os.IsNotExist(err) {
			return nil, task.Errf(task.ReasonToolMissing, "rembg binary not found: %s", m.Bin)
		}
		return nil, task.Errf(task.ReasonToolFailure, "rembg failed (%v)\n%s", err, utils.Tail(stderr.String(), 500))
	}
	return out.Bytes(), nil
}

// BackgroundRemover is the single-item operation: read the whole input into
// memory, hand it to the matting collaborator, write the PNG result to the
// chosen output path.
type BackgroundRemover struct {
	matter Matter
	output string
	ctx    context.Context
	cancel context.CancelFunc
}

func NewBackgroundRemover(matter Matter, outputPath string) *BackgroundRemover {
	ctx, cancel := context.WithCancel(context.Background())
	return &BackgroundRemover{matter: matter, output: outputPath, ctx: ctx, cancel: cancel}
}

// Apply runs the matting collaborator on one input.
func (b *BackgroundRemover) Apply(input, _ string) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", task.Errf(task.ReasonInputNotFound, "file not found: %s", input)
		}
		return "", task.Errf(task.ReasonUnreadable, "cannot read %s: %v", input, err)
	}

	result, err := b.matter.Remove(b.ctx, data)
	if err != nil {
		var oe *task.OpError
		if errors.As(err, &oe) {
			return "", err
		}
		return "", task.Errf(task.ReasonToolFailure, "background removal failed: %v", err)
	}

	if err := os.WriteFile(b.output, result, 0o644); err != nil {
		return "", task.Errf(task.ReasonEncodeFailure, "cannot write %s: %v", b.output, err)
	}
	return fmt.Sprintf("Success (%s)", filepath.Base(b.output)), nil
}

// Cancel aborts the in-flight matting process and removes any partially
// written output.
func (b *BackgroundRemover) Cancel() {
	b.cancel()
	os.Remove(b.output)
}

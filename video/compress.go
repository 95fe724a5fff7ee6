// Package video compresses videos by shelling out to ffmpeg. The encoder
// runs as a scoped subprocess: streams are captured, and cancellation
// escalates from a graceful termination request to a kill after a bounded
// grace period.
package video

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"pixleon/task"
	"pixleon/utils"
)

// qualityToCRF maps the user-facing 1-5 quality levels to x264 CRF values.
// Lower CRF = higher quality, larger output.
// https://trac.ffmpeg.org/wiki/Encode/H.264
var qualityToCRF = map[int]int{
	1: 30,
	2: 28,
	3: 25,
	4: 23,
	5: 20,
}

// DefaultCRF is used when a quality level has no table entry.
const DefaultCRF = 25

// DefaultQualityLevel is the middle of the quality range.
const DefaultQualityLevel = 3

// CRFForLevel resolves a quality level to its CRF value, falling back to
// DefaultCRF for unmapped levels.
func CRFForLevel(level int) int {
	if crf, ok := qualityToCRF[level]; ok {
		return crf
	}
	return DefaultCRF
}

// CompressOptions configures the external encoder invocation.
type CompressOptions struct {
	Bin          string        // path to the ffmpeg binary
	Preset       string        // x264 speed preset
	AudioBitrate string        // e.g. "128k"
	KillGrace    time.Duration // wait after SIGTERM before SIGKILL
}

// Compressor compresses one video to H.264/AAC MP4 at a fixed CRF. It
// implements the operation contract plus task.Canceller for best-effort
// interruption of the running encoder.
type Compressor struct {
	opts CompressOptions
	crf  int

	cancelled atomic.Bool

	mu   sync.Mutex
	proc *os.Process
	done chan struct{}
}

// NewCompressor builds a compressor for the given quality level (1-5).
func NewCompressor(level int, opts CompressOptions) *Compressor {
	if opts.Preset == "" {
		opts.Preset = "medium"
	}
	if opts.AudioBitrate == "" {
		opts.AudioBitrate = "128k"
	}
	if opts.KillGrace <= 0 {
		opts.KillGrace = 2 * time.Second
	}
	return &Compressor{opts: opts, crf: CRFForLevel(level)}
}

// buildArgs assembles the fixed-codec command line: only the CRF varies with
// user input.
func buildArgs(input string, crf int, preset, audioBitrate, output string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "warning",
		"-i", input,
		"-c:v", "libx264",
		"-crf", strconv.Itoa(crf),
		"-preset", preset,
		"-c:a", "aac",
		"-b:a", audioBitrate,
		output,
	}
}

// reportsFailure scans encoder diagnostics for keywords that indicate a
// failure ffmpeg did not reflect in its exit code.
func reportsFailure(diagnostics string) bool {
	return strings.Contains(diagnostics, "Error") || strings.Contains(strings.ToLower(diagnostics), "failed")
}

// Apply compresses one video into {basename}_compressed.mp4 in outputDir.
func (c *Compressor) Apply(input, outputDir string) (string, error) {
	inputInfo, err := os.Stat(input)
	if err != nil {
		return "", task.Errf(task.ReasonInputNotFound, "input video not found: %s", input)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", task.Errf(task.ReasonOutputDir, "cannot create output directory %s: %v", outputDir, err)
		}
	} else {
		outputDir = filepath.Dir(input)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	output := filepath.Join(outputDir, base+"_compressed.mp4")

	cmd := exec.Command(c.opts.Bin, buildArgs(input, c.crf, c.opts.Preset, c.opts.AudioBitrate, output)...)
	var diag bytes.Buffer
	cmd.Stdout = &diag
	cmd.Stderr = &diag

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || os.IsNotExist(err) {
			return "", task.Errf(task.ReasonToolMissing, "ffmpeg executable not found: %s", c.opts.Bin)
		}
		return "", task.Errf(task.ReasonToolFailure, "failed to run ffmpeg: %v", err)
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.proc = cmd.Process
	c.done = done
	c.mu.Unlock()

	runErr := cmd.Wait()
	close(done)

	c.mu.Lock()
	c.proc = nil
	c.mu.Unlock()

	diagnostics := utils.Tail(diag.String(), 500)

	if c.cancelled.Load() {
		os.Remove(output)
		return "", task.Errf(task.ReasonCancelled, "compression cancelled")
	}
	if runErr != nil {
		os.Remove(output)
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", task.Errf(task.ReasonToolFailure, "ffmpeg failed (code %d)\n%s", exitCode, diagnostics)
	}
	if reportsFailure(diag.String()) {
		return "", task.Errf(task.ReasonToolFailure, "ffmpeg reported issues\n%s", diagnostics)
	}

	detail := fmt.Sprintf("Success (%s)", filepath.Base(output))
	if outInfo, err := os.Stat(output); err == nil && inputInfo.Size() > 0 {
		saved := float64(inputInfo.Size()-outInfo.Size()) / float64(inputInfo.Size()) * 100
		detail = fmt.Sprintf("Success (%s, %.1f MB → %.1f MB, saved %.0f%%)",
			filepath.Base(output),
			float64(inputInfo.Size())/(1024*1024),
			float64(outInfo.Size())/(1024*1024),
			saved)
	}
	return detail, nil
}

// Cancel requests graceful termination of the encoder, escalating to a kill
// after the grace period. Safe to call while Apply runs on another goroutine.
func (c *Compressor) Cancel() {
	c.cancelled.Store(true)

	c.mu.Lock()
	proc := c.proc
	done := c.done
	c.mu.Unlock()

	if proc == nil {
		return
	}

	_ = proc.Signal(syscall.SIGTERM)
	select {
	case <-done:
	case <-time.After(c.opts.KillGrace):
		_ = proc.Kill()
	}
}

// Package images holds the per-tool image operations: convert, compress,
// resize and background removal. Each operation is a pure single-item
// transform that converts every failure mode into a typed task error; the
// runners in package task drive them over batches.
package images

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"pixleon/task"
)

// formatUnknown marks inputs that decoded fine but cannot be re-encoded in
// their original format (webp, for one). Conversion still works on them;
// format-preserving operations reject them.
const formatUnknown imaging.Format = -1

// decode opens and decodes an input image, returning the pixel data and the
// format detected from the file contents. Falls back to an extension-based
// guess when the detected format is not one the encoders know.
func decode(input string) (image.Image, imaging.Format, error) {
	f, err := os.Open(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, task.Errf(task.ReasonInputNotFound, "file not found: %s", input)
		}
		return nil, 0, task.Errf(task.ReasonUnreadable, "cannot open %s: %v", input, err)
	}
	defer f.Close()

	img, name, err := image.Decode(f)
	if err != nil {
		return nil, 0, task.Errf(task.ReasonUnreadable, "cannot identify image file")
	}

	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		format, err = imaging.FormatFromFilename(input)
		if err != nil {
			format = formatUnknown
		}
	}
	return img, format, nil
}

// encode writes img to out in the given format.
func encode(img image.Image, out string, format imaging.Format, opts ...imaging.EncodeOption) error {
	f, err := os.Create(out)
	if err != nil {
		return task.Errf(task.ReasonEncodeFailure, "cannot create %s: %v", out, err)
	}
	if err := imaging.Encode(f, img, format, opts...); err != nil {
		f.Close()
		os.Remove(out)
		return task.Errf(task.ReasonEncodeFailure, "encoding failed: %v", err)
	}
	if err := f.Close(); err != nil {
		return task.Errf(task.ReasonEncodeFailure, "cannot write %s: %v", out, err)
	}
	return nil
}

// flatten drops the alpha channel, matching what formats that forbid
// transparency expect.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// OutputPath builds the destination path for input with a name suffix,
// keeping the original extension. A name that would collide with the input
// itself when writing in place gets a "_1" inserted; repeated runs producing
// the same suffixed name are a known limitation, matching the original tool.
func OutputPath(input, outputDir, suffix string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)

	name := base + suffix + ext
	if name == filepath.Base(input) && dir == filepath.Dir(input) {
		name = base + suffix + "_1" + ext
	}
	return filepath.Join(dir, name)
}

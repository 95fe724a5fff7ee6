package images

import (
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"

	"pixleon/task"
)

// FitDimensions returns the output size for a resize request. With the
// aspect-ratio lock on, the image is scaled uniformly to fit within the
// target bounds, flooring to whole pixels and never going below 1px on
// either axis. Without the lock the exact target dimensions are used.
func FitDimensions(origW, origH, targetW, targetH int, keepAspect bool) (int, int) {
	if !keepAspect {
		return targetW, targetH
	}
	ratio := math.Min(float64(targetW)/float64(origW), float64(targetH)/float64(origH))
	w := int(float64(origW) * ratio)
	h := int(float64(origH) * ratio)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Resizer scales images to a target size, re-encoding in the original
// format. Output is {basename}_resized{ext}.
type Resizer struct {
	Width      int
	Height     int
	KeepAspect bool
	Filter     imaging.ResampleFilter
}

func NewResizer(width, height int, keepAspect bool) *Resizer {
	return &Resizer{Width: width, Height: height, KeepAspect: keepAspect, Filter: imaging.Lanczos}
}

// Apply resizes one image and reports the computed dimensions in the detail.
func (r *Resizer) Apply(input, outputDir string) (string, error) {
	img, format, err := decode(input)
	if err != nil {
		return "", err
	}
	if format == formatUnknown {
		return "", task.Errf(task.ReasonUnsupported, "cannot re-encode %s in its original format", filepath.Base(input))
	}

	bounds := img.Bounds()
	w, h := FitDimensions(bounds.Dx(), bounds.Dy(), r.Width, r.Height, r.KeepAspect)
	resized := imaging.Resize(img, w, h, r.Filter)

	out := OutputPath(input, outputDir, "_resized")

	var enc image.Image = resized
	var opts []imaging.EncodeOption
	if format == imaging.JPEG {
		enc = flatten(resized)
		opts = append(opts, imaging.JPEGQuality(95))
	}
	if err := encode(enc, out, format, opts...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Success (%dx%d)", w, h), nil
}

package images

import (
	"fmt"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"

	"pixleon/task"
)

// Compressor re-encodes images in their own format with size-oriented
// options: a quality level for lossy formats, maximum compression for PNG.
// Output is {basename}_compressed{ext} next to the input or in the chosen
// output directory.
type Compressor struct {
	Quality int // 1-100, applied to lossy formats
}

func NewCompressor(quality int) *Compressor {
	return &Compressor{Quality: quality}
}

// Apply compresses one image. The format comes from the decoded metadata,
// never from the extension alone, so a mislabeled file is re-encoded as what
// it actually is.
func (c *Compressor) Apply(input, outputDir string) (string, error) {
	img, format, err := decode(input)
	if err != nil {
		return "", err
	}
	if format == formatUnknown {
		return "", task.Errf(task.ReasonUnsupported, "cannot re-encode %s in its original format", filepath.Base(input))
	}

	out := OutputPath(input, outputDir, "_compressed")

	switch format {
	case imaging.JPEG:
		if err := encode(flatten(img), out, format, imaging.JPEGQuality(c.Quality)); err != nil {
			return "", err
		}
		return fmt.Sprintf("Success (Q=%d)", c.Quality), nil
	case imaging.PNG:
		if err := encode(img, out, format, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return "", err
		}
		return "Success (Optimized)", nil
	default:
		if err := encode(img, out, format); err != nil {
			return "", err
		}
		return "Success", nil
	}
}

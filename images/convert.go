package images

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Converter re-encodes images into one fixed target format, writing
// {basename}.{target_ext} into the output directory.
type Converter struct {
	format imaging.Format
	ext    string
}

// NewConverter resolves the target format name up front so an unresolvable
// format is rejected before any run starts.
func NewConverter(target string) (*Converter, error) {
	format, ext, err := TargetFormat(target)
	if err != nil {
		return nil, err
	}
	return &Converter{format: format, ext: ext}, nil
}

// Ext is the normalized extension outputs will carry.
func (c *Converter) Ext() string { return c.ext }

// Apply converts one image. JPEG output cannot carry alpha, so transparency
// is dropped before encoding.
func (c *Converter) Apply(input, outputDir string) (string, error) {
	img, _, err := decode(input)
	if err != nil {
		return "", err
	}

	if c.format == imaging.JPEG {
		img = flatten(img)
	}

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	out := filepath.Join(dir, base+"."+c.ext)

	if err := encode(img, out, c.format); err != nil {
		return "", err
	}
	return "Success", nil
}

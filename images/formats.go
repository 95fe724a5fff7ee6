package images

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"pixleon/task"
)

// SupportedTargets lists the conversion target formats offered to the user.
// webp is absent: the imaging library can decode but not encode it.
var SupportedTargets = []string{"jpg", "png", "gif", "bmp", "tiff"}

// IsImageFile checks if the given file extension is one of the known raster
// image extensions.
func IsImageFile(path string) bool {
	var desiredExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// TargetFormat resolves a user-supplied format name ("jpg", ".PNG", "jpeg")
// to an imaging format and the normalized extension to write.
func TargetFormat(name string) (imaging.Format, string, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if name == "jpeg" {
		name = "jpg"
	}
	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		return 0, "", task.Errf(task.ReasonUnsupported, "unsupported target format: %s", name)
	}
	return format, name, nil
}

// FindImageFiles walks dir recursively and returns all image files, sorted
// for a stable batch order.
func FindImageFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

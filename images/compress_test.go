package images

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"pixleon/task"
)

func TestCompressor_JPEG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	writeTestImage(t, input, 8, 8, color.NRGBA{R: 120, G: 60, B: 30, A: 255})

	c := NewCompressor(85)
	detail, err := c.Apply(input, "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if detail != "Success (Q=85)" {
		t.Errorf("expected detail 'Success (Q=85)', got %q", detail)
	}
	if _, err := os.Stat(filepath.Join(dir, "photo_compressed.jpg")); err != nil {
		t.Errorf("expected compressed output next to input: %v", err)
	}
}

func TestCompressor_PNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "icon.png")
	writeTestImage(t, input, 8, 8, color.NRGBA{R: 0, G: 255, B: 0, A: 255})

	c := NewCompressor(85)
	detail, err := c.Apply(input, "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if detail != "Success (Optimized)" {
		t.Errorf("expected detail 'Success (Optimized)', got %q", detail)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon_compressed.png")); err != nil {
		t.Errorf("expected compressed output next to input: %v", err)
	}
}

func TestCompressor_OtherFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "pixel.bmp")
	writeTestImage(t, input, 4, 4, color.NRGBA{R: 9, G: 9, B: 9, A: 255})

	c := NewCompressor(85)
	detail, err := c.Apply(input, "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if detail != "Success" {
		t.Errorf("expected detail 'Success', got %q", detail)
	}
}

func TestCompressor_SeparateOutputDir(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	writeTestImage(t, input, 4, 4, color.NRGBA{R: 1, G: 1, B: 1, A: 255})

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("failed to create output directory: %v", err)
	}

	if _, err := NewCompressor(70).Apply(input, outDir); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "photo_compressed.jpg")); err != nil {
		t.Errorf("expected output in chosen directory: %v", err)
	}
}

func TestCompressor_CorruptInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	writeCorruptImage(t, path)

	_, err := NewCompressor(85).Apply(path, "")
	if task.ReasonOf(err) != task.ReasonUnreadable {
		t.Errorf("expected unreadable reason, got %v", task.ReasonOf(err))
	}
}

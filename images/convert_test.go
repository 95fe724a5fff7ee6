package images

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"pixleon/task"
)

func TestNewConverter_Unsupported(t *testing.T) {
	_, err := NewConverter("webp")
	if err == nil {
		t.Fatal("expected error for unsupported target format")
	}
	if task.ReasonOf(err) != task.ReasonUnsupported {
		t.Errorf("expected unsupported reason, got %v", task.ReasonOf(err))
	}
}

func TestConverter_PNGToJPG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writeTestImage(t, input, 4, 4, color.NRGBA{R: 50, G: 100, B: 150, A: 128})

	c, err := NewConverter("jpg")
	if err != nil {
		t.Fatalf("NewConverter returned error: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("failed to create output directory: %v", err)
	}

	detail, err := c.Apply(input, outDir)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if detail != "Success" {
		t.Errorf("expected detail 'Success', got %q", detail)
	}

	out := filepath.Join(outDir, "logo.jpg")
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("cannot open converted output: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("converted image has bounds %v, expected 4x4", img.Bounds())
	}
}

func TestConverter_InPlaceNextToInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writeTestImage(t, input, 2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	c, err := NewConverter("bmp")
	if err != nil {
		t.Fatalf("NewConverter returned error: %v", err)
	}

	if _, err := c.Apply(input, ""); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "logo.bmp")); err != nil {
		t.Errorf("expected output next to input: %v", err)
	}
}

func TestConverter_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writeTestImage(t, input, 3, 3, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	c, err := NewConverter("jpg")
	if err != nil {
		t.Fatalf("NewConverter returned error: %v", err)
	}

	if _, err := c.Apply(input, ""); err != nil {
		t.Fatalf("first Apply returned error: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "logo.jpg"))
	if err != nil {
		t.Fatalf("cannot read first output: %v", err)
	}

	if _, err := c.Apply(input, ""); err != nil {
		t.Fatalf("second Apply returned error: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "logo.jpg"))
	if err != nil {
		t.Fatalf("cannot read second output: %v", err)
	}

	if string(first) != string(second) {
		t.Error("repeated conversion of the same input produced different bytes")
	}
}

func TestConverter_CorruptInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	writeCorruptImage(t, path)

	c, err := NewConverter("png")
	if err != nil {
		t.Fatalf("NewConverter returned error: %v", err)
	}
	_, err = c.Apply(path, "")
	if task.ReasonOf(err) != task.ReasonUnreadable {
		t.Errorf("expected unreadable reason, got %v", task.ReasonOf(err))
	}
}

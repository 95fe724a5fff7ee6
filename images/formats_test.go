package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"jpg file", "photo.jpg", true},
		{"jpeg file", "photo.jpeg", true},
		{"png file", "icon.png", true},
		{"uppercase extension", "SCAN.TIFF", true},
		{"nested path", "/pics/2024/cat.bmp", true},
		{"video file", "movie.mp4", false},
		{"no extension", "Makefile", false},
		{"webp is readable input", "anim.webp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageFile(tt.path); got != tt.expected {
				t.Errorf("IsImageFile(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestTargetFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedFmt imaging.Format
		expectedExt string
		wantErr     bool
	}{
		{"plain jpg", "jpg", imaging.JPEG, "jpg", false},
		{"jpeg alias", "jpeg", imaging.JPEG, "jpg", false},
		{"leading dot", ".png", imaging.PNG, "png", false},
		{"mixed case", "GIF", imaging.GIF, "gif", false},
		{"padded", " bmp ", imaging.BMP, "bmp", false},
		{"tiff", "tiff", imaging.TIFF, "tiff", false},
		{"webp not encodable", "webp", 0, "", true},
		{"nonsense", "docx", 0, "", true},
		{"empty", "", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ext, err := TargetFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TargetFormat(%q) expected error, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("TargetFormat(%q) returned error: %v", tt.input, err)
			}
			if format != tt.expectedFmt || ext != tt.expectedExt {
				t.Errorf("TargetFormat(%q) = (%v, %q), expected (%v, %q)",
					tt.input, format, ext, tt.expectedFmt, tt.expectedExt)
			}
		})
	}
}

func TestFindImageFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	for _, name := range []string{"b.png", "a.jpg", "notes.txt", "clip.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.gif"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	files, err := FindImageFiles(dir)
	if err != nil {
		t.Fatalf("FindImageFiles returned error: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(sub, "c.gif"),
	}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i, want := range expected {
		if files[i] != want {
			t.Errorf("files[%d] = %q, expected %q (sorted order)", i, files[i], want)
		}
	}
}

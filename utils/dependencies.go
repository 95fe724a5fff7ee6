package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// LookupTool locates an external binary, preferring a copy shipped next to
// the application executable over the system PATH.
func LookupTool(name string) (string, error) {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), name)
		if fi, err := os.Stat(bundled); err == nil && !fi.IsDir() {
			return bundled, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found (neither bundled nor in system PATH). %s", name, getInstallationInstructions(name))
	}
	return path, nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions(name string) string {
	if name == "rembg" || name == "rembg.exe" {
		return "Install with: pip install \"rembg[cli]\""
	}
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}

// Tail returns at most the last n bytes of s, used to keep diagnostic output
// from external tools readable.
func Tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

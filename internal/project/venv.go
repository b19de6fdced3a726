package project

import (
	"os"
	"path/filepath"
	"runtime"
)

// venvDirNames are the conventional virtualenv directory names checked
// inside a project, in preference order.
var venvDirNames = []string{".venv", "venv", "env", ".env"}

// FindVenv returns the path of a virtualenv inside dir, if one exists.
func FindVenv(dir string) (string, bool) {
	for _, name := range venvDirNames {
		candidate := filepath.Join(dir, name)
		if isVenvDir(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ActiveVenv returns the virtualenv the current shell has activated,
// from the VIRTUAL_ENV environment variable.
func ActiveVenv() (name, path string, ok bool) {
	path = os.Getenv("VIRTUAL_ENV")
	if path == "" {
		return "", "", false
	}
	return filepath.Base(path), path, true
}

// PipPath returns the pip executable inside a virtualenv.
func PipPath(venvPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvPath, "Scripts", "pip.exe")
	}
	return filepath.Join(venvPath, "bin", "pip")
}

// PythonPath returns the python executable inside a virtualenv.
func PythonPath(venvPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvPath, "Scripts", "python.exe")
	}
	return filepath.Join(venvPath, "bin", "python")
}

// FindRequirements returns the requirements file of a project, if any.
func FindRequirements(dir string) (string, bool) {
	candidate := filepath.Join(dir, "requirements.txt")
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, true
	}
	return "", false
}

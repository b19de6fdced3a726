package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Python wraps the python/pip invocations used by project setup.
type Python struct {
	run Runner
}

// NewPython creates a Python tool wrapper backed by the given runner.
func NewPython(run Runner) *Python {
	return &Python{run: run}
}

// interpreter returns the python executable to use for venv creation.
func interpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// CreateVenv creates a virtual environment at path.
func (p *Python) CreateVenv(ctx context.Context, path string) error {
	if _, err := p.run.Run(ctx, interpreter(), "-m", "venv", path); err != nil {
		return fmt.Errorf("creating virtualenv at %s: %w", path, err)
	}
	return nil
}

// InstallRequirements installs a requirements file into a virtualenv
// using its own pip. Returns the command output for display on failure.
func (p *Python) InstallRequirements(ctx context.Context, pip, requirements string) (string, error) {
	if _, err := os.Stat(requirements); err != nil {
		return "", fmt.Errorf("requirements file not found: %s", requirements)
	}
	out, err := p.run.Run(ctx, pip, "install", "-r", requirements)
	if err != nil {
		return out, fmt.Errorf("installing requirements: %w", err)
	}
	return out, nil
}

// InstallPackage installs a single Python package into a virtualenv.
func (p *Python) InstallPackage(ctx context.Context, pip, pkg string) error {
	if _, err := p.run.Run(ctx, pip, "install", pkg); err != nil {
		return fmt.Errorf("installing %s: %w", pkg, err)
	}
	return nil
}

// FreezeRequirements writes the venv's installed packages to a
// requirements.txt in dir and returns its path.
func (p *Python) FreezeRequirements(ctx context.Context, pip, dir string) (string, error) {
	out, err := p.run.Run(ctx, pip, "freeze")
	if err != nil {
		return "", fmt.Errorf("running pip freeze: %w", err)
	}
	path := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(path, []byte(out+"\n"), 0644); err != nil {
		return "", fmt.Errorf("writing requirements: %w", err)
	}
	return path, nil
}

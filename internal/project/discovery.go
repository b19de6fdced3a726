// Package project locates Django projects on disk and inspects their
// settings and environments. Discovery is purely filesystem based:
// a directory is a project when it carries a manage.py that mentions
// django.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/djanbee/internal/logging"
)

// Project is one discovered Django project.
type Project struct {
	Name string
	Path string
}

// IsProject reports whether dir contains a Django project.
func IsProject(dir string) bool {
	managePath := filepath.Join(dir, "manage.py")
	info, err := os.Stat(managePath)
	if err != nil || info.IsDir() {
		return false
	}

	content, err := os.ReadFile(managePath)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(content)), "django")
}

// FindInDir checks whether dir itself is a Django project.
func FindInDir(dir string) (Project, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Project{}, false
	}
	if !IsProject(abs) {
		return Project{}, false
	}
	return Project{Name: filepath.Base(abs), Path: abs}, true
}

// FindInTree searches subdirectories of root for Django projects, up to
// maxDepth levels deep. Hidden directories and virtualenvs are skipped.
// Results are sorted by name for stable menus.
func FindInTree(root string, maxDepth int) ([]Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving search root: %w", err)
	}

	var projects []Project
	walk(abs, 1, maxDepth, &projects)

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	logging.Debug("project tree search finished",
		zap.String("root", abs),
		zap.Int("found", len(projects)),
	)
	return projects, nil
}

func walk(dir string, depth, maxDepth int, projects *[]Project) {
	if depth > maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are skipped, not fatal.
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || isVenvDir(filepath.Join(dir, name)) {
			continue
		}

		sub := filepath.Join(dir, name)
		if IsProject(sub) {
			*projects = append(*projects, Project{Name: name, Path: sub})
		}
		walk(sub, depth+1, maxDepth, projects)
	}
}

// isVenvDir reports whether dir is a Python virtual environment.
func isVenvDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "pyvenv.cfg"))
	return err == nil
}

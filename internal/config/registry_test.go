package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "djanbee") {
		t.Errorf("GetConfigDir() = %v, should contain 'djanbee'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Prefs == nil {
		t.Fatal("NewRegistry().Prefs should not be nil")
	}
	if reg.Prefs.SearchDepth != 2 {
		t.Errorf("NewRegistry().Prefs.SearchDepth = %v, want 2", reg.Prefs.SearchDepth)
	}
	if len(reg.Projects) != 0 {
		t.Errorf("NewRegistry().Projects = %v, want empty", reg.Projects)
	}
}

func TestRememberProject(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	entry := reg.RememberProject("blog", "/srv/blog")
	after := time.Now()

	if entry.LastUsed.Before(before) || entry.LastUsed.After(after) {
		t.Errorf("LastUsed = %v, should be between %v and %v", entry.LastUsed, before, after)
	}
	if got := reg.FindProject("/srv/blog"); got != entry {
		t.Error("FindProject() should return the remembered entry")
	}

	// Remembering another project puts it first.
	reg.RememberProject("shop", "/srv/shop")
	if reg.Projects[0].Name != "shop" {
		t.Errorf("Projects[0].Name = %v, want shop", reg.Projects[0].Name)
	}

	// Re-remembering moves an existing project back to the front
	// without duplicating it.
	reg.RememberProject("blog", "/srv/blog")
	if len(reg.Projects) != 2 {
		t.Fatalf("len(Projects) = %d, want 2", len(reg.Projects))
	}
	if reg.Projects[0].Path != "/srv/blog" {
		t.Errorf("Projects[0].Path = %v, want /srv/blog", reg.Projects[0].Path)
	}
}

func TestRememberProjectBound(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < maxRecentProjects+5; i++ {
		reg.RememberProject("p", filepath.Join("/srv", string(rune('a'+i))))
	}
	if len(reg.Projects) != maxRecentProjects {
		t.Errorf("len(Projects) = %d, want %d", len(reg.Projects), maxRecentProjects)
	}
}

func TestForgetProject(t *testing.T) {
	reg := NewRegistry()
	reg.RememberProject("blog", "/srv/blog")
	reg.RememberProject("shop", "/srv/shop")

	reg.ForgetProject("/srv/blog")
	if reg.FindProject("/srv/blog") != nil {
		t.Error("FindProject() found a forgotten project")
	}
	if len(reg.Projects) != 1 {
		t.Errorf("len(Projects) = %d, want 1", len(reg.Projects))
	}
}

func TestRegistrySaveAndReload(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME redirect not applicable on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	reg.RememberProject("blog", "/srv/blog")
	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	p := loaded.FindProject("/srv/blog")
	if p == nil {
		t.Fatal("reloaded registry lost the remembered project")
	}
	if p.Name != "blog" {
		t.Errorf("reloaded project name = %v, want blog", p.Name)
	}
}

func TestSearchDepthFloor(t *testing.T) {
	reg := &Registry{Version: 1}
	if got := reg.SearchDepth(); got != 2 {
		t.Errorf("SearchDepth() with nil prefs = %d, want 2", got)
	}

	reg.Prefs = &Preferences{SearchDepth: 0}
	if got := reg.SearchDepth(); got != 2 {
		t.Errorf("SearchDepth() with zero = %d, want 2", got)
	}

	reg.Prefs.SearchDepth = 4
	if got := reg.SearchDepth(); got != 4 {
		t.Errorf("SearchDepth() = %d, want 4", got)
	}
}

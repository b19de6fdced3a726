package config

import "time"

// maxRecentProjects bounds the recent-project list.
const maxRecentProjects = 10

// Registry represents the entire user configuration file. It stores
// the projects djanbee has worked with and application preferences.
type Registry struct {
	Version  int              `yaml:"version"`
	Projects []*RecentProject `yaml:"projects,omitempty"`
	Prefs    *Preferences     `yaml:"preferences,omitempty"`
}

// RecentProject records one Django project djanbee has opened.
type RecentProject struct {
	Name     string    `yaml:"name"`
	Path     string    `yaml:"path"`
	LastUsed time.Time `yaml:"last_used"`
	Venv     string    `yaml:"venv,omitempty"` // last known virtualenv path
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	SearchDepth int `yaml:"search_depth"` // how deep launch searches for projects
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Prefs: &Preferences{
			SearchDepth: 2,
		},
	}
}

// FindProject returns the recorded project at path, or nil.
func (r *Registry) FindProject(path string) *RecentProject {
	for _, p := range r.Projects {
		if p.Path == path {
			return p
		}
	}
	return nil
}

// RememberProject records a project as most recently used, moving it to
// the front of the list and trimming the list to its size bound.
func (r *Registry) RememberProject(name, path string) *RecentProject {
	entry := r.FindProject(path)
	if entry == nil {
		entry = &RecentProject{Name: name, Path: path}
	} else {
		r.forgetPath(path)
		entry.Name = name
	}
	entry.LastUsed = time.Now()

	r.Projects = append([]*RecentProject{entry}, r.Projects...)
	if len(r.Projects) > maxRecentProjects {
		r.Projects = r.Projects[:maxRecentProjects]
	}
	return entry
}

// ForgetProject removes a project from the recent list.
func (r *Registry) ForgetProject(path string) {
	r.forgetPath(path)
}

func (r *Registry) forgetPath(path string) {
	kept := r.Projects[:0]
	for _, p := range r.Projects {
		if p.Path != path {
			kept = append(kept, p)
		}
	}
	r.Projects = kept
}

// SearchDepth returns the configured tree-search depth with a sane
// floor of 1.
func (r *Registry) SearchDepth() int {
	if r.Prefs == nil || r.Prefs.SearchDepth < 1 {
		return 2
	}
	return r.Prefs.SearchDepth
}

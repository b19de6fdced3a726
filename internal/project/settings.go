package project

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// secretKeyChars matches Django's get_random_secret_key alphabet.
const secretKeyChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*(-_=+)"

const secretKeyLength = 50

// GenerateSecretKey returns a new 50-character Django-compatible
// secret key from a cryptographic random source.
func GenerateSecretKey() (string, error) {
	var b strings.Builder
	b.Grow(secretKeyLength)
	max := big.NewInt(int64(len(secretKeyChars)))
	for i := 0; i < secretKeyLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating secret key: %w", err)
		}
		b.WriteByte(secretKeyChars[n.Int64()])
	}
	return b.String(), nil
}

// settingsModuleRe extracts the DJANGO_SETTINGS_MODULE default from
// manage.py, e.g. os.environ.setdefault("DJANGO_SETTINGS_MODULE", "app.settings").
var settingsModuleRe = regexp.MustCompile(`DJANGO_SETTINGS_MODULE["']?\s*,\s*["']([^"']+)["']`)

// FindSettings locates the settings file of the project at projectPath.
// It prefers the module named in manage.py, then the conventional
// layouts, then falls back to a recursive search.
func FindSettings(projectPath string) (string, error) {
	name := filepath.Base(projectPath)

	var candidates []string

	// manage.py names the settings module; that path wins.
	if content, err := os.ReadFile(filepath.Join(projectPath, "manage.py")); err == nil {
		if m := settingsModuleRe.FindSubmatch(content); m != nil {
			parts := strings.Split(string(m[1]), ".")
			parts[len(parts)-1] += ".py"
			candidates = append(candidates, filepath.Join(append([]string{projectPath}, parts...)...))
		}
	}

	candidates = append(candidates,
		filepath.Join(projectPath, name, "settings.py"),
		filepath.Join(projectPath, "settings.py"),
		filepath.Join(projectPath, "config", "settings.py"),
		filepath.Join(projectPath, name, "settings", "base.py"),
		filepath.Join(projectPath, "settings", "base.py"),
		filepath.Join(projectPath, "config", "settings", "base.py"),
	)

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}

	// Fallback: first settings.py anywhere under the project.
	var found string
	filepath.WalkDir(projectPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && (strings.HasPrefix(d.Name(), ".") || isVenvDir(path)) {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == "settings.py" && found == "" {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if found != "" {
		return found, nil
	}

	return "", fmt.Errorf("no settings file found under %s", projectPath)
}

// Settings provides read and edit access to a Django settings file.
// Edits work on the file text with the same pattern matching the
// original tool used: simple assignments are rewritten in place,
// commented-out assignments are uncommented, and unknown settings are
// appended.
type Settings struct {
	path    string
	content string
}

// OpenSettings loads the settings file at path.
func OpenSettings(path string) (*Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return &Settings{path: path, content: string(content)}, nil
}

// Path returns the settings file location.
func (s *Settings) Path() string { return s.path }

// Get returns the raw right-hand side of a simple top-level assignment,
// trimmed of whitespace and trailing comments.
func (s *Settings) Get(name string) (string, bool) {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `\s*=\s*([^#\n]+)`)
	m := re.FindStringSubmatch(s.content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// GetString returns a string-valued setting with its quotes stripped.
func (s *Settings) GetString(name string) (string, bool) {
	raw, ok := s.Get(name)
	if !ok {
		return "", false
	}
	return strings.Trim(raw, `'"`), true
}

// Set replaces the value of a setting with the given Python literal.
// String values must be passed already quoted (use SetString for
// convenience). Returns an error only when the file cannot be written.
func (s *Settings) Set(name, literal string) error {
	simple := regexp.MustCompile(`(?m)^(` + regexp.QuoteMeta(name) + `\s*=\s*)[^#\n]+`)
	commented := regexp.MustCompile(`(?m)^#\s*(` + regexp.QuoteMeta(name) + `\s*=\s*)[^#\n]+`)

	switch {
	case simple.MatchString(s.content):
		s.content = simple.ReplaceAllString(s.content, "${1}"+literal)
	case commented.MatchString(s.content):
		// Uncomment and update in one step.
		s.content = commented.ReplaceAllString(s.content, "${1}"+literal)
	default:
		s.content = fmt.Sprintf("%s\n\n%s = %s\n", strings.TrimRight(s.content, "\n"), name, literal)
	}

	return s.save()
}

// SetString sets a setting to a quoted string value.
func (s *Settings) SetString(name, value string) error {
	return s.Set(name, "'"+value+"'")
}

// quotedItemRe matches one quoted element of a Python list literal.
var quotedItemRe = regexp.MustCompile(`['"]([^'"]*)['"]`)

// AllowedHosts returns the entries of the ALLOWED_HOSTS list.
func (s *Settings) AllowedHosts() []string {
	raw, ok := s.Get("ALLOWED_HOSTS")
	if !ok {
		return nil
	}
	var hosts []string
	for _, m := range quotedItemRe.FindAllStringSubmatch(raw, -1) {
		hosts = append(hosts, m[1])
	}
	return hosts
}

// AddAllowedHost appends a host to ALLOWED_HOSTS, ignoring duplicates.
func (s *Settings) AddAllowedHost(host string) error {
	hosts := s.AllowedHosts()
	for _, h := range hosts {
		if h == host {
			return nil
		}
	}
	return s.setAllowedHosts(append(hosts, host))
}

// RemoveAllowedHosts deletes the given hosts from ALLOWED_HOSTS.
func (s *Settings) RemoveAllowedHosts(remove []string) error {
	drop := make(map[string]bool, len(remove))
	for _, h := range remove {
		drop[h] = true
	}
	var kept []string
	for _, h := range s.AllowedHosts() {
		if !drop[h] {
			kept = append(kept, h)
		}
	}
	return s.setAllowedHosts(kept)
}

func (s *Settings) setAllowedHosts(hosts []string) error {
	quoted := make([]string, len(hosts))
	for i, h := range hosts {
		quoted[i] = "'" + h + "'"
	}
	return s.Set("ALLOWED_HOSTS", "["+strings.Join(quoted, ", ")+"]")
}

func (s *Settings) save() error {
	if err := os.WriteFile(s.path, []byte(s.content), 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

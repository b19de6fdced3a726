// Package config provides user configuration management for djanbee.
//
// This package manages a YAML-based configuration file that remembers the
// Django projects djanbee has worked with, along with application
// preferences. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/djanbee/config.yaml or $HOME/.config/djanbee/config.yaml
//   - macOS: $HOME/.config/djanbee/config.yaml
//   - Windows: %LOCALAPPDATA%\djanbee\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores sensitive credentials such as
// database passwords or secret keys. These are always prompted from the
// user when needed.
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Record the project that was just opened
//	registry.RememberProject("blog", "/srv/blog")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config

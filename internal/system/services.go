package system

import (
	"context"
	"fmt"
	"strings"
)

// Services controls systemd units and OS packages.
type Services struct {
	run Runner
}

// NewServices creates a service manager backed by the given runner.
func NewServices(run Runner) *Services {
	return &Services{run: run}
}

// IsActive reports whether a systemd service is running.
func (s *Services) IsActive(ctx context.Context, service string) bool {
	out, err := s.run.Run(ctx, "systemctl", "is-active", service)
	return err == nil && strings.TrimSpace(out) == "active"
}

// Start starts a systemd service.
func (s *Services) Start(ctx context.Context, service string) error {
	if _, err := s.run.Run(ctx, "sudo", "systemctl", "start", service); err != nil {
		return fmt.Errorf("starting %s: %w", service, err)
	}
	return nil
}

// Stop stops a systemd service.
func (s *Services) Stop(ctx context.Context, service string) error {
	if _, err := s.run.Run(ctx, "sudo", "systemctl", "stop", service); err != nil {
		return fmt.Errorf("stopping %s: %w", service, err)
	}
	return nil
}

// Restart restarts a systemd service.
func (s *Services) Restart(ctx context.Context, service string) error {
	if _, err := s.run.Run(ctx, "sudo", "systemctl", "restart", service); err != nil {
		return fmt.Errorf("restarting %s: %w", service, err)
	}
	return nil
}

// Enable marks a systemd service to start at boot.
func (s *Services) Enable(ctx context.Context, service string) error {
	if _, err := s.run.Run(ctx, "sudo", "systemctl", "enable", service); err != nil {
		return fmt.Errorf("enabling %s: %w", service, err)
	}
	return nil
}

// PackageInstalled reports whether an OS package is installed (dpkg).
func (s *Services) PackageInstalled(ctx context.Context, pkg string) bool {
	out, err := s.run.Run(ctx, "dpkg", "-s", pkg)
	return err == nil && strings.Contains(out, "Status: install ok installed")
}

// InstallPackage installs an OS package via apt-get.
func (s *Services) InstallPackage(ctx context.Context, pkg string) error {
	if _, err := s.run.Run(ctx, "sudo", "apt-get", "install", "-y", pkg); err != nil {
		return fmt.Errorf("installing %s: %w", pkg, err)
	}
	return nil
}

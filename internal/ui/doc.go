// Package ui provides terminal UI components for the djanbee CLI.
//
// This package uses Lipgloss to render polished terminal output for
// deployment commands. Components fall into two groups: "run once"
// output (banners, progress lists, result boxes) and the Console, which
// supports in-place redraws for the interactive widgets.
//
// # Architecture
//
// The main component types:
//
//   - Console: Renderer implementation for interactive widgets, plus
//     status-line helpers (Lookup, Progress, StepSuccess, ...)
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure/warning boxes with styled information
//   - CommandOutput: Captured external command output for verbose mode
//
// Multi-step commands are orchestrated by Flow, which manages the
// banner, progress and result display around an operation.
//
// # Usage Pattern
//
// Setup and configure commands use this package by:
//
//  1. Creating a Flow with command metadata
//  2. Calling Run() with their operation function
//  3. The operation reports progress via a step callback
//  4. Flow handles all UI rendering automatically
//
// Example:
//
//	flow := ui.NewFlow(ui.FlowConfig{
//	    Title:      "Project Setup",
//	    Command:    "djanbee setup",
//	    Params:     map[string]string{"Project": "blog"},
//	    TotalSteps: 3,
//	    Verbose:    verbose,
//	})
//
//	err := flow.Run(ctx, func(onStep ui.StepCallback) error {
//	    onStep(1, "Creating virtual environment", ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, "Creating virtual environment", ui.StepComplete, "")
//	    return nil
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled via the DJANBEE_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly. Set DJANBEE_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable logging output.
//
// # Verbose Mode
//
// When --verbose is passed to a command, the CommandOutput component
// displays captured pip or systemctl output in a styled box after the
// result. This is useful for debugging failed installs or service
// restarts.
package ui

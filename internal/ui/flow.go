package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// FlowConfig holds configuration for a multi-step command flow
type FlowConfig struct {
	Title           string            // Flow title (e.g., "Project Setup")
	Command         string            // Full command (e.g., "djanbee setup")
	Params          map[string]string // Parameters to display in the banner
	TotalSteps      int               // Total number of steps (for progress)
	StepNames       []string          // Names for each step
	Troubleshooting []string          // Tips shown when the flow fails
	Verbose         bool              // Whether to show captured command output
	Output          io.Writer         // Output writer (default: os.Stdout)
}

// Flow orchestrates the UI for a multi-step operation. It manages the
// banner, progress and result display, and provides a callback for
// reporting per-step progress.
type Flow struct {
	config        FlowConfig
	header        *Header
	progress      *Progress
	output        io.Writer
	capturedTitle string
	captured      string
	startTime     time.Time
	width         int
}

// NewFlow creates a new flow for a multi-step command
func NewFlow(config FlowConfig) *Flow {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	var prog *Progress
	if config.TotalSteps > 0 {
		prog = NewProgress("", config.TotalSteps)
		prog.SetWidth(width)
		if len(config.StepNames) > 0 {
			prog.SetStepNames(config.StepNames)
		}
	}

	return &Flow{
		config:   config,
		header:   header,
		progress: prog,
		output:   config.Output,
		width:    width,
	}
}

// Operation is the function signature for the work executed by a flow.
// The operation receives a StepCallback to report progress.
type Operation func(onStep StepCallback) error

// Run executes the operation with UI updates. It displays the banner,
// tracks progress, and shows the result.
func (f *Flow) Run(ctx context.Context, operation Operation) error {
	_, err := f.RunWithResult(ctx, func(onStep StepCallback) (map[string]string, error) {
		return nil, operation(onStep)
	})
	return err
}

// RunWithResult executes the operation and displays the details it
// returns in the success box.
func (f *Flow) RunWithResult(ctx context.Context, operation func(onStep StepCallback) (map[string]string, error)) (map[string]string, error) {
	f.startTime = time.Now()

	_, _ = fmt.Fprintln(f.output, f.header.Render())
	_, _ = fmt.Fprintln(f.output)

	details, err := operation(f.stepCallback())
	duration := time.Since(f.startTime)

	if err != nil {
		f.printFailure(err)
	} else {
		f.printSuccess(details, duration)
	}

	return details, err
}

// SetCapturedOutput stores external command output for verbose display
func (f *Flow) SetCapturedOutput(title, output string) {
	f.capturedTitle = title
	f.captured = output
}

func (f *Flow) stepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if f.progress == nil {
			return
		}

		if name != "" && stepNumber > 0 && stepNumber <= len(f.progress.Steps) {
			f.progress.Steps[stepNumber-1].Name = name
		}

		f.progress.UpdateStep(stepNumber, status, message)

		if status == StepComplete || status == StepFailed || status == StepSkipped {
			step := f.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprintln(f.output, f.progress.renderStepLine(step))
		} else if status == StepRunning {
			// Will be overwritten when the step resolves
			step := f.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprint(f.output, f.progress.renderStepLine(step)+"\r")
		}
	}
}

func (f *Flow) printSuccess(details map[string]string, duration time.Duration) {
	_, _ = fmt.Fprintln(f.output)

	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = duration.Round(time.Millisecond).String()

	result := NewSuccessResult(f.config.Title+" complete", details)
	result.SetWidth(f.width)
	_, _ = fmt.Fprintln(f.output, result.Render())

	f.printCapturedOutput()
}

func (f *Flow) printFailure(err error) {
	_, _ = fmt.Fprintln(f.output)

	result := NewFailureResult(f.config.Title+" failed", err, f.config.Troubleshooting)
	result.SetWidth(f.width)
	_, _ = fmt.Fprintln(f.output, result.Render())

	f.printCapturedOutput()
}

func (f *Flow) printCapturedOutput() {
	if !f.config.Verbose || f.captured == "" {
		return
	}
	_, _ = fmt.Fprintln(f.output)
	box := NewCommandOutput(f.capturedTitle, f.captured)
	box.SetWidth(f.width)
	box.SetMaxLines(30)
	_, _ = fmt.Fprintln(f.output, box.Render())
}

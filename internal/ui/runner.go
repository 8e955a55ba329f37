package ui

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StepStatus is the state of one step of an operation
type StepStatus int

const (
	StepRunning StepStatus = iota
	StepComplete
	StepFailed
)

// StepCallback reports progress of a step by name. note is optional
// (e.g., "HTTP 200", "invalid_auth").
type StepCallback func(name string, status StepStatus, note string)

// Operation is the work driven by a Runner. The returned details are shown
// in the success box.
type Operation func(onStep StepCallback) (map[string]string, error)

// RunnerConfig holds the presentation of a command
type RunnerConfig struct {
	Title   string            // e.g., "Credential check"
	Command string            // e.g., "neviweb-cfg validate"
	Params  map[string]string // shown in the header
	Output  io.Writer         // default: os.Stdout

	// Troubleshooting returns tips for a failed operation
	Troubleshooting func(err error) []string
}

// Runner prints header, step lines and result for a short operation.
type Runner struct {
	config RunnerConfig
	output io.Writer
	width  int
	now    func() time.Time
}

// NewRunner creates a runner for a command
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &Runner{
		config: config,
		output: config.Output,
		width:  GetTerminalWidth(),
		now:    time.Now,
	}
}

// SetWidth overrides the detected terminal width
func (r *Runner) SetWidth(width int) *Runner {
	r.width = width
	return r
}

// Run executes operation and prints its outcome. The operation's error is
// returned unchanged.
func (r *Runner) Run(operation Operation) (map[string]string, error) {
	start := r.now()

	header := NewHeader(r.config.Title, r.config.Command, r.config.Params).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := operation(r.onStep)
	elapsed := r.now().Sub(start)

	_, _ = fmt.Fprintln(r.output)
	if err != nil {
		var tips []string
		if r.config.Troubleshooting != nil {
			tips = r.config.Troubleshooting(err)
		}
		result := NewFailureResult(r.config.Title+" failed", err, tips).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
		return details, err
	}

	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = elapsed.Round(time.Millisecond).String()

	result := NewSuccessResult(r.config.Title+" complete", details).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
	return details, nil
}

func (r *Runner) onStep(name string, status StepStatus, note string) {
	line := renderStepLine(name, status, note)
	if status == StepRunning {
		// overwritten by the completion line
		_, _ = fmt.Fprint(r.output, line+"\r")
		return
	}
	_, _ = fmt.Fprintln(r.output, line)
}

func renderStepLine(name string, status StepStatus, note string) string {
	var line string
	switch status {
	case StepComplete:
		line = StepCompleteStyle.Render("  " + StepMarkerComplete + " " + name)
	case StepFailed:
		line = StepFailedStyle.Render("  " + FailureMarker + " " + name)
	default:
		line = StepRunningStyle.Render("  " + StepMarkerRunning + " " + name + "...")
	}
	if note != "" {
		line += " " + StepNoteStyle.Render("("+note+")")
	}
	return line
}

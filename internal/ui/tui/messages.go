// Package tui provides a Bubble Tea-based terminal UI for stack deployment.
package tui

import "github.com/ollamastack/ollamastack/internal/orchestration"

// ProgressMsg carries a deployment event from the workflow goroutine.
type ProgressMsg struct {
	Event orchestration.Event
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the deployment is complete.
type DoneMsg struct {
	Result *orchestration.Result
}

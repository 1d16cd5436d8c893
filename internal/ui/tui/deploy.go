package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ollamastack/ollamastack/internal/orchestration"
)

// RunDeployTUI wraps the deployment workflow with a Bubble Tea TUI.
// deployFn runs the workflow, sending progress events on the channel,
// and returns the deployment result.
func RunDeployTUI(
	ctx context.Context,
	deployFn func(ch chan<- orchestration.Event) (*orchestration.Result, error),
	stackName, region string,
) (*orchestration.Result, error) {
	m := NewDeployModel(stackName, region)

	p := tea.NewProgram(m, tea.WithContext(ctx))

	// Run the workflow in a background goroutine.
	go func() {
		ch := make(chan orchestration.Event, 10)
		done := make(chan struct{})
		var result *orchestration.Result
		var deployErr error
		go func() {
			defer close(ch)
			defer close(done)
			result, deployErr = deployFn(ch)
		}()

		for e := range ch {
			p.Send(ProgressMsg{Event: e})
		}

		<-done
		if deployErr != nil {
			p.Send(ErrMsg{Err: deployErr})
			return
		}
		p.Send(DoneMsg{Result: result})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return nil, fm.Err
	}
	if fm.Result == nil {
		return nil, fmt.Errorf("deployment interrupted")
	}
	return fm.Result, nil
}

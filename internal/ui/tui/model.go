package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ollamastack/ollamastack/internal/orchestration"
	"github.com/ollamastack/ollamastack/internal/platform/aws"
)

// Step represents one workflow phase for display.
type Step struct {
	Name   string
	Key    string
	Done   bool
	Active bool
}

// Model is the Bubble Tea model for the deploy view.
type Model struct {
	StackName string
	Region    string

	Steps       []Step
	StackStatus aws.StackStatus
	LastMessage string

	StartTime time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool
	Result *orchestration.Result
}

// NewDeployModel creates a model for the deploy command TUI.
func NewDeployModel(stackName, region string) Model {
	return Model{
		StackName: stackName,
		Region:    region,
		StartTime: time.Now(),
		Steps: []Step{
			{Name: "Key Pair", Key: orchestration.PhaseKeyPair},
			{Name: "Template", Key: orchestration.PhaseTemplate},
			{Name: "Submit Stack", Key: orchestration.PhaseSubmit},
			{Name: "Stack Creation", Key: orchestration.PhaseStack},
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ProgressMsg:
		m.applyEvent(msg.Event)

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Result = msg.Result
		for i := range m.Steps {
			m.Steps[i].Done = true
			m.Steps[i].Active = false
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(e orchestration.Event) {
	idx := -1
	for i, step := range m.Steps {
		if step.Key == e.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Everything before the current phase has finished.
	for i := 0; i < idx; i++ {
		m.Steps[i].Done = true
		m.Steps[i].Active = false
	}
	m.Steps[idx].Active = true

	m.LastMessage = e.Message
	if e.Status != "" {
		m.StackStatus = e.Status
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderSteps(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("ollamastack: %s", m.StackName)
	if m.Region != "" {
		title += fmt.Sprintf(" (%s)", m.Region)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Done:
		status += readyStyle.Render("Ready")
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.StackStatus != "":
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + dimStyle.Render(string(m.StackStatus))
	default:
		status += dimStyle.Render("Starting...")
	}
	b.WriteString(status)
	b.WriteString("\n\n")
}

func renderSteps(b *strings.Builder, m Model) {
	for _, step := range m.Steps {
		mark := pending
		style := dimStyle
		switch {
		case step.Done:
			mark = checkMark
			style = readyStyle
		case step.Active && m.Err != nil:
			mark = crossMark
			style = failedStyle
		case step.Active:
			mark = currentSpinner(m.SpinnerFrame)
			style = activeStyle
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(mark), style.Render(step.Name)))
	}

	if m.LastMessage != "" {
		b.WriteString(dimStyle.Render("      " + m.LastMessage))
		b.WriteString("\n")
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime).Round(time.Second))
	b.WriteString(footerStyle.Render(fmt.Sprintf("elapsed %s  |  q to quit", elapsed)))
	b.WriteString("\n")
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

// Package ui renders a run as a bubbletea program. The Update loop is the
// control goroutine: every runner event flows through it, so controller
// methods are only ever called from here.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"pixleon/task"
)

// FileRow is one processed file in the outcome list.
type FileRow struct {
	Input  string
	Kind   task.Kind
	Detail string
}

func (r FileRow) FilterValue() string { return r.Input }
func (r FileRow) Title() string       { return filepath.Base(r.Input) }
func (r FileRow) Description() string {
	switch r.Kind {
	case task.KindSuccess:
		return fmt.Sprintf("✓ %s", r.Detail)
	case task.KindCancelled:
		return "⏹️  Cancelled"
	default:
		return fmt.Sprintf("❌ %s", r.Detail)
	}
}

// eventMsg wraps one runner event for the Update loop.
type eventMsg struct {
	ev task.Event
}

// eventsClosedMsg signals that the runner's channel is drained.
type eventsClosedMsg struct{}

// waitForEvent blocks on the runner channel and feeds the next event into
// the program. Re-issued after every received event.
func waitForEvent(events <-chan task.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{ev: ev}
	}
}

// RunModel displays one batch or single run: an overall progress bar, a
// scrolling list of per-file outcomes and the final summary.
type RunModel struct {
	title  string
	ctrl   *task.Controller
	events <-chan task.Event

	completed int
	total     int
	rows      []FileRow
	fileList  list.Model
	prog      progress.Model

	status     string
	cancelling bool
	done       bool
	quitting   bool

	width  int
	height int
}

// NewRunModel wires a model to an already-started run. Events must be the
// channel returned by the controller's start call.
func NewRunModel(title string, ctrl *task.Controller, events <-chan task.Event, total int) RunModel {
	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Processed Files"
	fileList.SetShowStatusBar(false)
	fileList.SetFilteringEnabled(false)

	return RunModel{
		title:    title,
		ctrl:     ctrl,
		events:   events,
		total:    total,
		fileList: fileList,
		prog:     progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model
func (m RunModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
			m.ctrl.Cancel()
			m.cancelling = true
		case "c":
			if !m.done {
				m.ctrl.Cancel()
				m.cancelling = true
			}
		case "enter":
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-4, msg.Height/2)

	case eventMsg:
		m.ctrl.HandleEvent(msg.ev)

		switch ev := msg.ev.(type) {
		case task.StartedEvent:
			m.total = ev.Total

		case task.ItemEvent:
			m.rows = append(m.rows, FileRow{
				Input:  ev.Outcome.Input,
				Kind:   ev.Outcome.Kind,
				Detail: ev.Outcome.Detail,
			})
			items := make([]list.Item, len(m.rows))
			for i, row := range m.rows {
				items[i] = row
			}
			m.fileList.SetItems(items)

		case task.ProgressEvent:
			m.completed = ev.Completed
			m.total = ev.Total

		case task.DoneEvent:
			m.done = true
			if ev.Status != "" {
				m.status = ev.Status
			} else {
				m.status = m.ctrl.Aggregate().Summary()
			}
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		// normal end of run: stay open so the user can read the summary,
		// quit on the next key
		if m.done {
			return m, nil
		}
		// channel closed without a terminal event; nothing more can arrive
		m.done = true
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m RunModel) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(m.title)

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}
	progressView := fmt.Sprintf("Progress: %s (%d/%d)", m.prog.ViewAs(percent), m.completed, m.total)

	statusView := ""
	switch {
	case m.done:
		statusView = SuccessStyle.Render(m.status)
	case m.cancelling:
		statusView = CancelledStyle.Render("Cancelling... finishing current file")
	default:
		statusView = ProcessingStyle.Render("Processing...")
	}

	controls := "Controls: [c] Cancel  [q] Quit"
	if m.done {
		controls = "Controls: [q] Quit"
	}

	sections := []string{
		header,
		progressView,
		m.fileList.View(),
		statusView,
		controls,
	}

	return strings.Join(sections, "\n\n")
}

// Done reports whether the run reached its terminal event.
func (m RunModel) Done() bool { return m.done }

// Status is the final status line, valid once Done.
func (m RunModel) Status() string { return m.status }

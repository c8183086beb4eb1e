package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox-control/internal/backend"
	"github.com/atomicstack/listbox-control/internal/logging"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// Watch attaches a file watcher whose events replace the rendered menu.
func (m *Model) Watch(w *backend.Watcher) {
	m.backend = w
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	m.applyDefinition(evt.Definition)
	m.infoMsg = "Menu file changed: " + evt.Path
}

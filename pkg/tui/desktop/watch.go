package desktop

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/deck/pkg/store"
	"tableflip.dev/deck/pkg/tui/events"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, blobs store.Blobs) tea.Cmd {
	if blobs == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := blobs.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads every record-backed content. Providers read a
// few small blobs each, so a change to any key refreshes them all.
func (m *Model) handleWatchEvent(ev store.Event) {
	msg := events.RecordsChangedMsg{}
	if ev.Type == store.EventKeyChanged {
		msg.Key = ev.Key
	}
	m.note(msg)
	m.refresh()
}

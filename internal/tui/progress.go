package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pjbench/internal/stats"
)

// Progress drives a Model on out while work runs in the caller's goroutine.
type Progress struct {
	updates chan stats.ProgressUpdate
	done    chan struct{}
}

// StartProgress launches the progress view. Passing a nil writer disables the
// view: Updates returns nil and Stop is a no-op.
func StartProgress(title string, out io.Writer) *Progress {
	if out == nil {
		return &Progress{}
	}

	updates := make(chan stats.ProgressUpdate, 64)
	program := tea.NewProgram(NewModel(title, updates), tea.WithOutput(out), tea.WithInput(nil))
	return startProgress(updates, func() {
		_, _ = program.Run()
	})
}

// startProgress runs view in the background. Once view returns, for instance
// after an interrupt, remaining updates are discarded so senders never block.
func startProgress(updates chan stats.ProgressUpdate, view func()) *Progress {
	p := &Progress{updates: updates, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		view()
		for range p.updates {
		}
	}()
	return p
}

func (p *Progress) Updates() chan<- stats.ProgressUpdate {
	if p.updates == nil {
		return nil
	}
	return p.updates
}

// Stop closes the update stream and waits for the view to exit.
func (p *Progress) Stop() {
	if p.updates == nil {
		return
	}
	close(p.updates)
	<-p.done
}

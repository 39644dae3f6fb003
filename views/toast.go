package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"smartimmo/locale"
	"smartimmo/styles"
)

type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// ToastMsg asks the app to show a transient notification
type ToastMsg struct {
	Text     string
	Kind     ToastKind
	Duration time.Duration
}

func ShowToast(text string, kind ToastKind, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Text: text, Kind: kind, Duration: d}
	}
}

type toastExpiredMsg struct {
	seq int
}

// Toaster shows the latest toast until it expires or is dismissed
type Toaster struct {
	current ToastMsg
	visible bool
	seq     int
}

func (t Toaster) Update(msg tea.Msg) (Toaster, tea.Cmd) {
	switch msg := msg.(type) {
	case ToastMsg:
		t.current = msg
		t.visible = true
		t.seq++
		seq := t.seq
		return t, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})
	case toastExpiredMsg:
		if msg.seq == t.seq {
			t.visible = false
		}
	}
	return t, nil
}

func (t Toaster) Dismiss() Toaster {
	t.visible = false
	return t
}

func (t Toaster) Current() (ToastMsg, bool) {
	return t.current, t.visible
}

func (t Toaster) View() string {
	if !t.visible {
		return ""
	}
	if t.current.Kind == ToastError {
		return styles.ToastError.Render(t.current.Text) + styles.Muted.Render("[esc] "+locale.T(locale.Close))
	}
	return styles.ToastInfo.Render(t.current.Text)
}

// Package notify delivers best-effort system notifications. Delivery
// failures are logged and swallowed; a missing or denied notification
// backend is never an error.
package notify

import (
	"os/exec"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
)

// Notifier is the notification side-effect collaborator.
type Notifier interface {
	Notify(title, body string)
}

// DesktopNotifier posts notifications via the platform's desktop
// notification command.
type DesktopNotifier struct{}

// NewDesktopNotifier returns a best-effort desktop notifier.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Notify posts a notification and swallows any failure.
func (n *DesktopNotifier) Notify(title, body string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := `display notification "` + body + `" with title "` + title + `"`
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		path, err := exec.LookPath("notify-send")
		if err != nil {
			log.Debug().Msg("notify-send not available")
			return
		}
		cmd = exec.Command(path, title, body)
	default:
		return
	}

	if err := cmd.Start(); err != nil {
		log.Debug().Err(err).Str("title", title).Msg("notification failed")
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}

// Recorder is a Notifier for tests that captures notifications instead
// of posting them.
type Recorder struct {
	mu   sync.Mutex
	Sent []Message
}

// Message is one captured notification.
type Message struct {
	Title string
	Body  string
}

// Notify records the notification.
func (r *Recorder) Notify(title, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, Message{Title: title, Body: body})
}

// Count returns the number of captured notifications.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}

// Package sound produces the application's audio cues. Playback is
// fire-and-forget: failures are logged and never propagate to the
// scheduling engine.
package sound

import (
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Player is the audio side-effect collaborator. Starting an
// already-running alarm loop and stopping a stopped one are both
// no-ops.
type Player interface {
	PlayCompletion()
	PlayNotification()
	StartAlarmLoop()
	StopAlarmLoop()
}

// alarmPulseInterval is the repeat period of the alarm siren.
const alarmPulseInterval = time.Second

// CommandPlayer plays cues by shelling out to the platform's audio
// command, degrading to a terminal bell when none is available.
type CommandPlayer struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// NewCommandPlayer returns a Player backed by system commands.
func NewCommandPlayer() *CommandPlayer {
	return &CommandPlayer{}
}

// PlayCompletion plays the short completion chime.
func (p *CommandPlayer) PlayCompletion() {
	p.playCue("complete")
}

// PlayNotification plays the notification chime.
func (p *CommandPlayer) PlayNotification() {
	p.playCue("notify")
}

// StartAlarmLoop begins the repeating alarm pulse. No-op if the loop is
// already running.
func (p *CommandPlayer) StartAlarmLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopCh != nil {
		return
	}
	stop := make(chan struct{})
	p.stopCh = stop

	go func() {
		p.playCue("alarm")
		ticker := time.NewTicker(alarmPulseInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.playCue("alarm")
			}
		}
	}()
}

// StopAlarmLoop cancels the repeating alarm pulse. No-op if the loop is
// not running.
func (p *CommandPlayer) StopAlarmLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopCh == nil {
		return
	}
	close(p.stopCh)
	p.stopCh = nil
}

// playCue fires one audio cue without waiting for it to finish.
func (p *CommandPlayer) playCue(kind string) {
	cmd := cueCommand()
	if cmd == nil {
		// Terminal bell fallback.
		os.Stderr.WriteString("\a")
		return
	}
	if err := cmd.Start(); err != nil {
		log.Debug().Err(err).Str("cue", kind).Msg("audio cue failed")
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}

// cueCommand picks the platform audio command, or nil when none exists.
func cueCommand() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", "/System/Library/Sounds/Ping.aiff")
	case "linux":
		if path, err := exec.LookPath("paplay"); err == nil {
			return exec.Command(path, "/usr/share/sounds/freedesktop/stereo/bell.oga")
		}
	}
	return nil
}

// Recorder is a Player for tests that counts invocations instead of
// producing audio.
type Recorder struct {
	mu            sync.Mutex
	Completions   int
	Notifications int
	LoopStarts    int
	LoopStops     int
	looping       bool
}

// PlayCompletion records a completion cue.
func (r *Recorder) PlayCompletion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Completions++
}

// PlayNotification records a notification cue.
func (r *Recorder) PlayNotification() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notifications++
}

// StartAlarmLoop records a loop start, honoring no-op semantics.
func (r *Recorder) StartAlarmLoop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.looping {
		return
	}
	r.looping = true
	r.LoopStarts++
}

// StopAlarmLoop records a loop stop, honoring no-op semantics.
func (r *Recorder) StopAlarmLoop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.looping {
		return
	}
	r.looping = false
	r.LoopStops++
}

// Looping reports whether the recorded loop is currently running.
func (r *Recorder) Looping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.looping
}

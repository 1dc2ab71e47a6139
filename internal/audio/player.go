package audio

import (
	"log/slog"
	"os/exec"
	"sync"
)

// ExecPlayer plays ambient audio by spawning an external player binary
// (mpv, afplay, aplay...). Playback failures are logged and swallowed:
// audio is a side channel and must never affect the session.
type ExecPlayer struct {
	binary string
	logger *slog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewExecPlayer creates a player that spawns the given binary with the
// track path as its only argument.
func NewExecPlayer(binary string, logger *slog.Logger) *ExecPlayer {
	return &ExecPlayer{binary: binary, logger: logger}
}

// Start stops any current track and plays the one at path. With repeat set,
// the track is relaunched when the player process exits cleanly.
func (p *ExecPlayer) Start(path string, repeat bool) {
	for {
		p.mu.Lock()
		p.stopLocked()
		cmd := exec.Command(p.binary, path)
		if err := cmd.Start(); err != nil {
			p.mu.Unlock()
			p.logger.Warn("failed to start audio player", "binary", p.binary, "path", path, "error", err)
			return
		}
		p.cmd = cmd
		p.mu.Unlock()

		err := cmd.Wait()

		p.mu.Lock()
		interrupted := p.cmd != cmd
		if !interrupted {
			p.cmd = nil
		}
		p.mu.Unlock()

		if interrupted || err != nil || !repeat {
			if err != nil {
				p.logger.Debug("audio player exited", "path", path, "error", err)
			}
			return
		}
	}
}

// Stop kills the current player process, if any.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *ExecPlayer) stopLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		if err := p.cmd.Process.Kill(); err != nil {
			p.logger.Debug("failed to stop audio player", "error", err)
		}
	}
	p.cmd = nil
}

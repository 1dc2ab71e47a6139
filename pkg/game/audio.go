package game

import "github.com/defaltsimon/pac-adventure/pkg/events"

// AudioPlayer is the ambient audio collaborator. Playback is a fire-and-
// forget side channel; implementations report failures through their own
// logging, never to the engine.
type AudioPlayer interface {
	// Start plays the track at path, looping it when repeat is set.
	// Starting a new track implies stopping the previous one.
	Start(path string, repeat bool)
	// Stop ends the current track, if any.
	Stop()
}

// NopPlayer is the default AudioPlayer: it ignores everything.
type NopPlayer struct{}

func (NopPlayer) Start(path string, repeat bool) {}
func (NopPlayer) Stop()                          {}

// startMusic switches the ambient track. The previous track is stopped
// unconditionally, a MUSIC_CHANGE event is published, and playback itself
// runs in the background so a slow or panicking player cannot stall or
// corrupt the session.
func (g *Game) startMusic(path string) {
	g.audio.Stop()
	g.currentMusic = path
	g.events.Publish(events.TypeMusicChange, map[string]any{"path": path})

	player := g.audio
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.logger.Warn("audio player panicked", "path", path, "panic", r)
			}
		}()
		player.Start(path, true)
	}()
}

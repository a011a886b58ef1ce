package main

import "fmt"

// MediaController is the platform entry point to the media-control bus
type MediaController interface {
	Connect() (Bus, error)
}

// Bus is a live connection to the media-control bus
type Bus interface {
	FindActivePlayer() (Player, error)
	Close() error
}

// Player is a handle to one media player registered on the bus.
// A handle is only valid until the Bus it came from is closed.
type Player interface {
	Name() string
	Metadata() (Metadata, error)
	PlaybackStatus() (PlaybackStatus, error)
	Volume() (float64, error)
	SetVolume(volume float64) error

	Play() error
	Pause() error
	PlayPause() error
	Stop() error
	Next() error
	Previous() error
}

// Metadata is a snapshot of the track the player reports.
// A nil Title or nil slice means the player did not report that field.
type Metadata struct {
	Title        *string
	Artists      []string
	AlbumArtists []string
}

// TrackTitle returns the title, if the player reported one
func (m Metadata) TrackTitle() (string, bool) {
	if m.Title == nil {
		return "", false
	}
	return *m.Title, true
}

// LeadArtist returns the first listed artist
func (m Metadata) LeadArtist() (string, bool) {
	if len(m.Artists) == 0 {
		return "", false
	}
	return m.Artists[0], true
}

// HasAlbumArtist reports whether the album-artist field was present at all.
// Players that are registered but idle usually omit it.
func (m Metadata) HasAlbumArtist() bool {
	return m.AlbumArtists != nil
}

// PlaybackStatus mirrors the MPRIS PlaybackStatus property
type PlaybackStatus int

const (
	StatusStopped PlaybackStatus = iota
	StatusPlaying
	StatusPaused
)

func (s PlaybackStatus) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// ParsePlaybackStatus accepts the MPRIS spellings ("Playing", "Paused", "Stopped")
// and the lowercase AppleScript player states ("playing", "paused", "stopped").
func ParsePlaybackStatus(s string) (PlaybackStatus, error) {
	switch s {
	case "Playing", "playing":
		return StatusPlaying, nil
	case "Paused", "paused":
		return StatusPaused, nil
	case "Stopped", "stopped":
		return StatusStopped, nil
	}
	return StatusStopped, fmt.Errorf("unknown playback status %q", s)
}

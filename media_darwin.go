//go:build darwin
// +build darwin

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// appleScriptPlayers lists the supported applications in priority order
var appleScriptPlayers = []string{"Music", "Spotify"}

// AppleScriptController implements MediaController using AppleScript for macOS
type AppleScriptController struct {
	preferred string
	timeout   time.Duration
}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(cfg Config) MediaController {
	return &AppleScriptController{
		preferred: cfg.Player,
		timeout:   cfg.BusTimeout(),
	}
}

func (a *AppleScriptController) Connect() (Bus, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, fmt.Errorf("osascript unavailable: %w", err)
	}
	return &appleScriptBus{preferred: a.preferred, timeout: a.timeout}, nil
}

type appleScriptBus struct {
	preferred string
	timeout   time.Duration
}

func (b *appleScriptBus) run(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("osascript: %s: %w", msg, err)
		}
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}

func (b *appleScriptBus) Close() error { return nil }

// FindActivePlayer checks the supported applications for one that is running
// and not stopped
func (b *appleScriptBus) FindActivePlayer() (Player, error) {
	for _, app := range appleScriptPlayers {
		if b.preferred != "" && !strings.EqualFold(app, b.preferred) {
			continue
		}
		checkScript := fmt.Sprintf(`
			tell application "System Events"
				if exists (process "%s") then
					tell application "%s"
						if player state is not stopped then
							return "true"
						end if
					end tell
				end if
				return "false"
			end tell`, app, app)

		result, err := b.run(checkScript)
		if err == nil && result == "true" {
			return &appleScriptPlayer{bus: b, app: app}, nil
		}
	}
	return nil, errors.New("no active music player found")
}

type appleScriptPlayer struct {
	bus *appleScriptBus
	app string
}

func (p *appleScriptPlayer) Name() string { return p.app }

func (p *appleScriptPlayer) tell(body string) (string, error) {
	return p.bus.run(fmt.Sprintf("tell application %q\n%s\nend tell", p.app, body))
}

func (p *appleScriptPlayer) Metadata() (Metadata, error) {
	output, err := p.tell(`
		if player state is stopped then
			return ""
		end if
		set trackName to name of current track
		set trackArtist to artist of current track
		set trackAlbumArtist to album artist of current track
		return trackName & tab & trackArtist & tab & trackAlbumArtist`)
	if err != nil {
		return Metadata{}, err
	}
	return parseAppleScriptMetadata(output)
}

// parseAppleScriptMetadata splits the tab-separated name, artist and album
// artist. Empty output means there is no current track.
func parseAppleScriptMetadata(output string) (Metadata, error) {
	if output == "" {
		return Metadata{}, nil
	}
	parts := strings.Split(output, "\t")
	if len(parts) != 3 {
		return Metadata{}, fmt.Errorf("unexpected metadata format: got %d parts, expected 3", len(parts))
	}

	title := strings.TrimSpace(parts[0])
	md := Metadata{Title: &title, AlbumArtists: []string{}}
	if artist := strings.TrimSpace(parts[1]); artist != "" {
		md.Artists = []string{artist}
	}
	if albumArtist := strings.TrimSpace(parts[2]); albumArtist != "" {
		md.AlbumArtists = []string{albumArtist}
	}
	return md, nil
}

func (p *appleScriptPlayer) PlaybackStatus() (PlaybackStatus, error) {
	output, err := p.tell("return player state as string")
	if err != nil {
		return StatusStopped, err
	}
	return ParsePlaybackStatus(output)
}

// Volume scales AppleScript's 0-100 sound volume to 0..1
func (p *appleScriptPlayer) Volume() (float64, error) {
	output, err := p.tell("return sound volume")
	if err != nil {
		return 0, err
	}
	vol, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("failed to parse volume: %w", err)
	}
	return float64(vol) / 100, nil
}

func (p *appleScriptPlayer) SetVolume(volume float64) error {
	_, err := p.tell(fmt.Sprintf("set sound volume to %d", int(volume*100+0.5)))
	return err
}

func (p *appleScriptPlayer) Play() error      { return p.verb("play") }
func (p *appleScriptPlayer) Pause() error     { return p.verb("pause") }
func (p *appleScriptPlayer) PlayPause() error { return p.verb("playpause") }
func (p *appleScriptPlayer) Next() error      { return p.verb("next track") }
func (p *appleScriptPlayer) Previous() error  { return p.verb("previous track") }

func (p *appleScriptPlayer) Stop() error {
	// Spotify's dictionary has no stop command
	if p.app == "Spotify" {
		return errors.New("Spotify does not support stop")
	}
	return p.verb("stop")
}

func (p *appleScriptPlayer) verb(v string) error {
	_, err := p.tell(v)
	return err
}

//go:build linux
// +build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	mprisPrefix      = "org.mpris.MediaPlayer2."
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"

	dbusListNames = "org.freedesktop.DBus.ListNames"
	dbusPropGet   = "org.freedesktop.DBus.Properties.Get"
	dbusPropSet   = "org.freedesktop.DBus.Properties.Set"
)

// MPRISController implements MediaController over the D-Bus session bus
type MPRISController struct {
	preferred string
	timeout   time.Duration
}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(cfg Config) MediaController {
	return &MPRISController{
		preferred: cfg.Player,
		timeout:   cfg.BusTimeout(),
	}
}

func (c *MPRISController) Connect() (Bus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &mprisBus{conn: conn, preferred: c.preferred, timeout: c.timeout}, nil
}

type mprisBus struct {
	conn      *dbus.Conn
	preferred string
	timeout   time.Duration
}

func (b *mprisBus) call(obj dbus.BusObject, method string, args ...interface{}) *dbus.Call {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return obj.CallWithContext(ctx, method, 0, args...)
}

func (b *mprisBus) Close() error {
	return b.conn.Close()
}

// FindActivePlayer picks the first Playing player, then the first Paused one,
// then whichever player sorts first.
func (b *mprisBus) FindActivePlayer() (Player, error) {
	var names []string
	if err := b.call(b.conn.BusObject(), dbusListNames).Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}

	candidates := mprisNames(names, b.preferred)
	if len(candidates) == 0 {
		if b.preferred != "" {
			return nil, fmt.Errorf("no MPRIS player matching %q", b.preferred)
		}
		return nil, errors.New("no MPRIS players registered")
	}

	players := make([]*mprisPlayer, len(candidates))
	statuses := make([]PlaybackStatus, len(candidates))
	for i, name := range candidates {
		players[i] = b.player(name)
		// A player that cannot report its status is treated as stopped
		if status, err := players[i].PlaybackStatus(); err == nil {
			statuses[i] = status
		}
	}

	return players[pickActive(statuses)], nil
}

func (b *mprisBus) player(busName string) *mprisPlayer {
	return &mprisPlayer{
		bus:     b,
		busName: busName,
		obj:     b.conn.Object(busName, dbus.ObjectPath(mprisPath)),
	}
}

// mprisNames filters bus names down to MPRIS players, optionally narrowed to
// those whose short name contains preferred, in sorted order.
func mprisNames(names []string, preferred string) []string {
	var out []string
	for _, name := range names {
		short, ok := strings.CutPrefix(name, mprisPrefix)
		if !ok {
			continue
		}
		if preferred != "" && !strings.Contains(strings.ToLower(short), strings.ToLower(preferred)) {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// pickActive returns the index of the player to control
func pickActive(statuses []PlaybackStatus) int {
	for _, want := range []PlaybackStatus{StatusPlaying, StatusPaused} {
		for i, s := range statuses {
			if s == want {
				return i
			}
		}
	}
	return 0
}

type mprisPlayer struct {
	bus     *mprisBus
	busName string
	obj     dbus.BusObject
}

func (p *mprisPlayer) Name() string {
	return strings.TrimPrefix(p.busName, mprisPrefix)
}

func (p *mprisPlayer) property(name string) (dbus.Variant, error) {
	var v dbus.Variant
	if err := p.bus.call(p.obj, dbusPropGet, mprisPlayerIface, name).Store(&v); err != nil {
		return v, fmt.Errorf("get %s: %w", name, err)
	}
	return v, nil
}

func (p *mprisPlayer) Metadata() (Metadata, error) {
	v, err := p.property("Metadata")
	if err != nil {
		return Metadata{}, err
	}
	fields, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return Metadata{}, fmt.Errorf("unexpected Metadata type %s", v.Signature())
	}
	return parseMetadata(fields), nil
}

// parseMetadata reads the xesam fields we report on. Some players send
// artists as a plain string instead of the specified string array.
func parseMetadata(fields map[string]dbus.Variant) Metadata {
	var md Metadata
	if v, ok := fields["xesam:title"]; ok {
		if title, ok := v.Value().(string); ok {
			md.Title = &title
		}
	}
	md.Artists = stringList(fields, "xesam:artist")
	md.AlbumArtists = stringList(fields, "xesam:albumArtist")
	return md
}

func stringList(fields map[string]dbus.Variant, key string) []string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	switch val := v.Value().(type) {
	case []string:
		if val == nil {
			return []string{}
		}
		return val
	case string:
		return []string{val}
	}
	return nil
}

func (p *mprisPlayer) PlaybackStatus() (PlaybackStatus, error) {
	v, err := p.property("PlaybackStatus")
	if err != nil {
		return StatusStopped, err
	}
	s, ok := v.Value().(string)
	if !ok {
		return StatusStopped, fmt.Errorf("unexpected PlaybackStatus type %s", v.Signature())
	}
	return ParsePlaybackStatus(s)
}

func (p *mprisPlayer) Volume() (float64, error) {
	v, err := p.property("Volume")
	if err != nil {
		return 0, err
	}
	vol, ok := v.Value().(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected Volume type %s", v.Signature())
	}
	return vol, nil
}

func (p *mprisPlayer) SetVolume(volume float64) error {
	call := p.bus.call(p.obj, dbusPropSet, mprisPlayerIface, "Volume", dbus.MakeVariant(volume))
	if call.Err != nil {
		return fmt.Errorf("set Volume: %w", call.Err)
	}
	return nil
}

// invoke calls a transport method after checking its Can* capability.
// If the capability cannot be read the call is attempted anyway.
func (p *mprisPlayer) invoke(method, capability string) error {
	if v, err := p.property(capability); err == nil {
		if can, ok := v.Value().(bool); ok && !can {
			return fmt.Errorf("%s reports %s=false", p.Name(), capability)
		}
	}
	if call := p.bus.call(p.obj, mprisPlayerIface+"."+method); call.Err != nil {
		return fmt.Errorf("call %s: %w", method, call.Err)
	}
	return nil
}

func (p *mprisPlayer) Play() error      { return p.invoke("Play", "CanPlay") }
func (p *mprisPlayer) Pause() error     { return p.invoke("Pause", "CanPause") }
func (p *mprisPlayer) PlayPause() error { return p.invoke("PlayPause", "CanPause") }
func (p *mprisPlayer) Stop() error      { return p.invoke("Stop", "CanControl") }
func (p *mprisPlayer) Next() error      { return p.invoke("Next", "CanGoNext") }
func (p *mprisPlayer) Previous() error  { return p.invoke("Previous", "CanGoPrevious") }

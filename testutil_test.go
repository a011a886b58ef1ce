package main

import "errors"

var errFake = errors.New("fake facade failure")

// fakeController is an in-memory MediaController with injectable failures
type fakeController struct {
	connectErr error
	bus        *fakeBus
	connects   int
}

func (c *fakeController) Connect() (Bus, error) {
	c.connects++
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return c.bus, nil
}

type fakeBus struct {
	findErr error
	player  *fakePlayer
	closed  bool
}

func (b *fakeBus) FindActivePlayer() (Player, error) {
	if b.findErr != nil {
		return nil, b.findErr
	}
	return b.player, nil
}

func (b *fakeBus) Close() error {
	b.closed = true
	return nil
}

type fakePlayer struct {
	metadata    Metadata
	metadataErr error

	status      PlaybackStatus
	statusErr   error
	statusCalls int

	volume       float64
	volumeErr    error
	setVolumeErr error
	written      []float64

	transportErr error
	calls        []string
}

func (p *fakePlayer) Name() string { return "fake" }

func (p *fakePlayer) Metadata() (Metadata, error) {
	return p.metadata, p.metadataErr
}

func (p *fakePlayer) PlaybackStatus() (PlaybackStatus, error) {
	p.statusCalls++
	return p.status, p.statusErr
}

func (p *fakePlayer) Volume() (float64, error) {
	return p.volume, p.volumeErr
}

func (p *fakePlayer) SetVolume(v float64) error {
	if p.setVolumeErr != nil {
		return p.setVolumeErr
	}
	p.written = append(p.written, v)
	p.volume = v
	return nil
}

func (p *fakePlayer) transport(name string) error {
	p.calls = append(p.calls, name)
	return p.transportErr
}

func (p *fakePlayer) Play() error      { return p.transport("Play") }
func (p *fakePlayer) Pause() error     { return p.transport("Pause") }
func (p *fakePlayer) PlayPause() error { return p.transport("PlayPause") }
func (p *fakePlayer) Stop() error      { return p.transport("Stop") }
func (p *fakePlayer) Next() error      { return p.transport("Next") }
func (p *fakePlayer) Previous() error  { return p.transport("Previous") }

// newFakeController wires a controller to a single healthy player
func newFakeController(p *fakePlayer) *fakeController {
	return &fakeController{bus: &fakeBus{player: p}}
}

// trackMetadata builds metadata as a well-behaved player reports it
func trackMetadata(title string, artists ...string) Metadata {
	return Metadata{
		Title:        &title,
		Artists:      artists,
		AlbumArtists: []string{artists[0]},
	}
}

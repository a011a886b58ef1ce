package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DispatchOptions tunes output and volume behaviour
type DispatchOptions struct {
	// ShowStatus queries the playback status and prefixes report lines with a symbol
	ShowStatus  bool
	VolumeStep  float64
	Clamp       ClampPolicy
	StyleSymbol func(string) string
}

// Dispatcher runs one resolved Command against the active player
type Dispatcher struct {
	controller MediaController
	out        io.Writer
	logger     *zap.Logger
	opts       DispatchOptions
}

// NewDispatcher creates a Dispatcher writing its single output line to out
func NewDispatcher(controller MediaController, out io.Writer, logger *zap.Logger, opts DispatchOptions) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.VolumeStep <= 0 {
		opts.VolumeStep = defaultVolumeStep
	}
	if opts.Clamp == "" {
		opts.Clamp = ClampCorrected
	}
	return &Dispatcher{
		controller: controller,
		out:        out,
		logger:     logger,
		opts:       opts,
	}
}

// Dispatch acquires the active player and performs cmd on it.
// Nothing is written to out unless the whole command succeeds.
func (d *Dispatcher) Dispatch(cmd Command) error {
	d.logger.Debug("Dispatching command", zap.Stringer("command", cmd))

	bus, err := d.controller.Connect()
	if err != nil {
		return fmt.Errorf("connect: %w: %w", ErrNoBusConnection, err)
	}
	defer func() {
		if err := bus.Close(); err != nil {
			d.logger.Debug("Closing bus failed", zap.Error(err))
		}
	}()

	player, err := bus.FindActivePlayer()
	if err != nil {
		return fmt.Errorf("find active player: %w: %w", ErrNoActivePlayer, err)
	}
	d.logger.Debug("Found active player", zap.String("player", player.Name()))

	switch {
	case cmd.IsReport():
		return d.report(player, cmd)
	case cmd.IsTransport():
		return d.transport(player, cmd)
	case cmd.IsVolume():
		return d.volume(player, cmd)
	}
	return &UnrecognizedCommandError{Token: cmd.String()}
}

func (d *Dispatcher) report(player Player, cmd Command) error {
	md, err := player.Metadata()
	if err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	if !md.HasAlbumArtist() {
		d.logger.Debug("Player has no album artist, treating as nothing playing")
		return ErrEmptyMetadata
	}

	artist, ok := md.LeadArtist()
	if !ok {
		return fmt.Errorf("read artist: %w", ErrMetadataFieldMissing)
	}
	title, ok := md.TrackTitle()
	if !ok {
		return fmt.Errorf("read title: %w", ErrMetadataFieldMissing)
	}

	var symbol string
	if d.opts.ShowStatus {
		status, err := player.PlaybackStatus()
		if err != nil {
			return fmt.Errorf("get playback status: %w", err)
		}
		symbol = statusSymbol(status)
		if d.opts.StyleSymbol != nil {
			symbol = d.opts.StyleSymbol(symbol)
		}
	}

	return d.println(formatReport(cmd, artist, title, symbol))
}

func (d *Dispatcher) transport(player Player, cmd Command) error {
	var op func() error
	switch cmd {
	case TogglePlayPause:
		op = player.PlayPause
	case Play:
		op = player.Play
	case Pause:
		op = player.Pause
	case Stop:
		op = player.Stop
	case Next:
		op = player.Next
	case Previous:
		op = player.Previous
	}
	if err := op(); err != nil {
		return fmt.Errorf("%s: %w: %w", cmd, ErrUnsupportedOperation, err)
	}
	return nil
}

func (d *Dispatcher) volume(player Player, cmd Command) error {
	current, err := player.Volume()
	if err != nil {
		return fmt.Errorf("get volume: %w: %w", ErrUnsupportedOperation, err)
	}
	if cmd == GetVolume {
		return d.println(formatVolume(current))
	}

	proposed := current + d.opts.VolumeStep
	if cmd == LowerVolume {
		proposed = current - d.opts.VolumeStep
	}
	effective := clampVolume(d.opts.Clamp, cmd, proposed)
	d.logger.Debug("Setting volume",
		zap.Float64("current", current),
		zap.Float64("proposed", proposed),
		zap.Float64("effective", effective),
		zap.String("clamp", string(d.opts.Clamp)))

	if err := player.SetVolume(effective); err != nil {
		return fmt.Errorf("set volume: %w: %w", ErrVolumeWriteFailed, err)
	}
	return nil
}

func (d *Dispatcher) println(line string) error {
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

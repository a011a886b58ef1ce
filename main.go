package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the per-invocation wiring so tests can swap the controller
// and capture output
type app struct {
	stdout        io.Writer
	stderr        io.Writer
	newController func(Config) MediaController

	cfg    Config
	logger *zap.Logger
}

func newApp(stdout, stderr io.Writer, newController func(Config) MediaController) *app {
	return &app{
		stdout:        stdout,
		stderr:        stderr,
		newController: newController,
		cfg:           defaultConfig(),
		logger:        zap.NewNop(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playingctl <command>",
		Short: "Report on and control the active media player",
		Long: `playingctl talks to the active media player on the desktop session bus.

Report commands print one line:
  artist, song, both

Playback commands print nothing on success:
  pause_play, play, pause, stop, next, previous

Volume commands:
  get_volume      print the volume as a percentage
  raise_volume    raise the volume by one step
  lower_volume    lower the volume by one step`,
		ValidArgs:     Commands(),
		Args:          exactlyOneCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, errs := loadConfig(viper.New(), cmd.Flags())
			a.cfg = cfg
			a.logger = newLogger(a.stderr, cfg.Log.Verbose)
			printConfigWarnings(a.logger, errs)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := Resolve(args[0])
			if err != nil {
				return err
			}
			return a.dispatcher().Dispatch(command)
		},
	}

	flags := cmd.Flags()
	flags.StringP("player", "p", "", "Prefer the player whose name contains this text")
	flags.Bool("no-status", false, "Do not query playback status or print a status symbol")
	flags.StringP("color", "c", "", "Color for the status symbol (ANSI code or hex)")
	flags.Float64("step", defaultVolumeStep, "Volume step for raise_volume and lower_volume")
	flags.String("clamp", string(defaultClamp), "Volume clamp policy: corrected or legacy")
	flags.Int("timeout-ms", defaultTimeoutMs, "Timeout for each call to the media bus")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

func exactlyOneCommand(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one of %s, got %d arguments",
			ErrUnrecognizedCommand, strings.Join(Commands(), ", "), len(args))
	}
	return nil
}

func (a *app) dispatcher() *Dispatcher {
	opts := a.cfg.DispatchOptions()
	if a.cfg.UI.Color != "" {
		style := lipgloss.NewRenderer(a.stdout).NewStyle().Foreground(lipgloss.Color(a.cfg.UI.Color))
		opts.StyleSymbol = func(s string) string { return style.Render(s) }
	}
	return NewDispatcher(a.newController(a.cfg), a.stdout, a.logger, opts)
}

// execute runs one invocation and reports fatal errors on stderr.
// The returned error is what main classifies into an exit code.
func (a *app) execute(args []string) error {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.Execute()
	switch outcome := Classify(err); outcome {
	case OutcomeSuccess:
	case OutcomeNothingPlaying:
		a.logger.Debug("Nothing playing")
	default:
		a.logger.Debug("Command failed", zap.Stringer("outcome", outcome), zap.Error(err))
		a.printError(err)
	}
	return err
}

func (a *app) printError(err error) {
	errorStyle := lipgloss.NewRenderer(a.stderr).NewStyle().Foreground(lipgloss.Color("203"))
	fmt.Fprintln(a.stderr, errorStyle.Render("Error: "+err.Error()))
}

// newLogger builds a console zap logger on w. Warnings and above are always
// shown; verbose adds debug output.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func main() {
	err := newApp(os.Stdout, os.Stderr, NewMediaController).execute(os.Args[1:])
	os.Exit(Classify(err).ExitCode())
}

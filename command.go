package main

// Command is one of the fixed actions playingctl can perform
type Command int

const (
	ReportArtist Command = iota
	ReportSong
	ReportBoth
	TogglePlayPause
	Play
	Pause
	Stop
	Next
	Previous
	GetVolume
	RaiseVolume
	LowerVolume
)

// commandTokens is ordered by Command value
var commandTokens = [...]string{
	ReportArtist:    "artist",
	ReportSong:      "song",
	ReportBoth:      "both",
	TogglePlayPause: "pause_play",
	Play:            "play",
	Pause:           "pause",
	Stop:            "stop",
	Next:            "next",
	Previous:        "previous",
	GetVolume:       "get_volume",
	RaiseVolume:     "raise_volume",
	LowerVolume:     "lower_volume",
}

var commandsByToken = func() map[string]Command {
	m := make(map[string]Command, len(commandTokens))
	for c, tok := range commandTokens {
		m[tok] = Command(c)
	}
	return m
}()

// Resolve maps a command-line token to its Command. Matching is exact and
// case-sensitive; anything else yields an *UnrecognizedCommandError.
func Resolve(token string) (Command, error) {
	c, ok := commandsByToken[token]
	if !ok {
		return 0, &UnrecognizedCommandError{Token: token}
	}
	return c, nil
}

// Commands returns every accepted token in table order
func Commands() []string {
	out := make([]string, len(commandTokens))
	copy(out, commandTokens[:])
	return out
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandTokens) {
		return "unknown"
	}
	return commandTokens[c]
}

// IsReport reports whether c prints track metadata
func (c Command) IsReport() bool {
	return c == ReportArtist || c == ReportSong || c == ReportBoth
}

// IsTransport reports whether c is a playback control
func (c Command) IsTransport() bool {
	return c >= TogglePlayPause && c <= Previous
}

// IsVolume reports whether c reads or changes volume
func (c Command) IsVolume() bool {
	return c >= GetVolume && c <= LowerVolume
}

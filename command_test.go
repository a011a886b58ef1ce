package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve tests every token in the command vocabulary
func TestResolve(t *testing.T) {
	tests := []struct {
		token    string
		expected Command
	}{
		{"artist", ReportArtist},
		{"song", ReportSong},
		{"both", ReportBoth},
		{"pause_play", TogglePlayPause},
		{"play", Play},
		{"pause", Pause},
		{"stop", Stop},
		{"next", Next},
		{"previous", Previous},
		{"get_volume", GetVolume},
		{"raise_volume", RaiseVolume},
		{"lower_volume", LowerVolume},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			cmd, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
			assert.Equal(t, tt.token, cmd.String())
		})
	}
}

// TestResolveUnrecognized tests that near misses are rejected, not guessed
func TestResolveUnrecognized(t *testing.T) {
	tokens := []string{
		"",
		"Artist",
		"SONG",
		" artist",
		"artist ",
		"art",
		"pause-play",
		"playpause",
		"volume",
		"raise",
		"prev",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := Resolve(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnrecognizedCommand)

			var unrecognized *UnrecognizedCommandError
			require.True(t, errors.As(err, &unrecognized))
			assert.Equal(t, token, unrecognized.Token)
			assert.Equal(t, OutcomeUnrecognizedCommand, Classify(err))
		})
	}
}

func TestCommands(t *testing.T) {
	tokens := Commands()
	assert.Len(t, tokens, 12)

	for i, token := range tokens {
		cmd, err := Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, Command(i), cmd)
	}

	// Callers must not be able to change the table
	tokens[0] = "changed"
	assert.Equal(t, "artist", Commands()[0])
}

func TestCommandKinds(t *testing.T) {
	for _, token := range Commands() {
		cmd, _ := Resolve(token)
		kinds := 0
		for _, is := range []bool{cmd.IsReport(), cmd.IsTransport(), cmd.IsVolume()} {
			if is {
				kinds++
			}
		}
		assert.Equal(t, 1, kinds, "%s must belong to exactly one kind", token)
	}

	assert.True(t, ReportBoth.IsReport())
	assert.True(t, TogglePlayPause.IsTransport())
	assert.True(t, Previous.IsTransport())
	assert.True(t, GetVolume.IsVolume())
	assert.True(t, LowerVolume.IsVolume())
	assert.Equal(t, "unknown", Command(99).String())
}

func BenchmarkResolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Resolve("lower_volume")
	}
}

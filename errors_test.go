package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Outcome
	}{
		{"nil", nil, OutcomeSuccess},
		{"empty metadata", ErrEmptyMetadata, OutcomeNothingPlaying},
		{"unrecognized", &UnrecognizedCommandError{Token: "x"}, OutcomeUnrecognizedCommand},
		{"no bus", fmt.Errorf("connect: %w: %w", ErrNoBusConnection, errFake), OutcomePlayerUnavailable},
		{"no player", fmt.Errorf("find: %w", ErrNoActivePlayer), OutcomePlayerUnavailable},
		{"field missing", fmt.Errorf("read title: %w", ErrMetadataFieldMissing), OutcomeOperationFailed},
		{"unsupported", fmt.Errorf("next: %w", ErrUnsupportedOperation), OutcomeOperationFailed},
		{"volume write", fmt.Errorf("set: %w", ErrVolumeWriteFailed), OutcomeOperationFailed},
		{"unknown", errors.New("boom"), OutcomeOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

// TestOutcomeExitCodes tests that every failure class is distinguishable by exit code
func TestOutcomeExitCodes(t *testing.T) {
	assert.Equal(t, 0, OutcomeSuccess.ExitCode())
	assert.Equal(t, 0, OutcomeNothingPlaying.ExitCode())

	seen := map[int]Outcome{}
	for _, o := range []Outcome{OutcomeSuccess, OutcomeUnrecognizedCommand, OutcomePlayerUnavailable, OutcomeOperationFailed} {
		code := o.ExitCode()
		if prev, ok := seen[code]; ok {
			t.Errorf("%s and %s share exit code %d", prev, o, code)
		}
		seen[code] = o
	}
}

func TestUnrecognizedCommandError(t *testing.T) {
	err := &UnrecognizedCommandError{Token: "volume"}
	assert.Equal(t, `unrecognized command "volume"`, err.Error())
	assert.ErrorIs(t, fmt.Errorf("resolve: %w", err), ErrUnrecognizedCommand)
	assert.NotErrorIs(t, err, ErrUnsupportedOperation)
}

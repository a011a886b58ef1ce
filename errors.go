package main

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedCommand  = errors.New("unrecognized command")
	ErrNoBusConnection      = errors.New("could not connect to media bus")
	ErrNoActivePlayer       = errors.New("no active player")
	ErrEmptyMetadata        = errors.New("player reported no track metadata")
	ErrMetadataFieldMissing = errors.New("metadata field missing")
	ErrUnsupportedOperation = errors.New("operation not supported by player")
	ErrVolumeWriteFailed    = errors.New("player rejected volume change")
)

// UnrecognizedCommandError carries the token that failed to resolve
type UnrecognizedCommandError struct {
	Token string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q", e.Token)
}

func (e *UnrecognizedCommandError) Is(target error) bool {
	return target == ErrUnrecognizedCommand
}

// Outcome is the process-level result class of one invocation
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	// OutcomeNothingPlaying is success-shaped: nothing was printed on purpose.
	OutcomeNothingPlaying
	OutcomeUnrecognizedCommand
	OutcomePlayerUnavailable
	OutcomeOperationFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNothingPlaying:
		return "nothing playing"
	case OutcomeUnrecognizedCommand:
		return "unrecognized command"
	case OutcomePlayerUnavailable:
		return "player unavailable"
	default:
		return "operation failed"
	}
}

// ExitCode maps the outcome to the process exit status
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess, OutcomeNothingPlaying:
		return 0
	case OutcomeUnrecognizedCommand:
		return 2
	case OutcomePlayerUnavailable:
		return 3
	default:
		return 1
	}
}

// Classify sorts an error returned by Resolve or Dispatch into its Outcome
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrEmptyMetadata):
		return OutcomeNothingPlaying
	case errors.Is(err, ErrUnrecognizedCommand):
		return OutcomeUnrecognizedCommand
	case errors.Is(err, ErrNoBusConnection), errors.Is(err, ErrNoActivePlayer):
		return OutcomePlayerUnavailable
	default:
		return OutcomeOperationFailed
	}
}

package main

import (
	"fmt"
	"math"
)

// ClampPolicy selects how raise/lower volume bound the proposed level
type ClampPolicy string

const (
	// ClampCorrected keeps the volume inside [0, 1].
	ClampCorrected ClampPolicy = "corrected"
	// ClampLegacy is the historical behaviour: raising snaps to 1.0 and
	// lowering snaps to 0.0 unless the proposed value is already past the bound.
	ClampLegacy ClampPolicy = "legacy"
)

// statusSymbol returns the glyph printed before now-playing output
func statusSymbol(s PlaybackStatus) string {
	switch s {
	case StatusPlaying:
		return "▶"
	case StatusPaused:
		return "❙❙"
	default:
		return "◼"
	}
}

// formatReport builds the now-playing line for a report command.
// An empty symbol gives the legacy symbol-less form.
func formatReport(cmd Command, artist, title, symbol string) string {
	var body string
	switch cmd {
	case ReportArtist:
		body = artist
	case ReportSong:
		body = title
	default:
		body = artist + " - " + title
	}
	if symbol == "" {
		return body
	}
	return symbol + " " + body
}

// formatVolume scales a 0..1 volume to a percentage with one decimal
func formatVolume(v float64) string {
	return fmt.Sprintf("%.1f", v*100)
}

// clampVolume bounds a proposed volume for RaiseVolume or LowerVolume
func clampVolume(policy ClampPolicy, cmd Command, proposed float64) float64 {
	switch {
	case policy == ClampLegacy && cmd == RaiseVolume:
		return math.Max(proposed, 1.0)
	case policy == ClampLegacy && cmd == LowerVolume:
		return math.Min(proposed, 0.0)
	case cmd == RaiseVolume:
		return math.Min(proposed, 1.0)
	case cmd == LowerVolume:
		return math.Max(proposed, 0.0)
	}
	return proposed
}

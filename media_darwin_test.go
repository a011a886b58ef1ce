//go:build darwin
// +build darwin

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppleScriptMetadata(t *testing.T) {
	t.Run("no current track", func(t *testing.T) {
		md, err := parseAppleScriptMetadata("")
		require.NoError(t, err)
		assert.False(t, md.HasAlbumArtist())
	})

	t.Run("full track", func(t *testing.T) {
		md, err := parseAppleScriptMetadata("T\tA\tAA")
		require.NoError(t, err)

		title, _ := md.TrackTitle()
		artist, _ := md.LeadArtist()
		assert.Equal(t, "T", title)
		assert.Equal(t, "A", artist)
		assert.Equal(t, []string{"AA"}, md.AlbumArtists)
	})

	t.Run("track without album artist", func(t *testing.T) {
		md, err := parseAppleScriptMetadata("T\tA\t")
		require.NoError(t, err)
		assert.True(t, md.HasAlbumArtist())
	})

	t.Run("track without artist", func(t *testing.T) {
		md, err := parseAppleScriptMetadata("T\t\t")
		require.NoError(t, err)
		_, ok := md.LeadArtist()
		assert.False(t, ok)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseAppleScriptMetadata("T|A|AA")
		assert.Error(t, err)
	})
}

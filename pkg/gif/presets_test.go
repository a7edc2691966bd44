package gif_test

import (
	"testing"

	"github.com/dububu/mediatools/pkg/gif"

	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	love := gif.Presets["love"]

	require.Equal(t, love[0], gif.Preset("love", 0))
	require.Equal(t, love[3], gif.Preset("love", 3))
	require.Equal(t, love[0], gif.Preset("love", 4))
	require.Equal(t, love[3], gif.Preset("love", -1))
}

func TestPresetUnknownCategory(t *testing.T) {
	cute := gif.Presets["cute"]

	require.Equal(t, cute[0], gif.Preset("dance", 0))
	require.Equal(t, cute[1], gif.Preset("", 4))
}

func TestRandomPreset(t *testing.T) {
	for range 20 {
		require.Contains(t, gif.Presets["sleep"], gif.RandomPreset("sleep"))
		require.Contains(t, gif.Presets["cute"], gif.RandomPreset("kiss"))
	}
}

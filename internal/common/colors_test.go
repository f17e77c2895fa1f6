package common

import (
	"image/color"
	"testing"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerColors(t *testing.T) {
	tests := []struct {
		color      core.Color
		checkColor func(color.RGBA) bool
	}{
		{core.Green, func(c color.RGBA) bool { return c.G > c.R && c.G > c.B }},
		{core.Red, func(c color.RGBA) bool { return c.R > c.G && c.R > c.B }},
		{core.Yellow, func(c color.RGBA) bool { return c.R > 150 && c.G > 150 && c.B < 100 }},
		{core.Blue, func(c color.RGBA) bool { return c.B > c.R && c.B > c.G }},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			c, exists := PlayerColors[tt.color]
			require.True(t, exists)
			assert.True(t, tt.checkColor(c), "color check failed for %s", tt.color)
			assert.Equal(t, uint8(255), c.A, "alpha should be 255 (fully opaque)")
		})
	}
}

func TestColorConsistency(t *testing.T) {
	seen := map[color.RGBA]core.Color{}
	for c, rgba := range PlayerColors {
		if other, exists := seen[rgba]; exists {
			t.Errorf("%s and %s share a fill", other, c)
		}
		seen[rgba] = c
		assert.NotEqual(t, UnclaimedColor, rgba)
	}
}

func TestFillFor(t *testing.T) {
	assert.Equal(t, UnclaimedColor, FillFor(core.Red, false))
	assert.Equal(t, PlayerColors[core.Red], FillFor(core.Red, true))
	assert.Equal(t, UnclaimedColor, FillFor(core.Color(9), true))
}

func TestDim(t *testing.T) {
	c := color.RGBA{200, 100, 0, 255}
	assert.Equal(t, c, Dim(c, 255))
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, Dim(c, 128))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Dim(c, 0))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
		wantErr  bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{" #0000ff80 ", color.RGBA{0, 0, 255, 128}, false},
		{"#fff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	savedRed, savedUnclaimed := PlayerColors[core.Red], UnclaimedColor
	t.Cleanup(func() {
		PlayerColors[core.Red] = savedRed
		UnclaimedColor = savedUnclaimed
	})

	err := ApplyOverrides(map[string]string{
		"red":       "#010203",
		"unclaimed": "#101010",
		"purple":    "#ffffff",
		"blue":      "nope",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
	assert.Contains(t, err.Error(), "blue")

	assert.Equal(t, color.RGBA{1, 2, 3, 255}, PlayerColors[core.Red])
	assert.Equal(t, color.RGBA{16, 16, 16, 255}, UnclaimedColor)
}

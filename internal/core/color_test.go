package core

import "testing"

func TestColorFromRGB(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected Color
	}{
		{"pure red", 255, 0, 0, 196},
		{"pure green", 0, 255, 0, 46},
		{"pure blue", 0, 0, 255, 21},
		{"white", 255, 255, 255, 231},
		{"black", 0, 0, 0, 16},
		{"cube orange", 255, 175, 0, 214},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColorFromRGB(tc.r, tc.g, tc.b); got != tc.expected {
				t.Errorf("ColorFromRGB(%d, %d, %d) = %d, expected %d", tc.r, tc.g, tc.b, got, tc.expected)
			}
		})
	}
}

func TestColorFromRGBSkipsThemeColors(t *testing.T) {
	for _, rgb := range [][3]uint8{{170, 255, 0}, {255, 0, 170}, {0, 170, 255}, {128, 128, 128}} {
		if got := ColorFromRGB(rgb[0], rgb[1], rgb[2]); got < 16 {
			t.Errorf("ColorFromRGB(%v) = %d, expected a code >= 16", rgb, got)
		}
	}
}

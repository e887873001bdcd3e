package pixel

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormat_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatGray8, 1},
		{FormatRGB8, 3},
		{FormatRGBA8, 4},
		{FormatRGBX8, 4},
		{FormatBGRA8, 4},
		{formatCount, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.expected {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatGray8, false},
		{FormatRGB8, false},
		{FormatRGBA8, true},
		{FormatRGBX8, false},
		{FormatBGRA8, true},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_TextureFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   gputypes.TextureFormat
	}{
		{FormatGray8, gputypes.TextureFormatR8Unorm},
		{FormatRGB8, gputypes.TextureFormatUndefined},
		{FormatRGBA8, gputypes.TextureFormatRGBA8Unorm},
		{FormatRGBX8, gputypes.TextureFormatRGBA8Unorm},
		{FormatBGRA8, gputypes.TextureFormatBGRA8Unorm},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	if got := Format(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want %q", got, "Unknown")
	}
	if got := FormatRGBX8.String(); got != "RGBX8" {
		t.Errorf("String() = %q, want %q", got, "RGBX8")
	}
	if Format(200).IsValid() {
		t.Error("Format(200).IsValid() = true, want false")
	}
}

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNumericID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumericID("730"))
	assert.False(t, IsNumericID(""))
	assert.False(t, IsNumericID("73a"))
	assert.False(t, IsNumericID("-1"))
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		filter   string
	}{
		{name: "empty", input: "", expected: "unknown", filter: "all"},
		{name: "mixed case", input: " English ", expected: "english", filter: "english"},
		{name: "all", input: "ALL", expected: "all", filter: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeLanguage(tt.input))
			assert.Equal(t, tt.filter, NormalizeLanguageFilter(tt.input))
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"great", "story", "music"}, SplitKeywords("Great, story  music", "great"))
	assert.Empty(t, SplitKeywords(" , ", ""))
}

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, ClampPageSize(0, 20, 100))
	assert.Equal(t, 5, ClampPageSize(5, 20, 100))
	assert.Equal(t, 100, ClampPageSize(500, 20, 100))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

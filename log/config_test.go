package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
	}{
		{"trace lowercase", "trace", LevelTrace},
		{"trace uppercase", "TRACE", LevelTrace},
		{"debug", "debug", LevelDebug},
		{"info", "INFO", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"error", "Error", LevelError},
		{"with offset", "WARN+2", Level(6)},
		{"empty defaults", "", DefaultLevel},
		{"garbage defaults", "loud", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" text ", FormatText},
		{"", DefaultFormat},
		{"xml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevels_ContainsAll(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormats_ContainsAll(t *testing.T) {
	got := slices.Collect(Formats())
	want := []string{"text", "json"}

	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ref := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named layout", "Kitchen", "3:04PM"},
		{"named with punctuation", "rfc-3339", "2024-03-09T15:04:05Z"},
		{"custom layout", "2006/01/02", "2024/03/09"},
		{"empty disables", "", ""},
		{"none disables", "none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)
			if got := format(ref); got != tt.want {
				t.Errorf(
					"makeFormatTimeFunc(%q)(ref) = %q, want %q",
					tt.layout, got, tt.want,
				)
			}
		})
	}
}

package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{"development build", "dev", "dev"},
		{"release", "v1.0.0", "v1.0.0"},
		{"prerelease", "v0.1.0-beta.1", "v0.1.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			if got := GetVersion(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	originalVersion := Version
	originalCommit := Commit
	originalDate := Date
	defer func() {
		Version = originalVersion
		Commit = originalCommit
		Date = originalDate
	}()

	Version = "v1.2.3"
	Commit = "abcdef123456"
	Date = "2026-01-15T09:00:00Z"

	result := GetFullVersion()

	expected := "v1.2.3 (commit: abcdef123456, built: 2026-01-15T09:00:00Z)"
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
	if !strings.HasPrefix(result, "v1.2.3 (") {
		t.Error("Full version should start with the version string")
	}
}

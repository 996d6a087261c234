package cidetect

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected Platform
	}{
		{"gitlab", map[string]string{EnvGitLabCI: "true"}, PlatformGitLab},
		{"gitlab set to empty still counts", map[string]string{EnvGitLabCI: ""}, PlatformGitLab},
		{"github", map[string]string{EnvGitHubActions: "true"}, PlatformGitHub},
		{"github requires literal true", map[string]string{EnvGitHubActions: "1"}, PlatformGit},
		{"azure", map[string]string{EnvAzureTFBuild: "True"}, PlatformAzure},
		{"appveyor", map[string]string{EnvAppVeyor: "True"}, PlatformAppVeyor},
		{"circleci", map[string]string{EnvCircleCI: "true"}, PlatformCircleCI},
		{"nothing set falls back to git", map[string]string{"PATH": "/usr/bin"}, PlatformGit},
		{"empty environment falls back to git", nil, PlatformGit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(NewContext(tt.vars))
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	// With several platforms signalling at once, the higher-priority one
	// must win deterministically.
	tests := []struct {
		name     string
		vars     map[string]string
		expected Platform
	}{
		{
			"gitlab beats github",
			map[string]string{EnvGitLabCI: "true", EnvGitHubActions: "true"},
			PlatformGitLab,
		},
		{
			"github beats azure",
			map[string]string{EnvGitHubActions: "true", EnvAzureTFBuild: "True"},
			PlatformGitHub,
		},
		{
			"azure beats appveyor",
			map[string]string{EnvAzureTFBuild: "True", EnvAppVeyor: "True"},
			PlatformAzure,
		},
		{
			"appveyor beats circleci",
			map[string]string{EnvAppVeyor: "True", EnvCircleCI: "true"},
			PlatformAppVeyor,
		},
		{
			"all five present picks gitlab",
			map[string]string{
				EnvGitLabCI:      "true",
				EnvGitHubActions: "true",
				EnvAzureTFBuild:  "True",
				EnvAppVeyor:      "True",
				EnvCircleCI:      "true",
			},
			PlatformGitLab,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(NewContext(tt.vars))
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContext_Lookup(t *testing.T) {
	env := NewContext(map[string]string{"SET": "value", "EMPTY": ""})

	if v, ok := env.Lookup("SET"); !ok || v != "value" {
		t.Errorf("Lookup(SET) = %q, %v", v, ok)
	}
	if v, ok := env.Lookup("EMPTY"); !ok || v != "" {
		t.Errorf("Lookup(EMPTY) = %q, %v; empty value should still be provided", v, ok)
	}
	if _, ok := env.Lookup("ABSENT"); ok {
		t.Error("Lookup(ABSENT) should report not provided")
	}
}

func TestSnapshot_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("GIT_DCO_DETECT_PROBE", "probe-value")

	env := Snapshot()
	if got := env.Get("GIT_DCO_DETECT_PROBE"); got != "probe-value" {
		t.Errorf("Snapshot missed process env var, got %q", got)
	}
}

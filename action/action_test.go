package action

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		input    string
		expected string
	}{
		{"lowercase name", "INPUT_PREFIX", "v", "prefix", "v"},
		{"uppercase name", "INPUT_PREFIX", "v", "PREFIX", "v"},
		{"name with space", "INPUT_INCLUDE_PRERELEASES", "true", "include prereleases", "true"},
		{"unset input", "", "", "missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envKey != "" {
				t.Setenv(tt.envKey, tt.envValue)
			}
			if got := Input(tt.input); got != tt.expected {
				t.Errorf("Input(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRepo(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		owner     string
		repo      string
		expectErr bool
	}{
		{"valid", "acme/rocket", "acme", "rocket", false},
		{"missing name", "acme/", "", "", true},
		{"missing owner", "/rocket", "", "", true},
		{"no separator", "rocket", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_REPOSITORY", tt.env)
			owner, repo, err := Repo()
			if (err != nil) != tt.expectErr {
				t.Fatalf("Repo() error = %v, wantErr %v", err, tt.expectErr)
			}
			if owner != tt.owner || repo != tt.repo {
				t.Errorf("Repo() = %q/%q, want %q/%q", owner, repo, tt.owner, tt.repo)
			}
		})
	}
}

func TestCommitMessage(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			"head_commit wins",
			`{"head_commit":{"message":"fix (PATCH)"},"commits":[{"message":"older"}]}`,
			"fix (PATCH)",
		},
		{
			"falls back to the last pushed commit",
			`{"commits":[{"message":"first"},{"message":"second"}]}`,
			"second",
		},
		{
			"no commits in payload",
			`{"action":"opened"}`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "event.json")
			if err := os.WriteFile(path, []byte(tt.payload), 0644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("GITHUB_EVENT_PATH", path)

			got, err := CommitMessage()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CommitMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommitMessageWithoutEventPath(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")
	got, err := CommitMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestCommitMessageBrokenPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GITHUB_EVENT_PATH", path)

	if _, err := CommitMessage(); err == nil {
		t.Error("expected error for broken payload but got none")
	}
}

func TestSetOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	if err := SetOutput(nil, "current_version", "1.1.0"); err != nil {
		t.Fatal(err)
	}
	if err := SetOutput(nil, "next_version", "1.1.1"); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := "current_version=1.1.0\nnext_version=1.1.1\n"
	if string(b) != expected {
		t.Errorf("output file = %q, want %q", string(b), expected)
	}
}

func TestSetOutputMultiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	if err := SetOutput(nil, "notes", "line one\nline two"); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got := string(b)
	if !strings.Contains(got, "notes<<NEXTVER_EOF\nline one\nline two\nNEXTVER_EOF\n") {
		t.Errorf("unexpected heredoc form: %q", got)
	}
}

func TestSetOutputFallsBackToWriter(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	var buf bytes.Buffer
	if err := SetOutput(&buf, "current_version", "1.1.0"); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "current_version=1.1.0\n" {
		t.Errorf("writer got %q", buf.String())
	}
}

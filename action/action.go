// Package action is the glue between the version pipeline and a GitHub
// Actions runner: workflow inputs, the event payload, and step outputs.
package action

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input returns a workflow input. The runner exposes inputs as
// INPUT_<NAME> environment variables with spaces folded to underscores.
func Input(name string) string {
	n := strings.ReplaceAll(strings.ToUpper(name), " ", "_")
	return os.Getenv("INPUT_" + n)
}

// Repo splits GITHUB_REPOSITORY into owner and name.
func Repo() (string, string, error) {
	full := os.Getenv("GITHUB_REPOSITORY")
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid GITHUB_REPOSITORY: %q", full)
	}
	return owner, name, nil
}

// event is the subset of the webhook payload the run reads.
type event struct {
	HeadCommit *commit  `json:"head_commit"`
	Commits    []commit `json:"commits"`
}

type commit struct {
	Message string `json:"message"`
}

// CommitMessage returns the message of the commit that triggered the run.
// Push events carry head_commit; other events fall back to the last entry
// of commits, and a payload without either yields an empty string.
func CommitMessage() (string, error) {
	path := os.Getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return "", nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read event payload: %w", err)
	}

	var ev event
	if err := json.Unmarshal(b, &ev); err != nil {
		return "", fmt.Errorf("failed to decode event payload: %w", err)
	}

	if ev.HeadCommit != nil && ev.HeadCommit.Message != "" {
		return ev.HeadCommit.Message, nil
	}
	if n := len(ev.Commits); n > 0 {
		return ev.Commits[n-1].Message, nil
	}
	return "", nil
}

// SetOutput records a named output for later workflow steps by appending
// to the GITHUB_OUTPUT file. Without GITHUB_OUTPUT the pair goes to w so
// local runs still see it. Multiline values use the heredoc form the
// runner expects.
func SetOutput(w io.Writer, name, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		_, err := fmt.Fprintf(w, "%s=%s\n", name, value)
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	if strings.Contains(value, "\n") {
		_, err = fmt.Fprintf(f, "%s<<NEXTVER_EOF\n%s\nNEXTVER_EOF\n", name, value)
	} else {
		_, err = fmt.Fprintf(f, "%s=%s\n", name, value)
	}
	return err
}

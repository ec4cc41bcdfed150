package nextver

import (
	"bytes"
	"strings"
	"testing"
)

func runCLIForTest(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, err bytes.Buffer
	code := RunCLI(&out, &err, args)
	return code, out.String(), err.String()
}

func TestCLIVersion(t *testing.T) {
	code, _, errOut := runCLIForTest(t, "--version")
	if code != ExitOK {
		t.Errorf("exit code = %d, want %d", code, ExitOK)
	}
	if !strings.Contains(errOut, "nextver version") {
		t.Errorf("unexpected version output: %s", errOut)
	}
}

func TestCLIHelp(t *testing.T) {
	code, out, _ := runCLIForTest(t, "--help")
	if code != ExitErr {
		t.Errorf("exit code = %d, want %d", code, ExitErr)
	}
	if !strings.Contains(out, "Usage: nextver") {
		t.Errorf("help not shown: %s", out)
	}
	if !strings.Contains(out, "--pre-release") {
		t.Errorf("options not listed: %s", out)
	}
}

func TestCLIUnknownSourceIsFatal(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test_token")
	t.Setenv("INPUT_SOURCE", "")
	t.Setenv("GITHUB_REPOSITORY", "")
	t.Setenv("GITHUB_EVENT_PATH", "")

	code, out, errOut := runCLIForTest(t, "--source", "commits", "--repo", "acme/rocket")
	if code != ExitErr {
		t.Errorf("exit code = %d, want %d", code, ExitErr)
	}
	if !strings.Contains(errOut, "unsupported source") {
		t.Errorf("expected unsupported source error, got: %s", errOut)
	}
	if out != "" {
		t.Errorf("no outputs on fatal errors, got: %s", out)
	}
}

func TestCLIRequiresRepository(t *testing.T) {
	t.Setenv("INPUT_SOURCE", "")
	t.Setenv("GITHUB_REPOSITORY", "")
	t.Setenv("GITHUB_EVENT_PATH", "")

	code, _, errOut := runCLIForTest(t)
	if code != ExitErr {
		t.Errorf("exit code = %d, want %d", code, ExitErr)
	}
	if !strings.Contains(errOut, "repository is not specified") {
		t.Errorf("unexpected error output: %s", errOut)
	}
}

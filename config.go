package nextver

import (
	"fmt"

	"github.com/nextver/nextver/action"
)

// Config is everything one run needs.
type Config struct {
	// SourceURL selects where existing versions come from, in the form
	// tags://owner/repo or releases://owner/repo.
	SourceURL string
	// Prefix is a literal prefix required on raw labels. The match runs
	// on the label itself, so "v" matches "v1.2.3" but not "1.2.3".
	Prefix string
	// IncludePrereleases keeps prerelease and build-metadata versions as
	// candidates for the current version.
	IncludePrereleases bool
	// CommitMessage is scanned for (MAJOR), (MINOR) and (PATCH) markers.
	CommitMessage string
	LogLevel      string
	LogFormat     string
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "ERROR",
		LogFormat: "text",
	}
}

// OverrideWithEnv fills the config from GitHub Actions workflow inputs
// and the event payload when they are present, so the same binary works
// as an action step with no flags at all.
func (c *Config) OverrideWithEnv() error {
	if s := action.Input("source"); s != "" {
		owner, name, err := action.Repo()
		if err != nil {
			return err
		}
		c.SourceURL = fmt.Sprintf("%s://%s/%s", s, owner, name)
	}

	if p := action.Input("prefix"); p != "" {
		c.Prefix = p
	}
	if v := action.Input("include_prereleases"); v != "" {
		c.IncludePrereleases = v == "true"
	}

	if c.CommitMessage == "" {
		msg, err := action.CommitMessage()
		if err != nil {
			return err
		}
		c.CommitMessage = msg
	}

	return nil
}

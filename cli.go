package nextver

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/nextver/nextver/action"
	"github.com/nextver/nextver/logging"
)

const (
	// ExitOK for exit code
	ExitOK int = 0

	// ExitErr for exit code
	ExitErr int = 1
)

// CLI struct
type CLI struct {
	outStream, errStream io.Writer
	Source               string `long:"source" short:"s" arg:"(tags|releases)" description:"Where existing versions are read from (default: tags)"`
	Repo                 string `long:"repo" short:"r" arg:"owner/name" description:"Repository to inspect"`
	Prefix               string `long:"prefix" short:"p" description:"Literal prefix required on raw labels"`
	PreRelease           bool   `long:"pre-release" description:"Keep prerelease and build-metadata versions as candidates"`
	Message              string `long:"message" short:"m" description:"Commit message scanned for (MAJOR)/(MINOR)/(PATCH) markers"`
	LogLevel             string `long:"log-level" short:"l" arg:"(debug|info|warn|error)" description:"Level displayed as log"`
	LogFormat            string `long:"log-format" arg:"(text|json)" description:"Format of log output"`
	Help                 bool   `long:"help" short:"h" description:"show this help message and exit"`
	Version              bool   `long:"version" short:"v" description:"prints the version number"`
}

// RunCLI runs as CLI
func RunCLI(o, e io.Writer, a []string) int {
	cli := &CLI{outStream: o, errStream: e}
	return cli.run(a)
}

func (c *CLI) buildHelp(names []string) []string {
	var help []string
	t := reflect.TypeOf(CLI{})

	for _, name := range names {
		f, ok := t.FieldByName(name)
		if !ok {
			continue
		}

		tag := f.Tag
		if tag == "" {
			continue
		}

		var o, a string
		if a = tag.Get("arg"); a != "" {
			a = fmt.Sprintf("=%s", a)
		}
		if s := tag.Get("short"); s != "" {
			o = fmt.Sprintf("-%s, --%s%s", tag.Get("short"), tag.Get("long"), a)
		} else {
			o = fmt.Sprintf("--%s%s", tag.Get("long"), a)
		}

		help = append(help, fmt.Sprintf("  %-40s %s", o, tag.Get("description")))
	}

	return help
}

func (c *CLI) showHelp() {
	opts := strings.Join(c.buildHelp([]string{
		"Source",
		"Repo",
		"Prefix",
		"PreRelease",
		"Message",
		"LogLevel",
		"LogFormat",
	}), "\n")

	help := `
Usage: nextver [--version] [--help] <options>

Prints the highest semantic version found in a repository and the next
version after applying the bump level from the commit message. Under
GitHub Actions, flags may be omitted: workflow inputs and the event
payload fill the configuration.

Options:
%s
`
	Banner(c.errStream)
	fmt.Fprintf(c.outStream, help, opts)
}

func (c *CLI) run(a []string) int {
	p := flags.NewParser(c, flags.PrintErrors|flags.PassDoubleDash)
	if _, err := p.ParseArgs(a); err != nil || c.Help {
		c.showHelp()
		return ExitErr
	}

	if c.Version {
		fmt.Fprintf(c.errStream, "%s version %s [%v, %v]\n", Name, ver, commit, date)
		return ExitOK
	}

	if c.Source == "" {
		c.Source = "tags"
	}
	if c.LogLevel == "" {
		c.LogLevel = "ERROR"
	}

	conf := DefaultConfig()
	if c.Repo != "" {
		conf.SourceURL = fmt.Sprintf("%s://%s", c.Source, c.Repo)
	}
	conf.Prefix = c.Prefix
	conf.IncludePrereleases = c.PreRelease
	conf.CommitMessage = c.Message
	conf.LogLevel = c.LogLevel
	conf.LogFormat = c.LogFormat

	if err := conf.OverrideWithEnv(); err != nil {
		fmt.Fprintf(c.errStream, "Error: %s\n", err)
		return ExitErr
	}

	if conf.SourceURL == "" {
		fmt.Fprintf(c.errStream, "Error: repository is not specified\n")
		c.showHelp()
		return ExitErr
	}

	logger := logging.SetupLogger(conf.LogLevel, conf.LogFormat, c.errStream)
	ctx := context.Background()

	n, err := New(ctx, conf, logger)
	if err != nil {
		fmt.Fprintf(c.errStream, "Error: %s\n", err)
		return ExitErr
	}

	result, err := n.Run(ctx)
	if err != nil {
		fmt.Fprintf(c.errStream, "Error: %s\n", err)
		return ExitErr
	}

	if err := action.SetOutput(c.outStream, "current_version", result.CurrentVersion); err != nil {
		fmt.Fprintf(c.errStream, "Error: %s\n", err)
		return ExitErr
	}
	if err := action.SetOutput(c.outStream, "next_version", result.NextVersion); err != nil {
		fmt.Fprintf(c.errStream, "Error: %s\n", err)
		return ExitErr
	}

	return ExitOK
}

package nextver

import (
	"context"
	"log/slog"

	"github.com/nextver/nextver/logging"
	"github.com/nextver/nextver/source"
	"github.com/nextver/nextver/version"
)

const (
	// Name is the project name.
	Name = "nextver"
)

var (
	ver    = "dev"
	commit = "unknown"
	date   = "unknown"
)

// Nextver computes the current and the next semantic version for one
// repository from its existing tags or releases.
type Nextver struct {
	config Config
	source source.Source
	logger *logging.Logger
}

// Result carries the two run outputs in canonical string form.
type Result struct {
	CurrentVersion string
	NextVersion    string
}

// New wires a Nextver from config. An unrecognized source selector fails
// here, before anything is fetched and before any output exists.
func New(ctx context.Context, c Config, log *logging.Logger) (*Nextver, error) {
	if log == nil {
		log = logging.Discard()
	}

	src, err := source.New(ctx, c.SourceURL, log)
	if err != nil {
		return nil, err
	}

	return &Nextver{
		config: c,
		source: src,
		logger: log,
	}, nil
}

// Run executes one pass of the pipeline: fetch labels, coerce, filter,
// rank, then bump the highest version by the increment resolved from the
// commit message. A repository without matching versions starts from the
// 0.0.0 baseline.
func (n *Nextver) Run(ctx context.Context) (*Result, error) {
	labels, err := n.source.Labels(ctx)
	if err != nil {
		return nil, err
	}

	versions := make([]version.Version, 0, len(labels))
	for _, l := range labels {
		versions = append(versions, version.Coerce(l, n.logger.Logger))
	}

	filtered := version.Filter(versions, n.config.Prefix, n.config.IncludePrereleases)
	current := version.Latest(filtered)
	inc := version.ResolveIncrement(n.config.CommitMessage)
	next := version.Bump(current, inc)

	n.logger.Info("Computed next version",
		slog.String("current", current.String()),
		slog.String("increment", inc.String()),
		slog.String("next", next.String()),
		slog.Int("candidates", len(filtered)))

	return &Result{
		CurrentVersion: current.String(),
		NextVersion:    next.String(),
	}, nil
}

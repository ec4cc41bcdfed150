package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/nextver/nextver/logging"
)

var (
	decoder        = schema.NewDecoder()
	tagsScheme     = "tags"
	releasesScheme = "releases"
)

// Source lists the raw labels existing versions were published under.
type Source interface {
	// Labels returns all tag or release names for the repository, in the
	// order the API yields them.
	Labels(context.Context) ([]string, error)
}

// New builds a source from a URL like tags://owner/repo or
// releases://owner/repo. Query options such as ?per-page=50 are decoded
// into the source. Any other scheme is a configuration error and fails
// before anything is fetched.
func New(ctx context.Context, url string, log *logging.Logger) (Source, error) {
	splitted := strings.SplitN(url, "://", 2)

	switch splitted[0] {
	case tagsScheme:
		return NewTags(ctx, url, log)

	case releasesScheme:
		return NewReleases(ctx, url, log)
	}

	return nil, fmt.Errorf("unsupported source: %s", url)
}

func splitRepoURL(host, path string) (string, string, error) {
	repo := strings.TrimPrefix(strings.TrimSuffix(path, "/"), "/")
	if host == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid source repository: %s/%s", host, repo)
	}
	return host, repo, nil
}

package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/go-github/v73/github"

	"github.com/nextver/nextver/client"
	"github.com/nextver/nextver/logging"
)

// Releases lists release tag names through the GitHub API.
type Releases struct {
	Owner   string `schema:"-"`
	Repo    string `schema:"-"`
	PerPage int    `schema:"per-page"`
	cl      *github.Client
	logger  *logging.Logger
}

// NewReleases returns Releases for a releases://owner/repo URL.
func NewReleases(ctx context.Context, u string, log *logging.Logger) (*Releases, error) {
	ur, err := url.Parse(u)
	if err != nil {
		return nil, err
	}

	r := &Releases{}
	r.Owner, r.Repo, err = splitRepoURL(ur.Host, ur.Path)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(r, ur.Query()); err != nil {
		return nil, err
	}
	if r.PerPage == 0 {
		r.PerPage = 100
	}

	r.cl, err = client.New(ctx)
	if err != nil {
		return nil, err
	}

	r.logger = log
	return r, nil
}

// Labels returns the tag name of every published release, following
// pagination to the last page. Draft releases are skipped.
func (r *Releases) Labels(ctx context.Context) ([]string, error) {
	var labels []string

	page := 1
	for {
		releases, res, err := r.cl.Repositories.ListReleases(ctx, r.Owner, r.Repo, &github.ListOptions{
			Page:    page,
			PerPage: r.PerPage,
		})
		if err != nil {
			return nil, fmt.Errorf("failed github.Repositories.ListReleases: %w", err)
		}
		for _, v := range releases {
			if v.GetDraft() {
				continue
			}
			labels = append(labels, v.GetTagName())
		}
		if res.NextPage == 0 {
			break
		}
		page = res.NextPage
	}

	r.logger.Debug("Fetched releases",
		slog.String("repo", r.Owner+"/"+r.Repo),
		slog.Int("count", len(labels)))

	return labels, nil
}

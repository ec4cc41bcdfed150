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

// Tags lists git tag names through the GitHub API.
type Tags struct {
	Owner   string `schema:"-"`
	Repo    string `schema:"-"`
	PerPage int    `schema:"per-page"`
	cl      *github.Client
	logger  *logging.Logger
}

// NewTags returns Tags for a tags://owner/repo URL.
func NewTags(ctx context.Context, u string, log *logging.Logger) (*Tags, error) {
	ur, err := url.Parse(u)
	if err != nil {
		return nil, err
	}

	t := &Tags{}
	t.Owner, t.Repo, err = splitRepoURL(ur.Host, ur.Path)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(t, ur.Query()); err != nil {
		return nil, err
	}
	if t.PerPage == 0 {
		t.PerPage = 100
	}

	t.cl, err = client.New(ctx)
	if err != nil {
		return nil, err
	}

	t.logger = log
	return t, nil
}

// Labels returns every tag name, following pagination to the last page.
func (t *Tags) Labels(ctx context.Context) ([]string, error) {
	var labels []string

	page := 1
	for {
		tags, res, err := t.cl.Repositories.ListTags(ctx, t.Owner, t.Repo, &github.ListOptions{
			Page:    page,
			PerPage: t.PerPage,
		})
		if err != nil {
			return nil, fmt.Errorf("failed github.Repositories.ListTags: %w", err)
		}
		for _, v := range tags {
			labels = append(labels, v.GetName())
		}
		if res.NextPage == 0 {
			break
		}
		page = res.NextPage
	}

	t.logger.Debug("Fetched tags",
		slog.String("repo", t.Owner+"/"+t.Repo),
		slog.Int("count", len(labels)))

	return labels, nil
}

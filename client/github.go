package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// New creates an authenticated GitHub client.
func New(ctx context.Context) (*github.Client, error) {
	// Check GH_TOKEN first to avoid GitHub Actions auto-override of GITHUB_TOKEN
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	if token == "" {
		return nil, fmt.Errorf("no GitHub token found in GITHUB_TOKEN or GH_TOKEN environment variables")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	cl := github.NewClient(oauth2.NewClient(ctx, ts))

	// GitHub Enterprise: GITHUB_API_URL is set by the runner, GITHUB_ENDPOINT
	// is kept for manual runs.
	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = os.Getenv("GITHUB_ENDPOINT")
	}
	if apiURL != "" {
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL: %w", err)
		}
		// go-github requires a trailing slash on the base URL
		if baseURL.Path == "" {
			baseURL.Path = "/"
		} else if baseURL.Path[len(baseURL.Path)-1] != '/' {
			baseURL.Path += "/"
		}
		cl.BaseURL = baseURL
	}

	return cl, nil
}

// NewMock creates a GitHub client backed by a mock HTTP client for testing.
func NewMock(httpClient *http.Client) *github.Client {
	return github.NewClient(httpClient)
}

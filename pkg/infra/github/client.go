package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
	httpClient   *http.Client
	baseURL      *url.URL
	token        string
}

// Option configures the GitHub client.
type Option func(*client) error

// WithBaseURL points the client at another API endpoint, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *client) error {
		if baseURL == "" {
			return nil
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse base URL", goerr.V("base_url", baseURL))
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient sets the client used for API calls and downloads.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) error {
		c.httpClient = httpClient
		return nil
	}
}

// WithToken authenticates API calls, which raises the rate limit for zipball lookups.
func WithToken(token string) Option {
	return func(c *client) error {
		c.token = token
		return nil
	}
}

// NewClient creates a GitHub client for public template repositories. It is
// unauthenticated unless WithToken is given.
func NewClient(opts ...Option) (interfaces.ZipballDownloader, error) {
	c := &client{
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.githubClient = github.NewClient(c.httpClient)
	if c.token != "" {
		c.githubClient = c.githubClient.WithAuthToken(c.token)
	}
	if c.baseURL != nil {
		c.githubClient.BaseURL = c.baseURL
	}
	return c, nil
}

// DownloadZipball downloads the source code zipball for ref, or the default branch when ref is empty.
func (c *client) DownloadZipball(ctx context.Context, owner, repo, ref string) ([]byte, error) {
	// Follow up to 3 redirects
	link, _, err := c.githubClient.Repositories.GetArchiveLink(ctx, owner, repo, github.Zipball, &github.RepositoryContentGetOptions{
		Ref: ref,
	}, 3)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get zipball download URL",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", link.String()))
	}

	// The API client's transport carries the token, if any, to the download too.
	resp, err := c.githubClient.Client().Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download zipball", goerr.V("url", link.String()))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code",
			goerr.V("url", link.String()),
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body")
	}
	return data, nil
}

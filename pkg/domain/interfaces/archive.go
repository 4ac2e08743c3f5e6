package interfaces

import "context"

// ArchiveFetcher downloads the raw bytes behind a URL.
type ArchiveFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ZipballDownloader downloads a repository snapshot through the GitHub API.
// An empty ref means the default branch.
type ZipballDownloader interface {
	DownloadZipball(ctx context.Context, owner, repo, ref string) ([]byte, error)
}

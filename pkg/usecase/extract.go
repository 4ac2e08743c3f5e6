package usecase

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Extract writes archive entries under destination after stripping each
// entry's top-level folder. Entries that resolve to destination itself are
// skipped, and so are symbolic links. File content is written byte for byte.
func Extract(ctx context.Context, entries []model.ArchiveEntry, destination string) (*model.ExtractResult, error) {
	logger := logging.From(ctx)

	root := filepath.Clean(destination)
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}

	result := &model.ExtractResult{Destination: destination}
	for _, entry := range entries {
		stripped := entry.StrippedPath()
		target := filepath.Join(root, filepath.FromSlash(stripped))

		if target == root {
			result.Skipped++
			continue
		}

		// Security check: prevent path traversal attacks
		if !strings.HasPrefix(target, prefix) {
			return nil, goerr.Wrap(types.ErrUnsafePath, "archive entry escapes destination",
				goerr.V("entry", entry.RelativePath),
				goerr.V("destination", destination),
			)
		}

		if entry.IsSymlink() {
			logger.Debug("Skipping symlink entry", slog.String("entry", entry.RelativePath))
			result.Skipped++
			continue
		}

		if entry.IsDirectory {
			if _, err := os.Stat(target); os.IsNotExist(err) {
				if err := os.MkdirAll(target, 0755); err != nil {
					return nil, goerr.Wrap(err, "failed to create directory", goerr.V("path", target))
				}
			}
			result.Dirs = append(result.Dirs, strings.TrimSuffix(stripped, "/"))
			continue
		}

		n, err := extractFile(entry, target)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to extract file", goerr.V("entry", entry.RelativePath))
		}
		result.Files = append(result.Files, stripped)
		result.Size += n
	}

	logger.Debug("Extracted archive",
		slog.String("destination", destination),
		slog.Int("file_count", len(result.Files)),
		slog.Int("dir_count", len(result.Dirs)),
		slog.Int64("total_size_bytes", result.Size),
	)
	return result, nil
}

func extractFile(entry model.ArchiveEntry, target string) (int64, error) {
	rc, err := entry.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 0, goerr.Wrap(err, "failed to create parent directories", goerr.V("path", filepath.Dir(target)))
	}

	mode := entry.Mode.Perm()
	if mode == 0 {
		mode = 0644
	}

	destFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file", goerr.V("path", target))
	}

	n, err := io.Copy(destFile, rc)
	if err != nil {
		destFile.Close()
		return n, goerr.Wrap(err, "failed to copy file content", goerr.V("path", target))
	}
	if err := destFile.Close(); err != nil {
		return n, goerr.Wrap(err, "failed to close destination file", goerr.V("path", target))
	}
	return n, nil
}

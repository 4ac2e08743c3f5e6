package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/0x0zAgency/create-infinitymint/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestExtract_StripsTopLevelFolder(t *testing.T) {
	dest := t.TempDir()
	entries := []model.ArchiveEntry{
		model.NewMemoryEntry("repo-master/", nil),
		model.NewMemoryEntry("repo-master/src/index.ts", []byte("export const x = 1;\n")),
		model.NewMemoryEntry("repo-master/README.md", []byte("# Starter\n")),
	}

	result, err := usecase.Extract(context.Background(), entries, dest)
	gt.NoError(t, err)
	gt.Value(t, result.Files).Equal([]string{"src/index.ts", "README.md"})
	gt.Value(t, result.Skipped).Equal(1)

	content, err := os.ReadFile(filepath.Join(dest, "src", "index.ts"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("export const x = 1;\n")

	_, err = os.Stat(filepath.Join(dest, "README.md"))
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(dest, "repo-master"))
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}

func TestExtract_RootEntrySkipped(t *testing.T) {
	dest := t.TempDir()

	result, err := usecase.Extract(context.Background(), []model.ArchiveEntry{
		model.NewMemoryEntry("repo-master/", nil),
		model.NewMemoryEntry("top-level-file", []byte("dropped")),
	}, dest+"/")
	gt.NoError(t, err)
	gt.Value(t, result.Skipped).Equal(2)
	gt.Number(t, len(result.Files)).Equal(0)

	entries, err := os.ReadDir(dest)
	gt.NoError(t, err)
	gt.Number(t, len(entries)).Equal(0)
}

func TestExtract_DirectoriesAndBinary(t *testing.T) {
	dest := t.TempDir()
	binary := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff, 0xfe}

	result, err := usecase.Extract(context.Background(), []model.ArchiveEntry{
		model.NewMemoryEntry("repo-master/public/", nil),
		model.NewMemoryEntry("repo-master/public/empty/", nil),
		model.NewMemoryEntry("repo-master/public/logo.png", binary),
	}, dest)
	gt.NoError(t, err)
	gt.Value(t, result.Dirs).Equal([]string{"public", "public/empty"})
	gt.Value(t, result.Size).Equal(int64(len(binary)))

	info, err := os.Stat(filepath.Join(dest, "public", "empty"))
	gt.NoError(t, err)
	gt.Value(t, info.IsDir()).Equal(true)

	got, err := os.ReadFile(filepath.Join(dest, "public", "logo.png"))
	gt.NoError(t, err)
	gt.Value(t, got).Equal(binary)
}

func TestExtract_RejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	dest := filepath.Join(parent, "out")
	gt.NoError(t, os.Mkdir(dest, 0755))

	_, err := usecase.Extract(context.Background(), []model.ArchiveEntry{
		model.NewMemoryEntry("repo-master/../../evil.txt", []byte("nope")),
	}, dest)
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, types.ErrUnsafePath)).Equal(true)

	_, err = os.Stat(filepath.Join(parent, "evil.txt"))
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}

func TestExtract_SkipsSymlinks(t *testing.T) {
	dest := t.TempDir()
	link := model.NewArchiveEntry("repo-master/link", false, fs.ModeSymlink|0777, 10, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("../outside")), nil
	})
	entries := []model.ArchiveEntry{
		model.NewMemoryEntry("repo-master/", nil),
		link,
		model.NewMemoryEntry("repo-master/index.ts", []byte("export {};\n")),
	}

	result, err := usecase.Extract(context.Background(), entries, dest)
	gt.NoError(t, err)
	gt.Value(t, result.Files).Equal([]string{"index.ts"})
	gt.Value(t, result.Skipped).Equal(2)

	_, err = os.Lstat(filepath.Join(dest, "link"))
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}

func TestExtract_FileIsFlushedWithMode(t *testing.T) {
	dest := t.TempDir()
	content := []byte(strings.Repeat("mint", 4096))
	script := model.NewArchiveEntry("repo-master/bin/run.sh", false, 0755, int64(len(content)), func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(content)), nil
	})

	result, err := usecase.Extract(context.Background(), []model.ArchiveEntry{script}, dest)
	gt.NoError(t, err)
	gt.Value(t, result.Size).Equal(int64(len(content)))

	got, err := os.ReadFile(filepath.Join(dest, "bin", "run.sh"))
	gt.NoError(t, err)
	gt.Value(t, got).Equal(content)

	info, err := os.Stat(filepath.Join(dest, "bin", "run.sh"))
	gt.NoError(t, err)
	gt.Value(t, info.Mode().Perm()&0100 != 0).Equal(true)
}

package cli_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0zAgency/create-infinitymint/pkg/cli"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func starterArchive(t *testing.T, top string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	files := []struct {
		name    string
		content string
	}{
		{top + "/", ""},
		{top + "/package.json", `{"name":"starter"}`},
		{top + "/src/", ""},
		{top + "/src/index.ts", "export {};\n"},
	}
	for _, f := range files {
		fw, err := w.Create(f.name)
		gt.NoError(t, err)
		if f.content != "" {
			_, err = fw.Write([]byte(f.content))
			gt.NoError(t, err)
		}
	}
	gt.NoError(t, w.Close())
	return buf.Bytes()
}

func newArchiveServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/acme/typescript-starter/archive/refs/heads/master.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(starterArchive(t, "typescript-starter-master"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRun_Templates(t *testing.T) {
	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"create-infinitymint", "templates"}, cli.WithIO(strings.NewReader(""), &out))
	gt.NoError(t, err)

	gt.String(t, out.String()).Contains("react\tReact")
	gt.String(t, out.String()).Contains("svelte\tSvelte")
	gt.String(t, out.String()).Contains("boilerplate\tBoilerplate")
	gt.String(t, out.String()).Contains("bundlers:  Webpack, Vite")
}

func TestRun_Templates_InvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	gt.NoError(t, os.WriteFile(path, []byte("title: empty\ntemplates: []\n"), 0644))

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"create-infinitymint", "--catalog", path, "templates"}, cli.WithIO(strings.NewReader(""), &out))
	gt.Value(t, errors.Is(err, types.ErrInvalidCatalog)).Equal(true)
}

func TestRun_Fetch(t *testing.T) {
	server := newArchiveServer(t)
	dest := filepath.Join(t.TempDir(), "app")

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{
		"create-infinitymint",
		"--strategy", "archive",
		"--skip-install",
		"fetch",
		"--url", server.URL + "/acme/typescript-starter",
		"--dir", dest,
	}, cli.WithIO(strings.NewReader(""), &out))
	gt.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dest, "src", "index.ts"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("export {};\n")
	gt.String(t, out.String()).Contains("please run cd " + dest + "/ && npx infinitymint")
}

func TestRun_Fetch_NonEmptyDestination(t *testing.T) {
	server := newArchiveServer(t)
	dest := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dest, "README.md"), []byte("taken"), 0644))

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{
		"create-infinitymint",
		"--skip-install",
		"fetch",
		"--url", server.URL + "/acme/typescript-starter",
		"--dir", dest,
	}, cli.WithIO(strings.NewReader(""), &out))
	gt.Value(t, errors.Is(err, types.ErrDirectoryExists)).Equal(true)
}

func TestRun_Fetch_MissingParent(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "app")

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{
		"create-infinitymint",
		"fetch",
		"--url", "https://example.com/acme/starter",
		"--dir", dest,
	}, cli.WithIO(strings.NewReader(""), &out))
	gt.Value(t, errors.Is(err, types.ErrDirectoryNotFound)).Equal(true)
}

func TestRun_Wizard(t *testing.T) {
	server := newArchiveServer(t)

	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	gt.NoError(t, os.WriteFile(catalogPath, []byte(`title: Test Catalog
templates:
  - key: starter
    name: Starter
    languages: [Typescript, Javascript]
    url: "`+server.URL+`/acme/{{.Language}}-starter"
`), 0644))

	workDir := t.TempDir()
	t.Chdir(workDir)

	// Starter, Typescript, Current Directory, confirm
	input := "1\n1\n1\ny\n"

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{
		"create-infinitymint",
		"--catalog", catalogPath,
		"--strategy", "archive",
		"--package-manager", "npm",
		"--skip-install",
	}, cli.WithIO(strings.NewReader(input), &out))
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(workDir, "package.json"))
	gt.NoError(t, err)
	gt.String(t, out.String()).Contains("Successfully created a new Starter InfinityMint")
}

func TestRun_Wizard_ClosedInput(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"create-infinitymint"}, cli.WithIO(strings.NewReader(""), &out))
	gt.NoError(t, err)
	gt.String(t, out.String()).Contains("What type of InfinityMint would you like to create?")
}

func TestRun_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "log level",
			args: []string{"create-infinitymint", "--log-level", "verbose", "templates"},
		},
		{
			name: "strategy",
			args: []string{"create-infinitymint", "--strategy", "svn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := cli.Run(context.Background(), tt.args, cli.WithIO(strings.NewReader(""), &out))
			gt.Error(t, err)
		})
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"create-infinitymint", "version"}, cli.WithIO(strings.NewReader(""), &out))
	gt.NoError(t, err)
	gt.String(t, out.String()).Contains("create-infinitymint " + types.Version)
}

package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/interfaces"
	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

// MockRunner records commands and answers with a configured exit code.
type MockRunner struct {
	runFunc func(ctx context.Context, name string, args []string, opts interfaces.RunOpts) (int, error)
	calls   []MockRunCall
}

type MockRunCall struct {
	Name string
	Args []string
	Dir  string
}

func (m *MockRunner) Run(ctx context.Context, name string, args []string, opts interfaces.RunOpts) (int, error) {
	m.calls = append(m.calls, MockRunCall{Name: name, Args: args, Dir: opts.Dir})
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args, opts)
	}
	return 0, nil
}

// MockFetcher is a mock implementation of ArchiveFetcher
type MockFetcher struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	urls      []string
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.urls = append(m.urls, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, errors.New("mock not configured")
}

// MockZipball is a mock implementation of ZipballDownloader
type MockZipball struct {
	downloadZipballFunc func(ctx context.Context, owner, repo, ref string) ([]byte, error)
	downloadCalls       []MockCall
}

type MockCall struct {
	Owner string
	Repo  string
	Ref   string
}

func (m *MockZipball) DownloadZipball(ctx context.Context, owner, repo, ref string) ([]byte, error) {
	m.downloadCalls = append(m.downloadCalls, MockCall{Owner: owner, Repo: repo, Ref: ref})
	if m.downloadZipballFunc != nil {
		return m.downloadZipballFunc(ctx, owner, repo, ref)
	}
	return nil, errors.New("mock not configured")
}

// MockPrompter answers from queues and records everything shown.
type MockPrompter struct {
	choices   []int
	questions []string
	confirms  []bool

	queries []string
	notices []string
	prints  []string
}

func (m *MockPrompter) Choice(query string, choices []string, help string) (int, error) {
	m.queries = append(m.queries, query)
	if len(m.choices) == 0 {
		return -1, io.EOF
	}
	answer := m.choices[0]
	m.choices = m.choices[1:]
	return answer, nil
}

func (m *MockPrompter) Question(query string) (string, error) {
	m.queries = append(m.queries, query)
	if len(m.questions) == 0 {
		return "", io.EOF
	}
	answer := m.questions[0]
	m.questions = m.questions[1:]
	return answer, nil
}

func (m *MockPrompter) Confirm(query string) (bool, error) {
	m.queries = append(m.queries, query)
	if len(m.confirms) == 0 {
		return false, io.EOF
	}
	answer := m.confirms[0]
	m.confirms = m.confirms[1:]
	return answer, nil
}

func (m *MockPrompter) Notice(msg string) {
	m.notices = append(m.notices, msg)
}

func (m *MockPrompter) Print(tone model.Tone, msg string) {
	m.prints = append(m.prints, msg)
}

// MockSelector returns queued selections.
type MockSelector struct {
	paths []string
}

func (m *MockSelector) SelectDirectory(ctx context.Context) (string, bool, error) {
	if len(m.paths) == 0 {
		return "", false, nil
	}
	path := m.paths[0]
	m.paths = m.paths[1:]
	return path, true, nil
}

// MockMaterializer records calls and returns configured errors.
type MockMaterializer struct {
	materializeFunc func(ctx context.Context, sourceURL, destination string, strategy model.Strategy) (*model.ExtractResult, error)
	installErr      error

	strategies []model.Strategy
	sources    []string
	cleaned    []string
	installed  []model.PackageManager
}

func (m *MockMaterializer) Materialize(ctx context.Context, sourceURL, destination string, strategy model.Strategy) (*model.ExtractResult, error) {
	m.strategies = append(m.strategies, strategy)
	m.sources = append(m.sources, sourceURL)
	if m.materializeFunc != nil {
		return m.materializeFunc(ctx, sourceURL, destination, strategy)
	}
	return &model.ExtractResult{Destination: destination}, nil
}

func (m *MockMaterializer) CleanMetadata(ctx context.Context, destination string) error {
	m.cleaned = append(m.cleaned, destination)
	return nil
}

func (m *MockMaterializer) InstallDependencies(ctx context.Context, destination string, pm model.PackageManager) error {
	m.installed = append(m.installed, pm)
	return m.installErr
}

// createTestZip creates a test ZIP file with entries in the given order
func createTestZip(t *testing.T, names []string, files map[string]string) []byte {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, name := range names {
		writer, err := zipWriter.Create(name)
		gt.NoError(t, err)

		if content, ok := files[name]; ok {
			_, err = writer.Write([]byte(content))
			gt.NoError(t, err)
		}
	}

	err := zipWriter.Close()
	gt.NoError(t, err)

	return buf.Bytes()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

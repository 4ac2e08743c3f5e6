package archive

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/0x0zAgency/create-infinitymint/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Decode reads zip data into entries in archive order. Entry content stays
// inside the zip and is decompressed when an entry is opened.
func Decode(data []byte) ([]model.ArchiveEntry, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create zip reader")
	}

	entries := make([]model.ArchiveEntry, 0, len(reader.File))
	for _, file := range reader.File {
		info := file.FileInfo()
		entries = append(entries, model.NewArchiveEntry(
			file.Name,
			info.IsDir(),
			info.Mode(),
			int64(file.UncompressedSize64),
			openFunc(file),
		))
	}
	return entries, nil
}

func openFunc(file *zip.File) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		rc, err := file.Open()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open file in zip", goerr.V("name", file.Name))
		}
		return rc, nil
	}
}

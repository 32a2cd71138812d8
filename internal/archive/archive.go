package archive

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/zhyee/zipstream"

	"github.com/muleops/exchange-cli/util/common/errors"
)

// Entry is one file inside a downloaded asset archive.
type Entry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Dir  bool   `json:"dir"`
}

// ListEntries streams through the zip archive at path and returns its
// entries in archive order. The archive is never extracted.
func ListEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError(path, "open", err)
	}
	defer f.Close()

	return List(f)
}

// List reads zip entries from r.
func List(r io.Reader) ([]Entry, error) {
	zr := zipstream.NewReader(r)

	var entries []Entry
	for {
		e, err := zr.GetNextEntry()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Name: e.Name,
			Size: int64(e.UncompressedSize64),
			Dir:  e.IsDir(),
		})
	}
	return entries, nil
}

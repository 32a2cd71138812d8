package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
}

func TestEnsureDirConcurrent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shared")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- EnsureDir(dir)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent EnsureDir: %v", err)
		}
	}
}

func TestWriteStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	body := []byte("archive bytes")

	written, err := WriteStream(path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("WriteStream: %v", err)
	}
	if written != int64(len(body)) {
		t.Errorf("written = %d, want %d", written, len(body))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Error("file content mismatch")
	}
}

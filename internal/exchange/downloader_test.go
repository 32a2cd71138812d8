package exchange

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func archiveServer(t *testing.T, body []byte) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.HasSuffix(r.URL.Path, "/broken.zip") {
			http.Error(w, "archive host down", http.StatusInternalServerError)
			return
		}
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func downloadableAsset(assetID, link string) *AssetDescriptor {
	return &AssetDescriptor{
		ID:      "org.example/" + assetID + "/1.0.0",
		GroupID: "org.example",
		AssetID: assetID,
		Version: "1.0.0",
		FatRAML: &AssetFile{Classifier: FatRAMLClassifier, Packaging: "zip", ExternalLink: link},
	}
}

func TestFetchExchangeFileSkipsUnresolvableAsset(t *testing.T) {
	server, hits := archiveServer(t, []byte("zipbytes"))

	sink := &recordingSink{}
	c := newTestClient(server.URL, sink)
	destDir := t.TempDir()

	asset := &AssetDescriptor{GroupID: "org.example", AssetID: "manual-only"}
	if err := c.FetchExchangeFile(context.Background(), asset, destDir); err != nil {
		t.Fatalf("a skip is not a failure: %v", err)
	}

	if got := hits.Load(); got != 0 {
		t.Errorf("made %d network calls, want 0", got)
	}
	entries, _ := os.ReadDir(destDir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files, want 0", len(entries))
	}
	if sink.count() != 1 {
		t.Fatalf("want exactly one warning, got %d", sink.count())
	}
	if hint := sink.warnings[0].hint; !strings.Contains(hint, "org.example/manual-only/") {
		t.Errorf("warning hint should name the manual URL, got %q", hint)
	}
}

func TestFetchExchangeFile(t *testing.T) {
	body := bytes.Repeat([]byte("raml"), 1024)
	server, _ := archiveServer(t, body)

	c := newTestClient(server.URL, &recordingSink{})
	destDir := t.TempDir()
	asset := downloadableAsset("payments-api", server.URL+"/payments.zip")

	if err := c.FetchExchangeFile(context.Background(), asset, destDir); err != nil {
		t.Fatalf("FetchExchangeFile: %v", err)
	}

	target := filepath.Join(destDir, "payments-api.zip")
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	if info.Size() != int64(len(body)) {
		t.Errorf("archive size = %d, want %d", info.Size(), len(body))
	}
}

func TestFetchExchangeFileOverwrites(t *testing.T) {
	body := []byte("fresh archive bytes")
	server, _ := archiveServer(t, body)

	c := newTestClient(server.URL, &recordingSink{})
	destDir := t.TempDir()
	target := filepath.Join(destDir, "payments-api.zip")
	if err := os.WriteFile(target, bytes.Repeat([]byte("stale"), 100), 0644); err != nil {
		t.Fatal(err)
	}

	asset := downloadableAsset("payments-api", server.URL+"/payments.zip")
	if err := c.FetchExchangeFile(context.Background(), asset, destDir); err != nil {
		t.Fatalf("FetchExchangeFile: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("existing archive was not overwritten")
	}
}

func TestFetchExchangeFileMissingArchive(t *testing.T) {
	server, _ := archiveServer(t, nil)
	c := newTestClient(server.URL, &recordingSink{})

	asset := &AssetDescriptor{
		ID:      "org.example/no-archive/1.0.0",
		GroupID: "org.example",
		AssetID: "no-archive",
	}
	if err := c.FetchExchangeFile(context.Background(), asset, t.TempDir()); err == nil {
		t.Fatal("expected an error for an asset without a fat-raml archive")
	}
}

func TestFetchExchangeFiles(t *testing.T) {
	body := []byte("zipbytes")
	server, _ := archiveServer(t, body)

	c := newTestClient(server.URL, &recordingSink{})
	destDir := t.TempDir()

	assets := []*AssetDescriptor{
		downloadableAsset("payments-api", server.URL+"/a.zip"),
		downloadableAsset("orders-api", server.URL+"/b.zip"),
		downloadableAsset("customers-api", server.URL+"/c.zip"),
	}

	got, err := c.FetchExchangeFiles(context.Background(), assets, destDir)
	if err != nil {
		t.Fatalf("FetchExchangeFiles: %v", err)
	}
	if got != destDir {
		t.Errorf("returned dir = %q, want %q", got, destDir)
	}
	for _, asset := range assets {
		if _, err := os.Stat(filepath.Join(destDir, asset.AssetID+".zip")); err != nil {
			t.Errorf("missing archive for %s: %v", asset.AssetID, err)
		}
	}
}

func TestFetchExchangeFilesFailFast(t *testing.T) {
	server, _ := archiveServer(t, []byte("zipbytes"))

	c := newTestClient(server.URL, &recordingSink{})
	assets := []*AssetDescriptor{
		downloadableAsset("payments-api", server.URL+"/a.zip"),
		downloadableAsset("doomed-api", server.URL+"/broken.zip"),
	}

	if _, err := c.FetchExchangeFiles(context.Background(), assets, t.TempDir()); err == nil {
		t.Fatal("expected the batch to fail when one download fails")
	}
}

func TestFetchExchangeFileDefaultDir(t *testing.T) {
	body := []byte("zipbytes")
	server, _ := archiveServer(t, body)

	wd := t.TempDir()
	oldWD, _ := os.Getwd()
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	c := newTestClient(server.URL, &recordingSink{})
	asset := downloadableAsset("payments-api", server.URL+"/a.zip")
	if err := c.FetchExchangeFile(context.Background(), asset, ""); err != nil {
		t.Fatalf("FetchExchangeFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(wd, DefaultDownloadDir, "payments-api.zip")); err != nil {
		t.Errorf("archive not written to the default directory: %v", err)
	}
}

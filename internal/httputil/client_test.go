package httputil

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muleops/exchange-cli/util/common/errors"
)

func TestBearerAuthorizer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := NewClient(nil, NewBearerAuthorizer("s3cret"))
	var body struct {
		OK bool `json:"ok"`
	}
	if err := c.Get(context.Background(), server.URL, &body); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer s3cret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if !body.OK {
		t.Error("response body not decoded")
	}
}

func TestGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(nil)
	err := c.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected an error for a 403")
	}
	var statusErr *errors.StatusError
	if !stderrors.As(err, &statusErr) {
		t.Fatalf("error %T is not a StatusError", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
}

func TestGetStreamDoesNotRetryServerErrors(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "flaky", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(nil)
	if _, err := c.GetStream(context.Background(), server.URL); err == nil {
		t.Fatal("expected an error for a 500")
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (no retries)", hits)
	}
}

func TestGetStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stream me"))
	}))
	defer server.Close()

	c := NewClient(nil)
	resp, err := c.GetStream(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetStream: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

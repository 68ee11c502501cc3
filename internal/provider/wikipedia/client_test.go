package wikipedia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSummarySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/en/api/rest_v1/page/summary/Photosynthesis" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"title":"Photosynthesis","extract":"A process used by plants."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/%s")
	got, err := client.Summary(context.Background(), "en", "Photosynthesis")
	if err != nil {
		t.Fatalf("Summary err: %v", err)
	}
	if got.Title != "Photosynthesis" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.Extract != "A process used by plants." {
		t.Fatalf("unexpected extract: %q", got.Extract)
	}
}

func TestSummaryNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/%s")
	if _, err := client.Summary(context.Background(), "en", "Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/%s")
	if _, err := client.Summary(context.Background(), "en", "Broken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(&http.Client{}, srv.URL+"/%s")
	if _, err := client.Summary(context.Background(), "en", "Anything"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryMissingTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"extract":"orphan extract"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/%s")
	if _, err := client.Summary(context.Background(), "en", "Orphan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

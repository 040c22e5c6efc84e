package chaparral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestAwaitSearchResult_ReturnsOnTerminalStatus(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search_results/sr123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		status := StatusRunning
		if polls.Add(1) >= 3 {
			status = StatusSucceeded
		}
		_ = json.NewEncoder(w).Encode(SearchResult{ID: "sr123", Status: status})
	}))
	defer srv.Close()

	c, err := New("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithPollInterval(time.Millisecond, 5*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.AwaitSearchResult(context.Background(), "sr123")
	if err != nil {
		t.Fatalf("AwaitSearchResult: %v", err)
	}
	if got.Status != StatusSucceeded {
		t.Fatalf("expected SUCCEEDED, got %s", got.Status)
	}
	if n := polls.Load(); n < 3 {
		t.Fatalf("expected at least 3 polls, got %d", n)
	}
}

func TestAwaitSearchResult_FailedIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResult{ID: "sr123", Status: StatusFailed})
	}))
	defer srv.Close()

	c, err := New("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithPollInterval(time.Millisecond, 5*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.AwaitSearchResult(context.Background(), "sr123")
	if err != nil {
		t.Fatalf("AwaitSearchResult: %v", err)
	}
	if got.Status != StatusFailed {
		t.Fatalf("expected FAILED record, got %s", got.Status)
	}
}

func TestAwaitSearchResult_APIErrorAborts(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, err := New("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithPollInterval(time.Millisecond, 5*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.AwaitSearchResult(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if polls.Load() != 1 {
		t.Fatalf("API errors must not be retried, got %d polls", polls.Load())
	}
}

func TestAwaitSearchResult_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResult{ID: "sr123", Status: StatusRunning})
	}))
	defer srv.Close()

	c, err := New("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithPollInterval(time.Millisecond, 5*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	if _, err := c.AwaitSearchResult(ctx, "sr123"); err == nil {
		t.Fatal("expected error after context deadline")
	}
}

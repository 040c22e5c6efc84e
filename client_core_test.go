package chaparral

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("empty token accepted")
	}
	c, err := New("test-token")
	if err != nil || c == nil {
		t.Fatalf("New: c=%v err=%v", c, err)
	}
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("default base URL not applied: %q", c.baseURL)
	}
}

func TestBearerHeaderOnEveryAPIRequest(t *testing.T) {
	var gotAuth string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("secret-token", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/projects", nil)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("Authorization header = %q", gotAuth)
	}
	// The original request must stay untouched.
	if req.Header.Get("Authorization") != "" {
		t.Fatal("caller's request was mutated")
	}
}

func TestFilesClientSkipsBearerHeader(t *testing.T) {
	var gotAuth string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("secret-token", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.FetchFile(context.Background(), "http://files.example/artifact"); err != nil {
		t.Fatalf("FetchFile: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("presigned fetch carried Authorization %q", gotAuth)
	}
}

func TestCreateFastaNotImplemented(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Error("CreateFasta must not issue a request")
		return nil, errors.New("unreachable")
	})
	c, err := New("test-token", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = c.CreateFasta(context.Background())
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if !IsNotImplemented(err) {
		t.Fatal("IsNotImplemented should report true")
	}
}

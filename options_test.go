package chaparral

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("test-token", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if _, err := New("test-token", WithHTTPTimeout(0)); err == nil {
		t.Fatal("zero timeout accepted")
	}
}

func TestWithBaseURL(t *testing.T) {
	c, err := New("test-token", WithBaseURL("https://api.example.org/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != "https://api.example.org" {
		t.Fatalf("trailing slash not stripped: %q", c.baseURL)
	}
	if _, err := New("test-token", WithBaseURL("")); err == nil {
		t.Fatal("empty base URL accepted")
	}
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("test-token", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithPollInterval(t *testing.T) {
	c, err := New("test-token", WithPollInterval(time.Second, 10*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.pollInitialInterval != time.Second || c.pollMaxInterval != 10*time.Second {
		t.Fatalf("poll interval not applied: %+v", c)
	}
	if _, err := New("test-token", WithPollInterval(time.Second, time.Millisecond)); err == nil {
		t.Fatal("max < initial accepted")
	}
	if _, err := New("test-token", WithPollInterval(0, time.Second)); err == nil {
		t.Fatal("zero initial accepted")
	}
}

func TestWithHTTPClientNil(t *testing.T) {
	if _, err := New("test-token", WithHTTPClient(nil)); err == nil {
		t.Fatal("nil http client accepted")
	}
}

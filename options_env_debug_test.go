package chaparral

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("CHAPARRAL_DEBUG", "true")
	c, err := New("test-token")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bt, ok := c.http.Transport.(*bearerTransport)
	if !ok {
		t.Fatalf("expected bearerTransport on top, got %T", c.http.Transport)
	}
	if _, ok := bt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath bearer wrapper when CHAPARRAL_DEBUG=true, got %T", bt.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("test-token", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CHAPARRAL_API_TOKEN", "env-token")
	t.Setenv("CHAPARRAL_BASE_URL", "https://staging.example.org")
	t.Setenv("CHAPARRAL_HTTP_TIMEOUT", "3s")
	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.token != "env-token" || c.baseURL != "https://staging.example.org" {
		t.Fatalf("env settings not applied: %+v", c)
	}
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("env timeout not applied: %v", c.http.Timeout)
	}
}

func TestNewFromEnv_MissingToken(t *testing.T) {
	t.Setenv("CHAPARRAL_API_TOKEN", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("missing token accepted")
	}
}

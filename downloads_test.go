package chaparral

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPeptideCSVResolvesManifest(t *testing.T) {
	const report = "peptide,proteins,descriptions,genes,psms,peptide_q,best_filename,best_scannr\n"

	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("artifact fetch carried Authorization %q", auth)
		}
		_, _ = w.Write([]byte(report))
	}))
	defer files.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/search_results/sr123/download" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"peptide.csv": "` + files.URL + `/pep"}`))
	}))
	defer api.Close()

	c, err := New("test-token", WithBaseURL(api.URL), WithHTTPClient(api.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.FetchPeptideCSV(context.Background(), "sr123")
	if err != nil {
		t.Fatalf("FetchPeptideCSV: %v", err)
	}
	if got != report {
		t.Fatalf("payload mismatch: %q", got)
	}
}

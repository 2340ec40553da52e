package pollinations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompleteReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/prompt/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("  Looks like a strong resume.\n"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	got, err := client.Complete(context.Background(), "analyze this resume")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Looks like a strong resume." {
		t.Fatalf("unexpected completion %q", got)
	}
}

func TestCompleteEscapesPrompt(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	prompt := "score this: resume vs job? 100%"
	if _, err := client.Complete(context.Background(), prompt); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	// The raw prompt must survive the round trip through path escaping.
	if gotPath != "/prompt/"+prompt {
		t.Fatalf("expected decoded path to carry prompt, got %q", gotPath)
	}
}

func TestCompleteRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream overloaded"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestCompleteRejectsEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("   \n"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty completion")
	}
}

func TestCompleteRejectsEmptyPrompt(t *testing.T) {
	client := NewClient("http://unused.invalid")
	if _, err := client.Complete(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

package local

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"jobtrack-backend/internal/shared/storage/object"
)

func TestSaveAndOpenRoundtrip(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080", "test-secret")
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "user-1", "my resume.pdf", strings.NewReader("%PDF-1.4 test content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("%PDF-1.4 test content")) {
		t.Fatalf("unexpected size %d", size)
	}
	if mimeType == "" {
		t.Fatal("expected sniffed mime type")
	}
	if !strings.Contains(key, "/") {
		t.Fatalf("expected owner-namespaced key, got %q", key)
	}
	if strings.Contains(key, " ") {
		t.Fatalf("expected sanitized key, got %q", key)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 test content" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestSaveNeverOverwrites(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := New(t.TempDir(), "http://localhost:8080", "test-secret").
		WithClock(func() time.Time { return fixed })
	ctx := context.Background()

	if _, _, _, err := store.Save(ctx, "user-1", "cv.pdf", strings.NewReader("one")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	_, _, _, err := store.Save(ctx, "user-1", "cv.pdf", strings.NewReader("two"))
	if !errors.Is(err, object.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDeleteMissingObject(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080", "test-secret")

	err := store.Delete(context.Background(), "deadbeef/1_cv.pdf")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSignURLVerifiesAndExpires(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := New(t.TempDir(), "http://localhost:8080", "test-secret").
		WithClock(func() time.Time { return now })
	ctx := context.Background()

	key, _, _, err := store.Save(ctx, "user-1", "cv.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	signed, err := store.SignURL(ctx, key, time.Hour)
	if err != nil {
		t.Fatalf("SignURL: %v", err)
	}

	parsed, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	exp := parsed.Query().Get("exp")
	sig := parsed.Query().Get("sig")
	if exp == "" || sig == "" {
		t.Fatalf("expected exp and sig query params, got %q", signed)
	}

	if err := store.VerifySignedRequest(key, exp, sig); err != nil {
		t.Fatalf("VerifySignedRequest: %v", err)
	}

	// A tampered signature is rejected.
	if err := store.VerifySignedRequest(key, exp, sig+"ff"); err == nil {
		t.Fatal("expected tampered signature to fail")
	}

	// The same URL stops working once the TTL passes.
	now = now.Add(2 * time.Hour)
	if err := store.VerifySignedRequest(key, exp, sig); err == nil {
		t.Fatal("expected expired url to fail")
	}
}

func TestSignURLRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir(), "http://localhost:8080", "test-secret")
	if _, err := store.SignURL(context.Background(), "../etc/passwd", time.Hour); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}

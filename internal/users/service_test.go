package users

import (
	"context"
	"testing"

	sharedauth "jobtrack-backend/internal/shared/auth"
)

func TestResolveProvisionsNewUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Resolve(context.Background(), sharedauth.Claims{
		Sub:     "google:123",
		Email:   "Alice@Example.com",
		Name:    "Alice",
		Picture: "https://example.com/a.png",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated user id")
	}
	if user.SubjectID != "google:123" {
		t.Fatalf("expected subject google:123, got %q", user.SubjectID)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}

	again, err := svc.Resolve(context.Background(), sharedauth.Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("expected same user on repeat resolve, got %s and %s", user.ID, again.ID)
	}
}

func TestResolveAdoptsSubjectByEmail(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	first, err := svc.Resolve(context.Background(), sharedauth.Claims{
		Sub:   "clerk:abc",
		Email: "bob@example.com",
	})
	if err != nil {
		t.Fatalf("Resolve first: %v", err)
	}

	migrated, err := svc.Resolve(context.Background(), sharedauth.Claims{
		Sub:   "google:456",
		Email: "bob@example.com",
	})
	if err != nil {
		t.Fatalf("Resolve migrated: %v", err)
	}
	if migrated.ID != first.ID {
		t.Fatalf("expected existing user adopted, got %s and %s", first.ID, migrated.ID)
	}
	if migrated.SubjectID != "google:456" {
		t.Fatalf("expected new subject attached, got %q", migrated.SubjectID)
	}

	// The new subject now resolves directly.
	bySubject, err := repo.GetBySubject(context.Background(), "google:456")
	if err != nil {
		t.Fatalf("GetBySubject: %v", err)
	}
	if bySubject.ID != first.ID {
		t.Fatalf("expected subject lookup to hit migrated row, got %s", bySubject.ID)
	}
}

func TestResolveRequiresSubject(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Resolve(context.Background(), sharedauth.Claims{Email: "x@example.com"}); err == nil {
		t.Fatal("expected error for missing subject")
	}
}

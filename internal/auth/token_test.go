package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)
	email := "a@x.com"

	tok, err := svc.Issue(email)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}

	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != email {
		t.Fatalf("email mismatch: got %q want %q", got, email)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", -1*time.Second)

	tok, err := svc.Issue("u1@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k", time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

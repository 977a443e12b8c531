package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if !CheckPassword(hash, "secret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "Secret") {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword(hash, "") {
		t.Fatal("empty password accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (per-record salt)")
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal the plaintext")
	}

	ok, err := ComparePasswordAndHash("pw123", hash)
	if err != nil {
		t.Fatalf("ComparePasswordAndHash error: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}
}

func TestCompare_MismatchIsNotAnError(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := ComparePasswordAndHash("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not error, got %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same secret must differ (salt)")
	}
}

func TestGenerateUserID(t *testing.T) {
	t.Parallel()

	id, err := GenerateUserID()
	if err != nil {
		t.Fatalf("GenerateUserID error: %v", err)
	}
	if len(id) != 10 || !strings.HasPrefix(id, "USR00") {
		t.Fatalf("unexpected id format: %q", id)
	}
}

package auth

import (
	"strings"
	"testing"
)

func TestHashSecret_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	h, err := HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	if strings.Contains(h, "hunter2") {
		t.Fatalf("hash contains plaintext: %q", h)
	}
	if !strings.HasPrefix(h, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", h)
	}
}

func TestCheckSecret(t *testing.T) {
	t.Parallel()

	h, err := HashSecret("correct horse")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}

	if !CheckSecret(h, "correct horse") {
		t.Fatalf("expected matching secret to verify")
	}
	if CheckSecret(h, "battery staple") {
		t.Fatalf("expected wrong secret to fail")
	}
	if CheckSecret("not-a-hash", "anything") {
		t.Fatalf("expected malformed hash to fail")
	}
}

func TestHashSecret_DistinctSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashSecret("same input")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	h2, err := HashSecret("same input")
	if err != nil {
		t.Fatalf("HashSecret error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same secret must differ (random salt)")
	}
}

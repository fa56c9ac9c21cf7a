package service

import (
	"strings"
	"testing"
)

func TestPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestPassword_LongInput(t *testing.T) {
	long := strings.Repeat("a", 200)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !VerifyPassword(long, hash) {
		t.Fatalf("long password did not verify against its own hash")
	}
}

func TestPassword_TruncationEquivalence(t *testing.T) {
	// Two passwords that agree on their first 72 bytes must verify
	// interchangeably against each other's hashes.
	prefix := strings.Repeat("x", 72)
	p1 := prefix + "tail-one"
	p2 := prefix + "completely-different-tail"

	h1, err := HashPassword(p1)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := HashPassword(p2)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !VerifyPassword(p2, h1) {
		t.Fatalf("p2 did not verify against hash of p1 despite shared 72-byte prefix")
	}
	if !VerifyPassword(p1, h2) {
		t.Fatalf("p1 did not verify against hash of p2 despite shared 72-byte prefix")
	}
}

func TestPassword_DifferWithinLimit(t *testing.T) {
	h, err := HashPassword(strings.Repeat("a", 71) + "b")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if VerifyPassword(strings.Repeat("a", 72), h) {
		t.Fatalf("passwords differing within the first 72 bytes verified")
	}
}

func TestPassword_MultiByteBoundary(t *testing.T) {
	// 24 three-byte runes put the boundary mid-rune for the 73rd byte; both
	// paths must truncate at the byte level, not the rune level.
	base := strings.Repeat("€", 24) // 72 bytes
	h, err := HashPassword(base + "€")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !VerifyPassword(base, h) {
		t.Fatalf("byte-level truncation not applied consistently")
	}
}

package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_RandomSalt(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same plaintext must differ")
	}
	if !VerifyPassword(first, "same-password") || !VerifyPassword(second, "same-password") {
		t.Fatalf("both hashes must verify against the plaintext")
	}
}

func TestVerifyPassword_MalformedHashFailsClosed(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"} {
		if VerifyPassword(hash, "anything") {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}

package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "admin123" {
		t.Fatal("HashPassword() returned the plain text")
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "admin124") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("not-a-hash", "admin123") {
		t.Error("CheckPassword() accepted a corrupt hash")
	}
}

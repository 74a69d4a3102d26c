package utils

import (
	"strings"
	"testing"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "p@ssw0rd" {
		t.Fatalf("expected a real hash, got %q", hash)
	}
	if !CheckPasswordHash("p@ssw0rd", hash) {
		t.Fatalf("expected check ok")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected check fail")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("id", "mail@example.com"); err == nil {
		t.Fatalf("expected an error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("id", "mail@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a JWT, got %q", token)
	}
}

package handler

import (
	"strings"
	"testing"
)

func TestValidator_RegisterMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	})
	if err == nil {
		t.Fatalf("expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{
		"username must be at least 3 characters",
		"email must be a valid email",
		"password must be at least 6 characters",
		"role must be buyer or seller",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{})
	if err == nil {
		t.Fatalf("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "email is required") {
		t.Fatalf("expected email requirement, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "password is required") {
		t.Fatalf("expected password requirement, got %q", err.Error())
	}
}

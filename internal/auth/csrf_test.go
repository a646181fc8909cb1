package auth

import (
	"net/http/httptest"
	"testing"
)

func TestGenerateCSRFToken(t *testing.T) {
	first, err := GenerateCSRFToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(first))
	}

	second, err := GenerateCSRFToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if first == second {
		t.Error("Expected two generated tokens to differ")
	}
}

func TestCheckCSRF(t *testing.T) {
	cases := []struct {
		name   string
		form   string
		cookie string
		want   bool
	}{
		{"matching tokens", "abc123", "abc123", true},
		{"mismatched tokens", "abc123", "def456", false},
		{"missing form token", "", "abc123", false},
		{"missing cookie", "abc123", "", false},
		{"both missing", "", "", false},
		{"prefix is not a match", "abc", "abc123", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckCSRF(tc.form, tc.cookie); got != tc.want {
				t.Errorf("CheckCSRF(%q, %q) = %v, want %v", tc.form, tc.cookie, got, tc.want)
			}
		})
	}
}

func TestSetCSRFCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetCSRFCookie(w, "tok", true)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CSRFCookieName {
		t.Errorf("Expected cookie name %s, got %s", CSRFCookieName, c.Name)
	}
	if c.Value != "tok" {
		t.Errorf("Expected cookie value tok, got %s", c.Value)
	}
	if c.Path != LoginRoute {
		t.Errorf("Expected cookie scoped to %s, got %s", LoginRoute, c.Path)
	}
	if !c.HttpOnly {
		t.Error("Expected HttpOnly cookie")
	}
	if !c.Secure {
		t.Error("Expected Secure cookie")
	}
}

func TestClearCSRFCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCSRFCookie(w, false)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CSRFCookieName {
		t.Errorf("Expected cookie name %s, got %s", CSRFCookieName, c.Name)
	}
	if c.Value != "" {
		t.Errorf("Expected empty value, got %s", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("Expected expiring MaxAge, got %d", c.MaxAge)
	}
}

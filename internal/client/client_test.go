package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spellcms/spellcms/types"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]types.Post{})
	}))
	defer ts.Close()

	c := New(ts.URL, staticTokens("abc123"))
	if _, err := NewPostService(c).List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q, want Bearer abc123", gotAuth)
	}
}

func TestNoHeaderWhenSignedOut(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]types.Post{})
	}))
	defer ts.Close()

	c := New(ts.URL, staticTokens(""))
	if _, err := NewPostService(c).List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestAPIErrorMapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "post not found"})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	_, err := NewPostService(c).Get(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "post not found" {
		t.Fatalf("APIError = %+v", apiErr)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound must match a 404")
	}
	if IsConflict(err) || IsUnauthorized(err) {
		t.Fatal("status predicates must not cross-match")
	}
}

func TestErrorMessageAcceptsMessageKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	_, err := NewPostService(c).List(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "token expired" {
		t.Fatalf("Message = %q", apiErr.Message)
	}
	if !IsUnauthorized(err) {
		t.Fatal("IsUnauthorized must match a 401")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	// No server: a network call would fail loudly.
	c := New("http://127.0.0.1:0", nil)
	auth := NewAuthService(c)

	_, err := auth.Login(context.Background(), Credentials{Email: "not-an-email", Password: "x"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("Login error = %v, want ErrInvalidEmail", err)
	}

	_, err = auth.Login(context.Background(), Credentials{Email: "", Password: ""})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Login error = %v, want ErrMissingCredentials", err)
	}
}

func TestRegisterConflictMapsToErrUserExists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "User already exists"})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	_, err := NewAuthService(c).Register(context.Background(), Registration{
		Email: "dup@example.com", Password: "pw", Name: "Dup",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("Register error = %v, want ErrUserExists", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "a@b.c" {
			t.Errorf("email = %q", creds.Email)
		}
		_ = json.NewEncoder(w).Encode(AuthResult{
			Token: "tok",
			User:  types.User{ID: 7, Email: "a@b.c", Name: "A"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	result, err := NewAuthService(c).Login(context.Background(), Credentials{Email: " a@b.c ", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok" || result.User.ID != 7 {
		t.Fatalf("result = %+v", result)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

func testAuthService(t *testing.T) *authService {
	t.Helper()
	t.Setenv("AUTH_USERNAME", "operator")
	t.Setenv("AUTH_PASSWORD", "secret-pass")
	t.Setenv("AUTH_PASSWORD_HASH", "")
	return NewAuthService([]byte("test-signing-key")).(*authService)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "operator", "secret-pass", nil},
		{"wrong password", "operator", "nope", apperror.ErrInvalidCredentials},
		{"wrong username", "admin", "secret-pass", apperror.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testAuthService(t)
			res, err := svc.Login(LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if res.Token == "" {
					t.Error("Login() returned empty token")
				}
				if res.Username != "operator" {
					t.Errorf("Username = %s, want operator", res.Username)
				}
			}
		})
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	t.Setenv("AUTH_USERNAME", "operator")
	t.Setenv("AUTH_PASSWORD", "")
	t.Setenv("AUTH_PASSWORD_HASH", string(hash))
	svc := NewAuthService([]byte("test-signing-key"))

	if _, err := svc.Login(LoginRequest{Username: "operator", Password: "hashed-pass"}); err != nil {
		t.Errorf("Login() with matching hash error = %v", err)
	}
	if _, err := svc.Login(LoginRequest{Username: "operator", Password: "wrong"}); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRefusedWithoutConfiguredCredential(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "")
	t.Setenv("AUTH_PASSWORD", "")
	t.Setenv("AUTH_PASSWORD_HASH", "")
	svc := NewAuthService([]byte("test-signing-key"))

	if _, err := svc.Login(LoginRequest{Username: "", Password: ""}); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerify(t *testing.T) {
	svc := testAuthService(t)

	res, err := svc.Login(LoginRequest{Username: "operator", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	username, err := svc.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "operator" {
		t.Errorf("Verify() username = %s, want operator", username)
	}

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("Verify(garbage) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := testAuthService(t)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	res, err := svc.Login(LoginRequest{Username: "operator", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := svc.Verify(res.Token); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

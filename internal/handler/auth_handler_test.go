package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"backend/internal/service"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	t.Setenv("AUTH_USERNAME", "operator")
	t.Setenv("AUTH_PASSWORD", "secret-pass")
	t.Setenv("AUTH_PASSWORD_HASH", "")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewAuthHandler(service.NewAuthService([]byte("handler-test-secret"))).RegisterRoutes(router.Group(""))
	return router
}

func TestLoginSuccess(t *testing.T) {
	router := setupAuthRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"operator","password":"secret-pass"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token"`) {
		t.Errorf("body missing token: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "access_token=") {
		t.Error("login should set the access_token cookie")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupAuthRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"operator","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLoginMalformedPayload(t *testing.T) {
	router := setupAuthRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"operator"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	router := setupAuthRouter(t)

	login := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"operator","password":"secret-pass"}`, "")
	if login.Code != http.StatusOK {
		t.Fatalf("login failed: %d", login.Code)
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid login body: %v", err)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/auth/verify", "", "Bearer "+body.Data.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"valid":true`) {
		t.Errorf("verify body = %s, want valid:true", rec.Body.String())
	}
}

func TestVerifyWithoutToken(t *testing.T) {
	router := setupAuthRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/auth/verify", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

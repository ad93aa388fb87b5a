package handler

import (
	"net/http"
	"strings"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the auth endpoints. Login is the only route in the
// API that does not require a bearer token.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/verify", h.Verify)
		auth.POST("/logout", h.Logout)
	}
}

// Login authenticates the shared operator credential
// @Summary      Login
// @Description  Authenticates the shared username/password and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	tokenRes, err := h.authService.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetTokenCookie(c, tokenRes.Token)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tokenRes))
}

// Verify reports whether the presented bearer token is still valid
// @Summary      Verify token
// @Description  Validates the bearer token and returns the username it was issued to
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=object}
// @Failure      401  {object}  response.Response
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "No token provided"))
			return
		}
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	username, err := h.authService.Verify(tokenString)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"valid":    true,
		"username": username,
	}))
}

// Logout clears the token cookie for browser clients
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)
	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Logged out"))
}

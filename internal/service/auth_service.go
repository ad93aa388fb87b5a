package service

import (
	"crypto/subtle"
	"os"
	"time"

	"backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// --- DTOs ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthService guards the single shared operator credential and issues
// stateless bearer tokens. There is no user table: the credential lives in
// the environment and the middleware only needs the signing key.
type AuthService interface {
	Login(req LoginRequest) (*TokenResponse, error)
	Verify(tokenString string) (string, error)
}

type authService struct {
	secret     []byte
	tokenTTL   time.Duration
	now        func() time.Time
	username   string
	password   string
	passwdHash string // optional bcrypt hash, preferred over plain password
}

// NewAuthService reads the shared credential from AUTH_USERNAME and either
// AUTH_PASSWORD_HASH (bcrypt) or AUTH_PASSWORD.
func NewAuthService(secret []byte) AuthService {
	return &authService{
		secret:     secret,
		tokenTTL:   24 * time.Hour,
		now:        time.Now,
		username:   os.Getenv("AUTH_USERNAME"),
		password:   os.Getenv("AUTH_PASSWORD"),
		passwdHash: os.Getenv("AUTH_PASSWORD_HASH"),
	}
}

func (s *authService) Login(req LoginRequest) (*TokenResponse, error) {
	if s.username == "" || (s.password == "" && s.passwdHash == "") {
		return nil, apperror.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	if s.passwdHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwdHash), []byte(req.Password)); err != nil {
			return nil, apperror.ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": s.username,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, apperror.From(err)
	}

	return &TokenResponse{Token: tokenString, Username: s.username}, nil
}

// Verify checks a bearer token and returns the username it was issued to.
func (s *authService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.ErrInvalidToken
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", apperror.ErrInvalidToken
	}
	return username, nil
}

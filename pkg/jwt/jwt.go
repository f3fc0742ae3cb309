package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongType    = errors.New("wrong token type")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// Claims carries the authenticated identity plus the privilege codes the
// middleware authorizes against. TokenVersion enforces single-session:
// a new login rotates the version and older tokens stop validating.
type Claims struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	RoleCode     string    `json:"role_code"`
	Privileges   []string  `json:"privileges"`
	TokenVersion string    `json:"token_version"`
	TokenType    string    `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is what login and refresh hand back; the client keeps both.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func secretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me-in-production-this-is-not-a-secret"
	}
	return []byte(secret)
}

// GeneratePair issues a short-lived access token and a longer refresh token
// with identical identity claims.
func GeneratePair(userID uuid.UUID, email, name, roleCode string, privileges []string, tokenVersion string) (*TokenPair, error) {
	access, err := sign(userID, email, name, roleCode, privileges, tokenVersion, TypeAccess, accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := sign(userID, email, name, roleCode, privileges, tokenVersion, TypeRefresh, refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func sign(userID uuid.UUID, email, name, roleCode string, privileges []string, tokenVersion, tokenType string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:       userID,
		Email:        email,
		Name:         name,
		RoleCode:     roleCode,
		Privileges:   privileges,
		TokenVersion: tokenVersion,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-pharmacy-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateAccess parses a token and requires it to be an access token.
func ValidateAccess(tokenString string) (*Claims, error) {
	return validate(tokenString, TypeAccess)
}

// ValidateRefresh parses a token and requires it to be a refresh token.
func ValidateRefresh(tokenString string) (*Claims, error) {
	return validate(tokenString, TypeRefresh)
}

func validate(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongType
	}
	return claims, nil
}

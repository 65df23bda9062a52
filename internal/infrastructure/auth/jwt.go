package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// ErrInvalidToken is returned for every decode failure: bad signature,
// expiry, wrong type, or revocation. Decoding fails closed; callers
// never see a partial claim set.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID    uint      `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	Scopes    []string  `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and validates signed bearer tokens and keeps the
// revocation set for tokens invalidated before their natural expiry.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
	revoked          *RevocationList
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
		revoked:          NewRevocationList(),
	}
}

func (s *JWTService) sign(userID uint, tokenType TokenType, scopes []string, ttl time.Duration) (string, *Claims, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		Scopes:    scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, claims, nil
}

// Generate issues an access/refresh token pair for the given principal.
// The scope list is embedded in the access token only.
func (s *JWTService) Generate(userID uint, scopes []string) (*TokenPair, error) {
	accessTTL := time.Duration(s.accessExpMinutes) * time.Minute
	access, _, err := s.sign(userID, TokenTypeAccess, scopes, accessTTL)
	if err != nil {
		return nil, err
	}

	refreshTTL := time.Duration(s.refreshExpDays) * 24 * time.Hour
	refresh, _, err := s.sign(userID, TokenTypeRefresh, nil, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// Verify decodes a token of the expected type. Any signature, expiry,
// type, or revocation problem yields ErrInvalidToken.
func (s *JWTService) Verify(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expected {
		return nil, ErrInvalidToken
	}
	if s.revoked.IsRevoked(claims.ID) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke invalidates a syntactically valid token ahead of its expiry.
// Revoking an already invalid token is a no-op.
func (s *JWTService) Revoke(tokenString string) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ExpiresAt == nil {
		return
	}
	s.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
}

// Refresh rotates a refresh token: the presented token is revoked and
// a fresh pair is issued with the given scopes.
func (s *JWTService) Refresh(refreshTokenString string, scopes []string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	s.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)

	return s.Generate(claims.UserID, scopes)
}

// AccessExpMinutes returns the access token expiration time in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the session cookie. Subject in the
// registered claims carries the profile id (the IdP subject).
type SessionClaims struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and verifies the HS256 session tokens carried in
// the session cookie.
type SessionTokenService struct {
	secret   []byte
	expHours int
}

func NewSessionTokenService(secret string, expHours int) *SessionTokenService {
	return &SessionTokenService{secret: []byte(secret), expHours: expHours}
}

// Issue signs a session token for the resolved profile.
func (s *SessionTokenService) Issue(profileID, email, fullName string) (string, error) {
	now := time.Now().UTC()
	claims := &SessionClaims{
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token.
func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// ShouldRefresh reports whether the token is inside the sliding-refresh
// window (final quarter of its lifetime).
func (s *SessionTokenService) ShouldRefresh(claims *SessionClaims) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	threshold := time.Duration(s.expHours) * time.Hour / 4
	return time.Now().UTC().Add(threshold).After(claims.ExpiresAt.Time)
}

// Refresh reissues the session with a fresh expiry, keeping the identity.
func (s *SessionTokenService) Refresh(claims *SessionClaims) (string, error) {
	return s.Issue(claims.Subject, claims.Email, claims.FullName)
}

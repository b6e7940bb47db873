package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures are reported with distinct causes so callers
// can surface "expired" separately from "tampered" and "absent".
var (
	ErrTokenMissing = errors.New("token not provided")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTManager signs and verifies the session tokens issued at register/login.
// Tokens are stateless; there is no server-side revocation.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Claims is the signed claim set: user id, canonical identifier and account
// type, plus the registered expiry.
type Claims struct {
	UserID     string `json:"id"`
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
	jwt.RegisteredClaims
}

// Generate signs a token for the given user valid for the manager's TTL.
func (m *JWTManager) Generate(userID, identifier, userType string) (string, time.Time, error) {
	exp := time.Now().Add(m.ttl)
	claims := &Claims{
		UserID:     userID,
		Identifier: identifier,
		Type:       userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Parse verifies signature and expiry. It returns ErrTokenExpired for a
// token past its expiry and ErrTokenInvalid for anything else that fails
// verification (bad signature, malformed token, wrong algorithm).
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

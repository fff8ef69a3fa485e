package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "central-gpt"

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	AIName   string `json:"ai_name,omitempty"`
	DevName  string `json:"dev_name,omitempty"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager returns a Manager signing HS256 tokens with secret.
func NewJWTManager(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, errors.New("scope: jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("scope: token ttl must be positive")
	}
	return &jwtManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *jwtManager) Generate(s Scope) (string, time.Time, error) {
	if s.UserID == "" {
		return "", time.Time{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	now := m.now()
	exp := now.Add(m.ttl)
	c := claims{
		Username: s.Username,
		Role:     s.Role,
		AIName:   s.AIName,
		DevName:  s.DevName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (m *jwtManager) Verify(tokenString string) (Scope, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Scope{}, ErrExpiredToken
		}
		return Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Scope{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Scope{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return Scope{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     c.Role,
		AIName:   c.AIName,
		DevName:  c.DevName,
	}, nil
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"echostream/internal/core/users"
)

// TokenConfig carries the signing material for both token kinds. The two
// secrets must be distinct: compromise of one kind must not forge the other.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims are the verified contents of a token. Access tokens carry the full
// display claims; refresh tokens carry only the subject id.
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email,omitempty"`
	Handle      string `json:"handle,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// UserID returns the identity id the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenIssuer mints and verifies the paired short-lived/long-lived tokens.
// It holds no mutable state; the configuration is fixed at construction.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer validates the signing configuration once at startup. A
// missing secret is a fatal misconfiguration, not a per-request condition.
func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, fmt.Errorf("token signing secrets are not configured")
	}
	if string(cfg.AccessSecret) == string(cfg.RefreshSecret) {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}
	return &TokenIssuer{cfg: cfg}, nil
}

// IssueAccessToken encodes {id, email, handle, displayName} with the access
// secret and the short TTL.
func (t *TokenIssuer) IssueAccessToken(u *users.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.AccessTTL)),
		},
		Email:       u.Email,
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
	})

	signed, err := token.SignedString(t.cfg.AccessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken encodes only the identity id with the refresh secret and
// the long TTL. The jti claim makes every issuance distinct even within the
// one-second iat/exp granularity; rotation depends on stored-value equality,
// so two issuances must never collide.
func (t *TokenIssuer) IssueRefreshToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.RefreshTTL)),
		},
	})

	signed, err := token.SignedString(t.cfg.RefreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken checks signature and validity window against the access
// secret.
func (t *TokenIssuer) VerifyAccessToken(tokenString string) (*Claims, error) {
	return t.verify(tokenString, t.cfg.AccessSecret)
}

// VerifyRefreshToken checks signature and validity window against the
// refresh secret.
func (t *TokenIssuer) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return t.verify(tokenString, t.cfg.RefreshSecret)
}

func (t *TokenIssuer) verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}
	return claims, nil
}

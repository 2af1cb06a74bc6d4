package auth

import (
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Token failure taxonomy. Every validation failure maps onto exactly one
// of these so the middleware can answer 401 uniformly without leaking
// which check tripped.
var (
	ErrTokenMissing   = errors.New("token missing")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// Claims carried by a session token. The token is self-contained and
// stateless: validation needs only the signing secret and a clock.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// GenerateAccessToken signs a session token for the given user. TTL comes
// from config (7 days by default).
func GenerateAccessToken(cfg *config.Config, userID, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseAndValidateToken verifies signature and expiry and returns the
// decoded claims. Pure: no store or network access.
func ParseAndValidateToken(cfg *config.Config, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

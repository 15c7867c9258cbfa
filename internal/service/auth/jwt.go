package auth

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS256

// Claims is the full payload of an issued token. The token is self-contained:
// validation re-derives everything from the signature and the encoded claims,
// there is no server-side lookup.
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Username() string {
	return c.Subject
}

type JWTManager struct {
	secretKey string
	issuer    string
	audience  string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewJWTManager(secretKey, issuer, audience string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: secretKey,
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Generate signs a token carrying the user's identity and role, expiring
// after the configured TTL.
func (j *JWTManager) Generate(userID uuid.UUID, username string, role models.Role) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	if j.audience != "" {
		claims.Audience = jwt.ClaimStrings{j.audience}
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature, expiry and, when configured, issuer and
// audience. Expired tokens surface as app_errors.ErrTokenExpired so the
// boundary can report them distinctly.
func (j *JWTManager) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}
	if j.audience != "" {
		opts = append(opts, jwt.WithAudience(j.audience))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, app_errors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", app_errors.ErrTokenInvalid, err)
	}
	if _, ok := models.ParseRole(string(claims.Role)); !ok {
		return nil, fmt.Errorf("%w: unknown role %q", app_errors.ErrTokenInvalid, claims.Role)
	}
	return claims, nil
}

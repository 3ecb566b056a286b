package services

import (
	"errors"
	"fmt"
	"time"

	apperrors "techhive-users/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultClockSkew is the tolerance applied to exp/nbf checks.
const DefaultClockSkew = 5 * time.Minute

// AccessClaims are the claims carried by bearer tokens. Issuer and audience are
// not checked.
type AccessClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AuthResult is the verdict of a single token verification.
type AuthResult struct {
	Succeeded bool
	Claims    *AccessClaims
	Err       error
}

// TokenVerifier checks a raw bearer token.
type TokenVerifier interface {
	Verify(token string) AuthResult
}

// TokenService signs and verifies HMAC tokens with a pre-shared key.
type TokenService struct {
	secret    []byte
	ttl       time.Duration
	clockSkew time.Duration
	now       func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		ttl:       ttl,
		clockSkew: DefaultClockSkew,
		now:       time.Now,
	}
}

// WithClockSkew overrides the default leeway; tests use zero.
func (s *TokenService) WithClockSkew(d time.Duration) *TokenService {
	s.clockSkew = d
	return s
}

func (s *TokenService) Verify(tokenString string) AuthResult {
	if tokenString == "" {
		return AuthResult{Err: apperrors.ErrUnauthorized}
	}

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return AuthResult{Err: fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)}
	}
	if !parsed.Valid {
		return AuthResult{Err: apperrors.ErrUnauthorized}
	}

	return AuthResult{Succeeded: true, Claims: claims}
}

// Issue mints an HS256 token for subject that expires after the configured TTL.
func (s *TokenService) Issue(subject, name string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject must not be empty")
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := AccessClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

package jwt

import (
	"errors"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer issues the JWT
const Issuer = "familyhub"

// Audience is the intended JWT audience
const Audience = "familyhub-web"

// Subject is the subject of every session token. The family shares one passcode.
const Subject = "family"

// ErrNoSecret is returned when no signing secret is configured
var ErrNoSecret = errors.New("jwt secret is not configured")

// Signer signs and validates session tokens with HS256
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a signer. Tokens expire after ttl.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns how long a token is valid
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Sign returns a new session token
func (s *Signer) Sign() (string, error) {
	now := s.now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(now),
		ExpiresAt: jwtgo.NewNumericDate(now.Add(s.ttl)),
		Issuer:    Issuer,
		Subject:   Subject,
	})

	return token.SignedString(s.secret)
}

// Validate returns an error unless signedString is an unexpired session token
func (s *Signer) Validate(signedString string) error {
	_, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return s.secret, nil
	},
		jwtgo.WithAudience(Audience),
		jwtgo.WithIssuer(Issuer),
		jwtgo.WithSubject(Subject),
		jwtgo.WithExpirationRequired(),
		jwtgo.WithTimeFunc(s.now),
	)

	return err
}

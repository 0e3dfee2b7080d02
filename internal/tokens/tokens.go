package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the validity window of every issued token.
const TTL = time.Hour

// ErrorKind classifies why a token failed verification.
type ErrorKind int

const (
	Malformed ErrorKind = iota
	Expired
	BadSignature
)

func (k ErrorKind) String() string {
	switch k {
	case Expired:
		return "expired"
	case BadSignature:
		return "bad signature"
	}
	return "malformed"
}

// VerificationError is returned by Verify when a token cannot be validated.
type VerificationError struct {
	Kind ErrorKind
	err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("token verification failed (%s): %v", e.Kind, e.err)
}

func (e *VerificationError) Unwrap() error { return e.err }

// Service issues and verifies HS256-signed bearer tokens. Rotating the secret
// invalidates every outstanding token; no revocation list is kept.
type Service struct {
	secret []byte
	now    func() time.Time
}

// New creates a token service. An empty secret is refused: tokens signed with
// a guessable key are worse than no tokens at all.
func New(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("tokens: empty signing secret")
	}
	return &Service{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs the given claims with an expiration of TTL from now.
func (s *Service) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	now := s.now()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(TTL).Unix()
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return jt.SignedString(s.secret)
}

// Verify validates the token against the service secret and returns the
// embedded claims unchanged, or a *VerificationError.
func (s *Service) Verify(token string) (map[string]interface{}, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classify(err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &VerificationError{Kind: Malformed, err: errors.New("unexpected claims type")}
	}
	return map[string]interface{}(claims), nil
}

func classify(err error) *VerificationError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerificationError{Kind: Expired, err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &VerificationError{Kind: BadSignature, err: err}
	}
	return &VerificationError{Kind: Malformed, err: err}
}

package auth

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// tokenAlg is the only algorithm access tokens are signed or accepted with.
// jwx refuses a token whose header names any other algorithm, none included.
const tokenAlg = jwa.HS256

var errNoSubject = errors.New("auth: token has no subject")

// tokenCodec signs and verifies access tokens.
type tokenCodec struct {
	secret   []byte
	issuer   string
	audience string
	skew     time.Duration
	ttl      time.Duration
}

func (c tokenCodec) issue(subject string, now time.Time) (string, time.Time, error) {
	expires := now.Add(c.ttl)
	tok, err := jwt.NewBuilder().
		Subject(subject).
		Issuer(c.issuer).
		Audience([]string{c.audience}).
		IssuedAt(now).
		NotBefore(now.Add(-c.skew)).
		Expiration(expires).
		Build()
	if err != nil {
		return "", time.Time{}, err
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(tokenAlg, c.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return string(signed), expires, nil
}

// subject verifies raw at now and returns its sub claim.
func (c tokenCodec) subject(raw string, now time.Time) (string, error) {
	tok, err := jwt.ParseString(raw,
		jwt.WithKey(tokenAlg, c.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return now })),
		jwt.WithAcceptableSkew(c.skew),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
	)
	if err != nil {
		return "", err
	}
	if tok.Subject() == "" {
		return "", errNoSubject
	}
	return tok.Subject(), nil
}

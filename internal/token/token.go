package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload signed into a session token. Subject carries the
// account id as a decimal string.
type Claims struct {
	AccountName string `json:"account"`
	Nickname    string `json:"nickname"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into an account id.
func (c *Claims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// Issuer signs and verifies stateless session tokens with a process-wide
// secret. There is no server-side revocation; logout is a cookie clear.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured token lifetime, which also drives the session
// cookie's max age.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for the given account identity.
func (i *Issuer) Issue(accountID uint, accountName, nickname string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountName: accountName,
		Nickname:    nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token string. It fails on signature
// mismatch, wrong signing method, expiry or malformed input.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

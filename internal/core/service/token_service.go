package service

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCodec issues and verifies HS256 bearer tokens. The signing key is
// decoded once from a base64 secret at construction and immutable afterwards,
// so a single codec is safe for concurrent use.
//
// Wire format: claims {sub: email, roles: ["ROLE_<NAME>"], iat, exp}. The
// ROLE_ prefix keeps issued tokens interchangeable with ones minted by
// earlier deployments; it is stripped again on decode.
type TokenCodec struct {
	key    []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenCodec builds a codec from a base64-encoded secret and a token
// lifetime. A non-positive ttl falls back to 24h.
func NewTokenCodec(secretB64 string, ttl time.Duration) (*TokenCodec, error) {
	key, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return nil, fmt.Errorf("decode jwt secret: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{
		key: key,
		ttl: ttl,
		// Expiry is checked explicitly in IsValid, not during parsing, so
		// that ExtractSubject still resolves subjects of expired tokens.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// Issue builds a signed token asserting the user's email and role.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Email,
		"roles": []string{user.Rol.Authority()},
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// ExtractSubject verifies the signature and returns the subject claim.
// Malformed, unsigned or tampered tokens fail with domain.ErrInvalidToken.
func (c *TokenCodec) ExtractSubject(token string) (string, error) {
	claims, err := c.verify(token)
	if err != nil {
		return "", err
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

// IsValid reports whether the token belongs to the user and expires strictly
// in the future. The signature is verified here as well, so the check does
// not depend on a preceding ExtractSubject call.
func (c *TokenCodec) IsValid(token string, user *domain.User) bool {
	claims, err := c.verify(token)
	if err != nil {
		return false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub != user.Email {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}

// Roles returns the role claims of a verified token, skipping any value that
// does not map onto a known role.
func (c *TokenCodec) Roles(token string) ([]domain.Role, error) {
	claims, err := c.verify(token)
	if err != nil {
		return nil, err
	}
	raw, _ := claims["roles"].([]any)
	roles := make([]domain.Role, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if role, ok := domain.RoleFromAuthority(s); ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

func (c *TokenCodec) verify(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := c.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

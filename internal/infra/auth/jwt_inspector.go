// Package auth reads identity claims from the API's access tokens.
package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// jwtInspector decodes access token claims without verifying the signature;
// the token was minted by the API and is only shown back to its owner.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.IdentityInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect extracts the topbar identity from an access token.
func (i *jwtInspector) Inspect(accessToken string) (entity.Identity, error) {
	if accessToken == "" {
		return entity.Identity{}, errors.New("empty access token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(accessToken, claims); err != nil {
		return entity.Identity{}, errors.Wrap(err, "parse access token")
	}

	identity := entity.Identity{
		UserID: userID(claims),
		Email:  stringClaim(claims, "email"),
		Name:   displayName(claims),
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}

	return identity, nil
}

// userID prefers the API's user_id claim over the registered subject.
func userID(claims jwt.MapClaims) string {
	switch v := claims["user_id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}

	sub, _ := claims.GetSubject()

	return sub
}

func displayName(claims jwt.MapClaims) string {
	if name := stringClaim(claims, "name"); name != "" {
		return name
	}

	first, last := stringClaim(claims, "first_name"), stringClaim(claims, "last_name")
	if full := strings.TrimSpace(first + " " + last); full != "" {
		return full
	}

	return stringClaim(claims, "username")
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)

	return strings.TrimSpace(v)
}

// Expired reports whether the identity's token is past its expiry.
func Expired(identity entity.Identity, now time.Time) bool {
	return !identity.ExpiresAt.IsZero() && now.After(identity.ExpiresAt)
}

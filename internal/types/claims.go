package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the expiry claim from an access token without verifying
// its signature. The token is opaque to the client otherwise; the expiry is
// used only for diagnostics and session bookkeeping, never for access control.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

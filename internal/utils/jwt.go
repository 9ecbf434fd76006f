package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] for a JWT without an exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
//
// Refresh tokens are issued and verified by the remote service; the keeper
// only needs to know whether a stored one is worth presenting.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading expiration time: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString is a JWT that expires before now
// plus leeway. Tokens that are not JWTs, or carry no exp claim, are treated
// as opaque and never reported as expired.
func TokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !exp.After(now.Add(leeway))
}

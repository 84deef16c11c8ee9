// Package auth implements the credential primitives of the server: signed
// access tokens and password hashing. Both take their key material and cost
// parameters from the caller, never from package-level state, so tests can
// inject fixed values.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims plus the account id
// and a denormalized display name. Username is for client convenience only
// and carries no authority.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string
	Username string
}

// GenerateToken mints an HS256-signed token for the given account, valid
// from now for validityDuration.
func GenerateToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString against secretKey and returns the
// embedded claims. No store lookup happens here: a verified signature plus
// an unexpired timestamp is the whole trust decision.
//
// Rejections map to sentinels in common:
//   - common.ErrTokenMalformed: the string is not a decodable token
//   - common.ErrTokenExpired: verified but past its expiry
//   - common.ErrInvalidToken: any other failure, including a bad signature
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

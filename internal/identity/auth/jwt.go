// Package auth implements the token codec: issuing and verifying the HS256
// JWTs that act as bearer tokens across the mesh. The codec is stateless;
// the only shared state is the HMAC secret known to the identity service
// and its trusted verifiers.
package auth

import (
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload carried inside a bearer token: subject user
// id, username, and expiry.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// IssueToken signs a claim set for the given user. Expiry is issuance time
// plus validityDuration.
func IssueToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username: username,
	})

	return token.SignedString(secretKey)
}

// VerifyToken checks the signature and expiry of tokenString and returns
// the embedded claims. Verification is pure: the same token verifies
// identically until the secret rotates. Every failure mode (bad signature,
// malformed structure, past expiry) maps to common.ErrInvalidToken.
func VerifyToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

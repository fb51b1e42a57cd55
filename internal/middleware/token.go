package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueToken signs an HS256 token that AuthMiddleware accepts for userID
// acting within companyID.
func IssueToken(secret, issuer, userID, companyID string, ttl time.Duration) (string, error) {
	if userID == "" || companyID == "" {
		return "", errors.New("user and company are required")
	}
	now := time.Now()
	claims := Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

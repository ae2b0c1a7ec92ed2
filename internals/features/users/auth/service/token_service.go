package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// One opaque error for every verification failure so callers cannot probe
// which check (signature, expiry, persona) rejected the token.
var ErrTokenInvalid = errors.New("token expired or invalid")

const (
	ResetTokenMaxAge = 30 * time.Minute
	resetNamespace   = "reset"
)

type AccessClaims struct {
	UserID   uint
	OrgID    uint
	Persona  string
	IssuedAt time.Time
}

/* ==========================
   Access tokens
========================== */

func IssueAccessToken(secret string, userID, orgID uint, persona string) (string, error) {
	return issueAccessTokenAt(secret, userID, orgID, persona, time.Now())
}

func issueAccessTokenAt(secret string, userID, orgID uint, persona string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"org_id":  orgID,
		"persona": persona,
		"iat":     issuedAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken checks signature, recomputes elapsed time against maxAge,
// and (when expectedPersona is non-empty) requires a persona match. Any
// failure returns ErrTokenInvalid.
func VerifyAccessToken(secret, tokenString, expectedPersona string, maxAge time.Duration) (*AccessClaims, error) {
	claims, err := parseHMACClaims(secret, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	issuedAt, err := claimTime(claims, "iat")
	if err != nil || time.Now().After(issuedAt.Add(maxAge)) {
		return nil, ErrTokenInvalid
	}

	persona, _ := claims["persona"].(string)
	if persona == "" {
		return nil, ErrTokenInvalid
	}
	if expectedPersona != "" && persona != expectedPersona {
		return nil, ErrTokenInvalid
	}

	userID, err := claimUint(claims, "user_id")
	if err != nil {
		return nil, ErrTokenInvalid
	}
	orgID, err := claimUint(claims, "org_id")
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return &AccessClaims{
		UserID:   userID,
		OrgID:    orgID,
		Persona:  persona,
		IssuedAt: issuedAt,
	}, nil
}

/* ==========================
   Password-reset tokens
   (separate secret + namespace, fixed 30-minute age)
========================== */

func IssueResetToken(secret string, userID uint) (string, error) {
	return issueResetTokenAt(secret, userID, time.Now())
}

func issueResetTokenAt(secret string, userID uint, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"ns":      resetNamespace,
		"iat":     issuedAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func VerifyResetToken(secret, tokenString string) (uint, error) {
	claims, err := parseHMACClaims(secret, tokenString)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	if ns, _ := claims["ns"].(string); ns != resetNamespace {
		return 0, ErrTokenInvalid
	}
	issuedAt, err := claimTime(claims, "iat")
	if err != nil || time.Now().After(issuedAt.Add(ResetTokenMaxAge)) {
		return 0, ErrTokenInvalid
	}
	return claimUint(claims, "user_id")
}

/* ==========================
   Claim parsing
========================== */

func parseHMACClaims(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func claimTime(claims jwt.MapClaims, key string) (time.Time, error) {
	switch v := claims[key].(type) {
	case float64:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	}
	return time.Time{}, errors.New("missing time claim " + key)
}

func claimUint(claims jwt.MapClaims, key string) (uint, error) {
	v, ok := claims[key].(float64)
	if !ok || v <= 0 {
		return 0, ErrTokenInvalid
	}
	return uint(v), nil
}

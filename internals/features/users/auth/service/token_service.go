package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	configs "hocphi_backend/internals/configs"
	"hocphi_backend/internals/features/users/auth/model"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrNoRefreshSecret = errors.New("missing refresh secret")

// IssueAccessToken signs a short-lived token carrying the operator identity.
func IssueAccessToken(op model.Operator) (string, error) {
	return signToken(op, configs.JWTSecret, accessTokenTTL)
}

// IssueRefreshToken signs a long-lived token against the refresh secret.
func IssueRefreshToken(op model.Operator) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", ErrNoRefreshSecret
	}
	return signToken(op, configs.JWTRefreshSecret, refreshTokenTTL)
}

// ParseRefreshToken validates a refresh token and returns the operator id.
func ParseRefreshToken(raw string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub")
	}
	return sub, nil
}

func signToken(op model.Operator, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  op.OperatorID.String(),
		"role": op.OperatorRole,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

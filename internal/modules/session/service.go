package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

// Service mints and verifies signed shopper session tokens.
type Service interface {
	Issue() (sessionID, token string, err error)
	Parse(token string) (sessionID string, err error)
}

type service struct{ key []byte }

func NewService(key []byte) Service { return &service{key: key} }

func (s *service) Issue() (string, string, error) {
	sessionID := uuid.New().String()
	claims := &jwt.StandardClaims{
		Subject:   sessionID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", "", err
	}
	return sessionID, signed, nil
}

func (s *service) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

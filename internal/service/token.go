package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type tokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueToken выпускает подписанный HS256-токен с привязкой к id пользователя.
// Срок действия фиксированный, отсчитывается от момента выпуска.
func (s *UserService) IssueToken(userID int64) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken проверяет подпись и срок действия токена и возвращает id
// пользователя. Любой дефект токена, как и ссылка на уже удалённого
// пользователя, — ErrUnauthenticated.
func (s *UserService) VerifyToken(ctx context.Context, tokenString string) (int64, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrUnauthenticated
	}

	if _, err := s.repo.GetUserByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUnauthenticated
		}
		return 0, err
	}
	return claims.UserID, nil
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenVerifier проверяет bearer-токен и возвращает id пользователя.
// Реализуется сервисом пользователей.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (int64, error)
}

// WithAuth извлекает токен из заголовка "Authorization: Token <jwt>",
// проверяет его и кладёт id пользователя в контекст запроса.
// Отсутствующий, просроченный или невалидный токен — сразу 401.
func WithAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Token" {
				unauthorized(w)
				return
			}

			userID, err := v.VerifyToken(r.Context(), parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id аутентифицированного пользователя.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"Message": "A valid token is required. Please log in",
	})
}

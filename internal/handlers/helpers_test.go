package handlers_test

import (
	"bucketlist/internal/handlers"
	"bucketlist/internal/repo"
	"bucketlist/internal/service"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter собирает полный стек (in-memory SQLite, настоящие сервисы,
// настоящий роутер) — хендлеры тестируются через HTTP-поверхность.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := repo.InitDB("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	bucketRepo := repo.NewBucketlistRepository(db)
	itemRepo := repo.NewItemRepository(db)

	userSvc := service.NewUserService(userRepo, "test-secret", time.Hour)
	bucketSvc := service.NewBucketlistService(bucketRepo)
	itemSvc := service.NewItemService(bucketRepo, itemRepo)

	return handlers.NewHandler(userSvc, bucketSvc, itemSvc, logger).Router
}

// doJSON выполняет запрос с JSON-телом и опциональным токеном
func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

// registerAndLogin регистрирует пользователя и возвращает его токен
func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/auth/register", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var body struct {
		Token string `json:"Token"`
	}
	decodeBody(t, rr, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

type bucketlistBody struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	CreatedBy int64  `json:"created_by"`
	Items     []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Done bool   `json:"done"`
	} `json:"items"`
}

// createBucketlist создаёт список и возвращает его id
func createBucketlist(t *testing.T, router http.Handler, token, name string) int64 {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/bucketlists/", token, `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var body struct {
		Bucketlist bucketlistBody `json:"Bucketlist"`
	}
	decodeBody(t, rr, &body)
	require.NotZero(t, body.Bucketlist.ID)
	return body.Bucketlist.ID
}

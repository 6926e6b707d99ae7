package repo

import (
	"strings"
	"testing"

	"gorm.io/gorm"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов
// репозиториев. Имя теста в DSN даёт каждому тесту отдельную базу.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := InitDB("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	return db
}

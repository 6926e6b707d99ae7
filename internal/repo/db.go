package repo

import (
	"bucketlist/internal/model"
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// ErrConflict возвращается репозиториями при нарушении уникального ограничения
// (дубликат имени в рамках владельца/списка, занятый логин).
var ErrConflict = errors.New("unique constraint violation")

// InitDB открывает соединение и прогоняет миграции.
// Диалект выбирается по DSN: postgres:// — Postgres, иначе SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: SQLiteDSN(dsn)}
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Bucketlist{}, &model.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLiteDSN дополняет DSN прагмами, которые должны действовать на каждое
// соединение пула: поиск по имени регистрозависимый, а у SQLite LIKE
// по умолчанию игнорирует регистр ASCII.
func SQLiteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=case_sensitive_like(1)&_pragma=foreign_keys(1)"
}

// isUniqueViolation распознаёт нарушение уникального индекса.
// TranslateError покрывает postgres; для modernc-sqlite драйвер не транслирует,
// поэтому дополнительно смотрим на текст ошибки.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// Package validate нормализует и проверяет входные payload'ы до того,
// как они попадут в слой сервиса. Только чистые функции, без side effects.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingField — обязательный ключ отсутствует в payload.
	ErrMissingField = errors.New("missing field")
	// ErrEmptyName — имя присутствует, но пустое после trim.
	ErrEmptyName = errors.New("empty name")
	// ErrBadParam — параметр пагинации не является положительным целым.
	ErrBadParam = errors.New("invalid query parameter")
)

// DoneFlag принимает bool, строку или null из JSON.
// Правило приведения одно на весь сервис: true / "true" / "yes" / "1"
// (без учёта регистра) — true, всё остальное, включая пустую строку, — false.
type DoneFlag bool

func (d *DoneFlag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*d = DoneFlag(t)
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		*d = DoneFlag(s == "true" || s == "yes" || s == "1")
	case nil:
		*d = false
	default:
		return fmt.Errorf("done: unsupported value %v", v)
	}
	return nil
}

// CredentialsPayload — тело запросов /auth/register и /auth/login.
type CredentialsPayload struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Credentials проверяет пару логин/пароль. Оба поля обязательны и непустые.
func Credentials(p CredentialsPayload) (username, password string, err error) {
	if p.Username == nil {
		return "", "", fmt.Errorf("%w: username", ErrMissingField)
	}
	if p.Password == nil {
		return "", "", fmt.Errorf("%w: password", ErrMissingField)
	}
	username = strings.TrimSpace(*p.Username)
	password = strings.TrimSpace(*p.Password)
	if username == "" || password == "" {
		return "", "", fmt.Errorf("%w: username/password", ErrEmptyName)
	}
	return username, password, nil
}

// BucketlistPayload — тело запросов создания/обновления списка.
type BucketlistPayload struct {
	Name *string `json:"name"`
}

// BucketlistCreate возвращает проверенное имя нового списка.
func BucketlistCreate(p BucketlistPayload) (string, error) {
	if p.Name == nil {
		return "", fmt.Errorf("%w: name", ErrMissingField)
	}
	name := strings.TrimSpace(*p.Name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Update — частичное обновление: применяются только присутствующие ключи,
// отсутствующий ключ оставляет сохранённое значение как есть.
type Update struct {
	Name *string
	Done *bool
}

// Empty сообщает, что обновлять нечего.
func (u Update) Empty() bool {
	return u.Name == nil && u.Done == nil
}

// BucketlistUpdate возвращает частичное обновление списка.
// Имя, если присутствует, не может быть пустым.
func BucketlistUpdate(p BucketlistPayload) (Update, error) {
	var upd Update
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return Update{}, ErrEmptyName
		}
		upd.Name = &name
	}
	return upd, nil
}

// ItemPayload — тело запросов создания/обновления элемента.
type ItemPayload struct {
	Name *string   `json:"name"`
	Done *DoneFlag `json:"done"`
}

// ItemCreate возвращает проверенное имя и признак done нового элемента.
// done опционален: отсутствующее или "пустое" значение означает false.
func ItemCreate(p ItemPayload) (name string, done bool, err error) {
	if p.Name == nil {
		return "", false, fmt.Errorf("%w: name", ErrMissingField)
	}
	name = strings.TrimSpace(*p.Name)
	if name == "" {
		return "", false, ErrEmptyName
	}
	if p.Done != nil {
		done = bool(*p.Done)
	}
	return name, done, nil
}

// ItemUpdate возвращает частичное обновление элемента.
func ItemUpdate(p ItemPayload) (Update, error) {
	var upd Update
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return Update{}, ErrEmptyName
		}
		upd.Name = &name
	}
	if p.Done != nil {
		done := bool(*p.Done)
		upd.Done = &done
	}
	return upd, nil
}

// Page разбирает номер страницы из query-параметра. Пустое значение — страница 1.
func Page(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: page", ErrBadParam)
	}
	return n, nil
}

// Limit разбирает размер страницы. Пустое значение — 20, больше 100 — срезается до 100.
func Limit(s string) (int, error) {
	if s == "" {
		return 20, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit", ErrBadParam)
	}
	if n > 100 {
		n = 100
	}
	return n, nil
}

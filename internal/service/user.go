package service

import (
	"bucketlist/internal/model"
	"bucketlist/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService инкапсулирует регистрацию, проверку учётных данных
// и выпуск/проверку bearer-токенов.
type UserService struct {
	repo     repo.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewUserService создаёт сервис пользователей.
// secret — ключ подписи токенов, ttl — срок их жизни.
func NewUserService(r repo.UserRepository, secret string, ttl time.Duration) *UserService {
	return &UserService{repo: r, secret: []byte(secret), tokenTTL: ttl}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Пустые после trim поля — ErrInvalidInput, занятое имя — ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// уникальный индекс по username — авторитетная проверка дубликата
	user, err := s.repo.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет учётные данные и возвращает пользователя.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get возвращает пользователя по id. Удалённый пользователь — ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

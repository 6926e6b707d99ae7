package handlers

import (
	"bucketlist/internal/middleware"
	"bucketlist/internal/service"
	"bucketlist/internal/validate"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и карточку пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// Register регистрирует нового пользователя.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var p validate.CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	username, password, err := validate.Credentials(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, "A user with that name already exists. Please try again")
		return
	case errors.Is(err, service.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Username and Password are required")
		return
	case err != nil:
		h.Logger.Errorw("Register: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusCreated, title(user.Username)+" has been created")
}

// Login проверяет учётные данные и возвращает токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var p validate.CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	username, password, err := validate.Credentials(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	user, err := h.UserService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password. Please try again")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.UserService.IssueToken(user.ID)
	if err != nil {
		h.Logger.Errorw("Login: issue token", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"Token": token})
}

// Details возвращает карточку вошедшего пользователя: имя и ссылку
// на его коллекцию списков. Пароль и id наружу не отдаются.
func (h *UserHandler) Details(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "A valid token is required. Please log in")
		return
	}

	user, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, "A valid token is required. Please log in")
			return
		}
		h.Logger.Errorw("Details: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Details": map[string]string{
			"username":       user.Username,
			"bucketlist_url": scheme + "://" + r.Host + "/bucketlists/",
		},
	})
}

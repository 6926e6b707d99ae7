package handlers

import (
	"bucketlist/internal/middleware"
	"bucketlist/internal/service"
	"bucketlist/internal/validate"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BucketlistHandler обрабатывает CRUD и постраничный поиск списков.
type BucketlistHandler struct {
	Bucketlists *service.BucketlistService
	Logger      *zap.SugaredLogger
}

// NewBucketlistHandler создаёт хендлер списков.
func NewBucketlistHandler(s *service.BucketlistService, logger *zap.SugaredLogger) *BucketlistHandler {
	return &BucketlistHandler{Bucketlists: s, Logger: logger}
}

// callerID достаёт id вызывающего из контекста; мидлварь уже отсеяла анонимов.
func callerID(r *http.Request) int64 {
	id, _ := middleware.GetUserIDFromContext(r.Context())
	return id
}

// bucketID разбирает {id} из пути. Нечисловой id неотличим от несуществующего.
func bucketID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Create заводит новый список.
func (h *BucketlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p validate.BucketlistPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "The bucketlist must have a name")
		return
	}
	name, err := validate.BucketlistCreate(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "The bucketlist must have a name")
		return
	}

	b, err := h.Bucketlists.Create(r.Context(), callerID(r), name)
	switch {
	case errors.Is(err, service.ErrDuplicate):
		writeMessage(w, http.StatusBadRequest, "A bucketlist with that name already exists. Please try again")
		return
	case err != nil:
		h.Logger.Errorw("Create bucketlist: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"Message":    title(b.Name) + " has been created",
		"Bucketlist": toBucketlistDTO(b),
	})
}

// listResponse — страница списков с навигационными ссылками.
type listResponse struct {
	Count       int             `json:"count"`
	Next        string          `json:"next"`
	Prev        string          `json:"prev"`
	Bucketlists []bucketlistDTO `json:"Bucketlists"`
}

// List возвращает страницу списков вызывающего с фильтром по имени.
func (h *BucketlistHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	page, err := validate.Page(r.URL.Query().Get("page"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Please use numbers to define the page")
		return
	}
	limit, err := validate.Limit(r.URL.Query().Get("limit"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Please use numbers to define the limit")
		return
	}

	res, err := h.Bucketlists.List(r.Context(), callerID(r), q, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeMessage(w, http.StatusBadRequest, "Please use numbers to define the page")
			return
		}
		h.Logger.Errorw("List bucketlists: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	next, prev := "None", "None"
	if res.HasNext {
		next = fmt.Sprintf("/bucketlists/?limit=%d&page=%d", res.Limit, res.Pagenum+1)
	}
	if res.HasPrev {
		prev = fmt.Sprintf("/bucketlists/?limit=%d&page=%d", res.Limit, res.Pagenum-1)
	}

	dtos := make([]bucketlistDTO, 0, len(res.Bucketlists))
	for i := range res.Bucketlists {
		dtos = append(dtos, toBucketlistDTO(&res.Bucketlists[i]))
	}
	writeJSON(w, http.StatusOK, listResponse{
		Count:       res.Count,
		Next:        next,
		Prev:        prev,
		Bucketlists: dtos,
	})
}

// Get возвращает один список вызывающего.
func (h *BucketlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bucketID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
		return
	}

	b, err := h.Bucketlists.Get(r.Context(), callerID(r), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
			return
		}
		h.Logger.Errorw("Get bucketlist: service error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"Bucketlist": toBucketlistDTO(b)})
}

// Update применяет частичное обновление списка.
func (h *BucketlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bucketID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
		return
	}

	var p validate.BucketlistPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "The bucketlist must have a name")
		return
	}
	upd, err := validate.BucketlistUpdate(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "The bucketlist must have a name")
		return
	}

	b, err := h.Bucketlists.Update(r.Context(), callerID(r), id, upd)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
		return
	case errors.Is(err, service.ErrDuplicate):
		writeMessage(w, http.StatusBadRequest, "A bucketlist with that name already exists. Please try again")
		return
	case err != nil:
		h.Logger.Errorw("Update bucketlist: service error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"Message":    "Updated to " + title(b.Name),
		"Bucketlist": toBucketlistDTO(b),
	})
}

// Delete удаляет список вместе с его элементами.
func (h *BucketlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bucketID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
		return
	}

	// имя нужно для текста ответа до удаления
	b, err := h.Bucketlists.Get(r.Context(), callerID(r), id)
	if err == nil {
		err = h.Bucketlists.Delete(r.Context(), callerID(r), id)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That bucketlist does not exist for your user account. Please try again")
			return
		}
		h.Logger.Errorw("Delete bucketlist: service error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusOK, title(b.Name)+" has been deleted")
}

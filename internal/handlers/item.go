package handlers

import (
	"bucketlist/internal/service"
	"bucketlist/internal/validate"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает элементы внутри списка.
type ItemHandler struct {
	Items  *service.ItemService
	Logger *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер элементов.
func NewItemHandler(s *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Items: s, Logger: logger}
}

func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	return id, err == nil && id > 0
}

// Create заводит элемент в списке вызывающего.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	bID, ok := bucketID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "You can only create an item within your own bucketlist. Please try again")
		return
	}

	var p validate.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "The item must have a name")
		return
	}
	name, done, err := validate.ItemCreate(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "The item must have a name")
		return
	}

	it, err := h.Items.Create(r.Context(), callerID(r), bID, name, done)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "You can only create an item within your own bucketlist. Please try again")
		return
	case errors.Is(err, service.ErrDuplicate):
		writeMessage(w, http.StatusBadRequest, "A bucketlist item with that name already exists. Please try again")
		return
	case err != nil:
		h.Logger.Errorw("Create item: service error", "bucket_id", bID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"Message": title(it.Name) + " has been created",
		"Item":    toItemDTO(it),
	})
}

// Update применяет частичное обновление элемента: имя и/или done,
// отсутствующее в теле поле не меняется.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	bID, okB := bucketID(r)
	iID, okI := itemID(r)
	if !okB || !okI {
		writeMessage(w, http.StatusNotFound, "That item does not exist for your user account. Please try again")
		return
	}

	var p validate.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "The item must have a name")
		return
	}
	upd, err := validate.ItemUpdate(p)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "The item must have a name")
		return
	}

	it, err := h.Items.Update(r.Context(), callerID(r), bID, iID, upd)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "That item does not exist for your user account. Please try again")
		return
	case errors.Is(err, service.ErrDuplicate):
		writeMessage(w, http.StatusBadRequest, "A bucketlist item with that name already exists. Please try again")
		return
	case err != nil:
		h.Logger.Errorw("Update item: service error", "bucket_id", bID, "item_id", iID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"Message": "Updated: " + title(it.Name),
		"Item":    toItemDTO(it),
	})
}

// Delete удаляет элемент списка вызывающего.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bID, okB := bucketID(r)
	iID, okI := itemID(r)
	if !okB || !okI {
		writeMessage(w, http.StatusNotFound, "That item does not exist for your user account. Please try again")
		return
	}

	// имя нужно для текста ответа до удаления
	it, err := h.Items.Get(r.Context(), callerID(r), bID, iID)
	if err == nil {
		err = h.Items.Delete(r.Context(), callerID(r), bID, iID)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That item does not exist for your user account. Please try again")
			return
		}
		h.Logger.Errorw("Delete item: service error", "bucket_id", bID, "item_id", iID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMessage(w, http.StatusOK, title(it.Name)+" has been deleted")
}

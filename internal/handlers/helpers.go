package handlers

import (
	"bucketlist/internal/model"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// title приводит имя к виду "Testjane" для текстов сообщений
func title(s string) string {
	return titleCaser.String(s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"Message": msg})
}

// itemDTO — наружное представление Item.
type itemDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Done      bool   `json:"done"`
}

// bucketlistDTO — наружное представление Bucketlist вместе с его элементами.
type bucketlistDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Items     []itemDTO `json:"items"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	CreatedBy int64     `json:"created_by"`
}

func toItemDTO(it *model.Item) itemDTO {
	return itemDTO{
		ID:        it.ID,
		Name:      it.Name,
		CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: it.UpdatedAt.UTC().Format(time.RFC3339),
		Done:      it.Done,
	}
}

func toBucketlistDTO(b *model.Bucketlist) bucketlistDTO {
	items := make([]itemDTO, 0, len(b.Items))
	for i := range b.Items {
		items = append(items, toItemDTO(&b.Items[i]))
	}
	return bucketlistDTO{
		ID:        b.ID,
		Name:      b.Name,
		Items:     items,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
		CreatedBy: b.OwnerID,
	}
}

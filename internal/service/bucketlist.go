package service

import (
	"bucketlist/internal/model"
	"bucketlist/internal/repo"
	"bucketlist/internal/validate"
	"context"
	"errors"

	"gorm.io/gorm"
)

// BucketlistService — CRUD и пагинация списков, ограниченные владельцем.
type BucketlistService struct {
	repo repo.BucketlistRepository
}

// NewBucketlistService создаёт сервис списков.
func NewBucketlistService(r repo.BucketlistRepository) *BucketlistService {
	return &BucketlistService{repo: r}
}

// Page — одна страница результата ListBucketlists.
type Page struct {
	Bucketlists []model.Bucketlist
	Count       int // элементов на этой странице
	Pagenum     int
	Limit       int
	HasNext     bool
	HasPrev     bool
}

// Create заводит новый список c owner_id вызывающего.
// Повтор имени у того же владельца — ErrDuplicate.
func (s *BucketlistService) Create(ctx context.Context, ownerID int64, name string) (*model.Bucketlist, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	b := &model.Bucketlist{Name: name, OwnerID: ownerID}
	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return b, nil
}

// List возвращает страницу списков вызывающего.
// q — регистрозависимый substring-фильтр, порядок стабильный: id по возрастанию.
// limit срезается до 100; page и limit должны быть положительными.
func (s *BucketlistService) List(ctx context.Context, ownerID int64, q string, page, limit int) (*Page, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidInput
	}
	if limit > 100 {
		limit = 100
	}

	// запрашиваем на одну строку больше, чтобы узнать, есть ли следующая страница
	offset := (page - 1) * limit
	lists, err := s.repo.ListByOwner(ctx, ownerID, q, offset, limit+1)
	if err != nil {
		return nil, err
	}

	hasNext := len(lists) > limit
	if hasNext {
		lists = lists[:limit]
	}

	return &Page{
		Bucketlists: lists,
		Count:       len(lists),
		Pagenum:     page,
		Limit:       limit,
		HasNext:     hasNext,
		HasPrev:     page > 1,
	}, nil
}

// Get возвращает список вызывающего. Чужой или несуществующий — ErrNotFound.
func (s *BucketlistService) Get(ctx context.Context, ownerID, id int64) (*model.Bucketlist, error) {
	b, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Update применяет частичное обновление. Пустой partial — no-op:
// запись не трогается и updated_at не сдвигается.
func (s *BucketlistService) Update(ctx context.Context, ownerID, id int64, upd validate.Update) (*model.Bucketlist, error) {
	if upd.Empty() {
		return s.Get(ctx, ownerID, id)
	}

	updates := map[string]any{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if err := s.repo.Update(ctx, ownerID, id, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrConflict):
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return s.Get(ctx, ownerID, id)
}

// Delete удаляет список вместе с элементами.
func (s *BucketlistService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

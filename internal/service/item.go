package service

import (
	"bucketlist/internal/model"
	"bucketlist/internal/repo"
	"bucketlist/internal/validate"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ItemService — операции над элементами списка. Право доступа наследуется
// от владельца списка, поэтому каждая операция сначала убеждается,
// что список принадлежит вызывающему.
type ItemService struct {
	buckets repo.BucketlistRepository
	items   repo.ItemRepository
}

// NewItemService создаёт сервис элементов.
func NewItemService(buckets repo.BucketlistRepository, items repo.ItemRepository) *ItemService {
	return &ItemService{buckets: buckets, items: items}
}

// ownBucket проверяет, что список существует и принадлежит вызывающему.
func (s *ItemService) ownBucket(ctx context.Context, ownerID, bucketID int64) error {
	if _, err := s.buckets.GetByID(ctx, ownerID, bucketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Create заводит элемент в списке вызывающего.
// Чужой/несуществующий список — ErrNotFound, повтор имени в списке — ErrDuplicate.
func (s *ItemService) Create(ctx context.Context, ownerID, bucketID int64, name string, done bool) (*model.Item, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	if err := s.ownBucket(ctx, ownerID, bucketID); err != nil {
		return nil, err
	}

	it := &model.Item{Name: name, BucketID: bucketID, Done: done}
	if err := s.items.Create(ctx, it); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return it, nil
}

// Get возвращает элемент списка вызывающего.
func (s *ItemService) Get(ctx context.Context, ownerID, bucketID, itemID int64) (*model.Item, error) {
	if err := s.ownBucket(ctx, ownerID, bucketID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, bucketID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Update применяет частичное обновление элемента: меняются только
// присутствующие в partial поля. Пустой partial — no-op без сдвига updated_at.
func (s *ItemService) Update(ctx context.Context, ownerID, bucketID, itemID int64, upd validate.Update) (*model.Item, error) {
	if err := s.ownBucket(ctx, ownerID, bucketID); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return s.Get(ctx, ownerID, bucketID, itemID)
	}

	updates := map[string]any{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Done != nil {
		updates["done"] = *upd.Done
	}
	if err := s.items.Update(ctx, bucketID, itemID, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrConflict):
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return s.Get(ctx, ownerID, bucketID, itemID)
}

// Delete удаляет элемент списка вызывающего.
func (s *ItemService) Delete(ctx context.Context, ownerID, bucketID, itemID int64) error {
	if err := s.ownBucket(ctx, ownerID, bucketID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, bucketID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

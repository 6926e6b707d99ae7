package repo

import (
	"bucketlist/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item.
// Операции привязаны к родительскому списку; проверка, что список принадлежит
// вызывающему, остаётся за слоем сервиса.
type ItemRepository interface {
	// Create сохраняет новый элемент. Дубликат имени в списке — ErrConflict.
	Create(ctx context.Context, it *model.Item) error

	// GetByID возвращает элемент указанного списка.
	GetByID(ctx context.Context, bucketID, itemID int64) (*model.Item, error)

	// Update применяет частичное обновление и обновляет updated_at.
	// 0 затронутых строк — gorm.ErrRecordNotFound, конфликт имени — ErrConflict.
	Update(ctx context.Context, bucketID, itemID int64, updates map[string]any) error

	// Delete удаляет элемент списка.
	Delete(ctx context.Context, bucketID, itemID int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, bucketID, itemID int64) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).
		Where("id = ? AND bucket_id = ?", itemID, bucketID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Update(ctx context.Context, bucketID, itemID int64, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND bucket_id = ?", itemID, bucketID).
		Updates(updates)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, bucketID, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND bucket_id = ?", itemID, bucketID).
		Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

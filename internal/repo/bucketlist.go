package repo

import (
	"bucketlist/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

// BucketlistRepository определяет контракт доступа к Bucketlist.
// Все выборки и мутации ограничены владельцем: чужой список неотличим
// от несуществующего (gorm.ErrRecordNotFound в обоих случаях).
type BucketlistRepository interface {
	// Create сохраняет новый список. Дубликат имени у владельца — ErrConflict.
	Create(ctx context.Context, b *model.Bucketlist) error

	// ListByOwner возвращает страницу списков владельца с подгруженными элементами.
	// q — регистрозависимый substring-фильтр по имени, порядок — id по возрастанию.
	ListByOwner(ctx context.Context, ownerID int64, q string, offset, limit int) ([]model.Bucketlist, error)

	// GetByID возвращает список владельца вместе с элементами.
	GetByID(ctx context.Context, ownerID, id int64) (*model.Bucketlist, error)

	// Update применяет частичное обновление и обновляет updated_at.
	// 0 затронутых строк — gorm.ErrRecordNotFound, конфликт имени — ErrConflict.
	Update(ctx context.Context, ownerID, id int64, updates map[string]any) error

	// Delete удаляет список вместе с его элементами одной транзакцией.
	Delete(ctx context.Context, ownerID, id int64) error
}

type bucketlistRepo struct {
	db *gorm.DB
}

// NewBucketlistRepository создаёт реализацию репозитория для Bucketlist.
func NewBucketlistRepository(db *gorm.DB) BucketlistRepository {
	return &bucketlistRepo{db: db}
}

func (r *bucketlistRepo) Create(ctx context.Context, b *model.Bucketlist) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// likePattern экранирует метасимволы LIKE в пользовательском запросе.
func likePattern(q string) string {
	rep := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + rep.Replace(q) + "%"
}

func (r *bucketlistRepo) ListByOwner(ctx context.Context, ownerID int64, q string, offset, limit int) ([]model.Bucketlist, error) {
	var lists []model.Bucketlist
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ?", ownerID)
	if q != "" {
		tx = tx.Where(`name LIKE ? ESCAPE '\'`, likePattern(q))
	}
	err := tx.Order("id ASC").Offset(offset).Limit(limit).Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *bucketlistRepo) GetByID(ctx context.Context, ownerID, id int64) (*model.Bucketlist, error) {
	var b model.Bucketlist
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bucketlistRepo) Update(ctx context.Context, ownerID, id int64, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&model.Bucketlist{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
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

func (r *bucketlistRepo) Delete(ctx context.Context, ownerID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Bucketlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("bucket_id = ?", id).Delete(&model.Item{}).Error
	})
}

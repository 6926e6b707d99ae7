package repo

import (
	"bucketlist/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя. При занятом username — ErrConflict.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername ищет пользователя по имени (регистрозависимо).
	// Если не найден — gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserByID ищет пользователя по id.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// DeleteUser удаляет пользователя вместе со всеми его списками и элементами.
	// Административная операция, в HTTP-поверхность не выведена.
	DeleteUser(ctx context.Context, id int64) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) DeleteUser(ctx context.Context, id int64) error {
	// каскад делаем явно, одной транзакцией: items -> bucketlists -> user
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Bucketlist{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("bucket_id IN (?)", sub).Delete(&model.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.Bucketlist{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

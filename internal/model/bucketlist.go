package model

import "time"

// Bucketlist — именованный список пользователя.
// Составной уникальный индекс (owner_id, name) — авторитетный сигнал дубликата:
// проверка перед вставкой не закрывает гонку, ограничение БД закрывает.
type Bucketlist struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"not null;uniqueIndex:idx_owner_name"`
	OwnerID int64  `gorm:"not null;index;uniqueIndex:idx_owner_name"` // ссылка на users.id

	// Связи: удаление списка каскадно удаляет его элементы
	Items []Item `gorm:"foreignKey:BucketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

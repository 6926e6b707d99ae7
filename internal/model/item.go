package model

import "time"

// Item — элемент списка. Владельца у элемента нет: право доступа наследуется
// от владельца родительского Bucketlist.
type Item struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex:idx_bucket_name"`
	BucketID int64  `gorm:"not null;index;uniqueIndex:idx_bucket_name"` // ссылка на bucketlists.id

	Done bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

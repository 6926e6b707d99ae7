package model

// User — учётная запись пользователя. Пароль хранится только в виде bcrypt-хеша
// и наружу никогда не сериализуется.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"-"`
	Username string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш

	// Связи: удаление пользователя каскадно удаляет его списки
	Bucketlists []Bucketlist `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

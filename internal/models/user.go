package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User структура модели хранения пользователя.
// Хеш пароля наружу не отдается никогда.
type User struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"passwordHash"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

// BeforeCreate выставляет первичный ключ если он не задан.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

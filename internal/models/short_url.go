package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodeLength длина короткого кода.
const CodeLength = 6

// CodeAlphabet алфавит из которого генерируется короткий код.
const CodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ShortURL структура модели хранения короткой ссылки.
//
// Код уникален среди всех записей, включая мягко удаленные. Удаленные записи
// остаются в хранилище (DeletedAt выставлен) и исключаются из всех выборок.
type ShortURL struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string         `gorm:"size:6;uniqueIndex;not null" json:"code"`
	TargetURL  string         `gorm:"size:2048;not null" json:"targetUrl"`
	OwnerID    *string        `gorm:"type:uuid;index" json:"ownerId,omitempty"`
	ClickCount uint64         `gorm:"not null;default:0" json:"clickCount"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

// BeforeCreate выставляет первичный ключ если он не задан.
func (s *ShortURL) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

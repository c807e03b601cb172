package db

import "github.com/mayaramilanesi/url-shortener-api/internal/db/memory"

// MemoryStorage in-memory хранилище приложения. Ссылки ключуются по коду,
// пользователи по email - уникальность этих полей обеспечивается самим ключом.
type MemoryStorage struct {
	URLs  *memory.MStorage
	Users *memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		URLs:  memory.NewMStorage(),
		Users: memory.NewMStorage(),
	}
}

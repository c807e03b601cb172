package memstore

import (
	"github.com/mayaramilanesi/url-shortener-api/internal/db/memory"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
	"github.com/pkg/errors"
)

func convertErrorType(err error) error {
	switch {
	case errors.Is(err, memory.ErrDuplicateKey):
		return repositories.ErrDuplicateKey
	case errors.Is(err, memory.ErrNotFound):
		return repositories.ErrNotFound
	default:
		return repositories.ErrUnknown
	}
}

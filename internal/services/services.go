package services

import (
	"errors"
	"fmt"

	"github.com/mayaramilanesi/url-shortener-api/internal/db"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories/memstore"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	URLService  URLShortener
	UserService Accounts
}

func Factory(conn any, sType ServiceType, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypePostgres, ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger) *Services {
	urlRepo := sql.NewShortURLRepo(conn, logger)
	userRepo := sql.NewUserRepo(conn, logger)
	return &Services{
		URLService:  NewShortURLService(urlRepo, NewCodeGenerator(urlRepo)),
		UserService: NewUserService(userRepo),
	}
}

func getInMemoryServices(store *db.MemoryStorage) *Services {
	urlRepo := memstore.NewShortURLRepo(store)
	userRepo := memstore.NewUserRepo(store)
	return &Services{
		URLService:  NewShortURLService(urlRepo, NewCodeGenerator(urlRepo)),
		UserService: NewUserService(userRepo),
	}
}

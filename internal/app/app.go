package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mayaramilanesi/url-shortener-api/internal/config"
	"github.com/mayaramilanesi/url-shortener-api/internal/controllers"
	"github.com/mayaramilanesi/url-shortener-api/internal/db"
	"github.com/mayaramilanesi/url-shortener-api/internal/services"
	"github.com/mayaramilanesi/url-shortener-api/internal/services/svccert"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(config config.Config) (*App, error) {
	dbServices, servicesErr := initServices(config)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     config,
		dbServices: dbServices,
		Logger:     config.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		URLService:  a.dbServices.URLService,
		UserService: a.dbServices.UserService,
		AppConf:     &a.config,
		Logger:      a.Logger,
	})

	go func() {
		if err := a.listen(server); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}
	return serverErr
}

// listen стартует сервер. При включенном TLS пара сертификат/ключ
// генерируется на месте если валидной еще нет.
func (a *App) listen(server *gin.Engine) error {
	if !a.config.EnableHTTPS {
		return server.Run(a.config.ServerAddress) //nolint:wrapcheck
	}

	certService := svccert.New()
	if err := certService.GenerateAndSaveIfNeed(); err != nil {
		return fmt.Errorf("prepare tls certificate: %w", err)
	}
	certPath, keyPath := certService.Paths()
	return server.RunTLS(a.config.ServerAddress, certPath, keyPath) //nolint:wrapcheck
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(appConf config.Config) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&appConf),
		PostgresDSN:  &appConf.DatabaseDSN,
		SQLiteDBPath: &appConf.SQLiteDBPath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(&appConf), appConf.Logger)
	if dbServErr != nil {
		return nil, dbServErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	switch {
	case appConf.DatabaseDSN != "":
		return db.StorageTypePostgres
	case appConf.SQLiteDBPath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}

func whatIsServiceType(appConf *config.Config) services.ServiceType {
	switch {
	case appConf.DatabaseDSN != "":
		return services.ServiceTypePostgres
	case appConf.SQLiteDBPath != "":
		return services.ServiceTypeSQLite
	default:
		return services.ServiceTypeInMemory
	}
}

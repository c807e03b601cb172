package config

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// initLogger настраивает логгер процесса. Формат привязан к режиму gin:
// в release пишем JSON под сборщик логов, иначе - читаемый текст с debug уровнем.
func initLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if os.Getenv(gin.EnvGinMode) == gin.ReleaseMode {
		logger.SetFormatter(new(logrus.JSONFormatter))
		logger.SetLevel(logrus.InfoLevel)
		return logger
	}

	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

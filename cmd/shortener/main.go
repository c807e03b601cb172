package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mayaramilanesi/url-shortener-api/internal/app"
	"github.com/mayaramilanesi/url-shortener-api/internal/bmeta"
	"github.com/mayaramilanesi/url-shortener-api/internal/config"
)

// Заполняются через ldflags при сборке.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Print(buildVersion, buildDate, buildCommit)

	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.WithFields(logrus.Fields{
		"address": appConf.ServerAddress,
		"https":   appConf.EnableHTTPS,
	}).Info("Starting server")

	if err := a.Run(); err != nil {
		panic(err)
	}
}

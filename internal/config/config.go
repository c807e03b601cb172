package config

import (
	"flag"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL *url.URL `env:"BASE_URL"`
	// Строка подключения к PostgreSQL. Если задана - используется PostgreSQL
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу SQLite. Если задан (и не задан DSN) - используется SQLite
	SQLiteDBPath string `env:"SQLITE_PATH"`
	// Секрет подписи access токенов
	JWTSecret string `env:"JWT_SECRET"`
	// Запуск с самоподписанным TLS сертификатом
	EnableHTTPS bool `env:"ENABLE_HTTPS"`
	Logger      *logrus.Logger
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}
	envConfig.BaseURL = normalizeBaseURL(envConfig.BaseURL)

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Logger = logger

	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return conf, nil
}

// MustLoadConfig вызывает панику если произошла ошибка.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadFlags парсит флаги командной строки.
func loadFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	flag.StringVar(&flagsConfig.SQLiteDBPath, "f", "", "Путь к файлу SQLite")
	flag.BoolVar(&flagsConfig.EnableHTTPS, "s", false, "Запуск c TLS")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		flagsConfig.BaseURL = normalizeBaseURL(parsedURL)
		return nil
	})

	flag.Parse()
}

// normalizeBaseURL отсекает Path и Query если они заданы в базовом урле:
// короткая ссылка собирается только из Scheme://Host.
func normalizeBaseURL(parsedURL *url.URL) *url.URL {
	if parsedURL == nil {
		return nil
	}
	return &url.URL{
		Scheme: parsedURL.Scheme,
		Host:   parsedURL.Host,
	}
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank[*url.URL](envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:   defaultIfBlank[string](envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLiteDBPath:  defaultIfBlank[string](envConfig.SQLiteDBPath, flagsConfig.SQLiteDBPath),
		JWTSecret:     envConfig.JWTSecret,
		EnableHTTPS:   envConfig.EnableHTTPS || flagsConfig.EnableHTTPS,
	}
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(*url.URL); ok && v == nil {
		return defaultValue
	}
	return value
}

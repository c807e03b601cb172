package svccert

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mayaramilanesi/url-shortener-api/internal/sslcert"
)

const (
	defaultCertFilePath = "cert.pem" // Путь к файлу сертификата по умолчанию.
	defaultKeyFilePath  = "key.pem"  // Путь к файлу приватного ключа по умолчанию.
)

// Options опции для конфигурации сервиса.
type Options struct {
	CertFilePath string
	KeyFilePath  string
}

// Cert сервис хранения пары сертификат/ключ на диске.
type Cert struct {
	gen          *sslcert.Generator
	certFilePath string
	keyFilePath  string
}

func New(opts ...func(*Options)) *Cert {
	defaultOpts := Options{
		CertFilePath: defaultCertFilePath,
		KeyFilePath:  defaultKeyFilePath,
	}
	for _, opt := range opts {
		opt(&defaultOpts)
	}
	return &Cert{
		gen:          sslcert.New(),
		certFilePath: defaultOpts.CertFilePath,
		keyFilePath:  defaultOpts.KeyFilePath,
	}
}

// Paths возвращает пути к файлам сертификата и приватного ключа.
func (c *Cert) Paths() (string, string) {
	return c.certFilePath, c.keyFilePath
}

// GenerateAndSaveIfNeed проверяет существующую пару сертификат/ключ.
// Если файлы отсутствуют, пусты или сертификат просрочен - генерирует
// и сохраняет новую пару.
func (c *Cert) GenerateAndSaveIfNeed() error {
	certPEM, readErr := os.ReadFile(c.certFilePath)
	if readErr != nil && !os.IsNotExist(readErr) {
		return errors.Wrap(readErr, "read certificate file")
	}

	checkErr := sslcert.CheckCertPEM(certPEM)
	if checkErr == nil {
		if _, keyErr := os.Stat(c.keyFilePath); keyErr == nil {
			return nil
		}
	}
	if checkErr != nil && !errors.Is(checkErr, sslcert.ErrBlankPEM) && !errors.Is(checkErr, sslcert.ErrCertExpired) {
		return errors.Wrap(checkErr, "check certificate")
	}

	return c.generateAndSave()
}

func (c *Cert) generateAndSave() error {
	certPEM, keyPEM, genErr := c.gen.Generate()
	if genErr != nil {
		return errors.Wrap(genErr, "generate certificate and private key")
	}
	if err := os.WriteFile(c.certFilePath, certPEM, 0o600); err != nil {
		return errors.Wrap(err, "save certificate")
	}
	if err := os.WriteFile(c.keyFilePath, keyPEM, 0o600); err != nil {
		return errors.Wrap(err, "save private key")
	}
	return nil
}

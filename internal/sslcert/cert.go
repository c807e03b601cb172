package sslcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"time"

	"github.com/pkg/errors"
)

const defaultValidFor = 365 * 24 * time.Hour

// Options настройки генерации сертификата.
type Options struct {
	Organization string
	Hosts        []string
	ValidFor     time.Duration
}

// Generator генерирует самоподписанные пары сертификат/ключ в PEM формате.
type Generator struct {
	opts Options
}

func New(opts ...func(*Options)) *Generator {
	options := Options{
		Organization: "url-shortener-api",
		Hosts:        []string{"localhost", "127.0.0.1"},
		ValidFor:     defaultValidFor,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Generator{opts: options}
}

// Generate создает новую пару сертификат/ключ.
//
// Возвращает:
//   - []byte: сертификат в PEM
//   - []byte: приватный ключ в PEM
//   - error: ошибка генерации
func (g *Generator) Generate() ([]byte, []byte, error) {
	priv, keyErr := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if keyErr != nil {
		return nil, nil, errors.Wrap(keyErr, "generate private key")
	}

	serial, serialErr := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if serialErr != nil {
		return nil, nil, errors.Wrap(serialErr, "generate serial number")
	}

	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{g.opts.Organization},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(g.opts.ValidFor),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	for _, h := range g.opts.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, certErr := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if certErr != nil {
		return nil, nil, errors.Wrap(certErr, "create certificate")
	}

	keyDER, marshalErr := x509.MarshalECPrivateKey(priv)
	if marshalErr != nil {
		return nil, nil, errors.Wrap(marshalErr, "marshal private key")
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM, nil
}

// CheckCertPEM проверяет что PEM содержит непросроченный сертификат.
func CheckCertPEM(certPEM []byte) error {
	if len(certPEM) == 0 {
		return ErrBlankPEM
	}
	block, _ := pem.Decode(certPEM)
	if block == nil {
		return ErrBlankPEM
	}
	cert, parseErr := x509.ParseCertificate(block.Bytes)
	if parseErr != nil {
		return errors.Wrap(parseErr, "parse certificate")
	}
	if time.Now().After(cert.NotAfter) {
		return ErrCertExpired
	}
	return nil
}

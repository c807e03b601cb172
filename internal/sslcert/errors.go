package sslcert

import "errors"

var (
	// ErrBlankPEM PEM пустой или не содержит блока сертификата.
	ErrBlankPEM = errors.New("blank pem")
	// ErrCertExpired срок действия сертификата истек.
	ErrCertExpired = errors.New("certificate expired")
)

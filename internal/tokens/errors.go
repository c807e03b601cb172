package tokens

import "errors"

// ErrTokenExpired истек срок действия токена.
var ErrTokenExpired = errors.New("token expired")

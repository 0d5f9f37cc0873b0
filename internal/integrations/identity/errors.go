package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrInvalidResponse возвращается при некорректном ответе IdentityService
	ErrInvalidResponse = errors.New("identity: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity: internal error")
)

package auth

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь с таким телефоном не зарегистрирован
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyRegistered возвращается при повторной регистрации телефона
	ErrAlreadyRegistered = errors.New("phone number already registered")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

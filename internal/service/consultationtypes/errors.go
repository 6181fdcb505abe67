package consultationtypes

import "errors"

var (
	// ErrTypeAlreadyExists возвращается, когда тип с таким именем уже есть
	ErrTypeAlreadyExists = errors.New("consultation type already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

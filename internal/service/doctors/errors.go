package doctors

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrAccessDenied возвращается, когда доктор меняет чужое расписание
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTemplate возвращается при некорректном шаблоне доступности
	ErrInvalidTemplate = errors.New("invalid availability template")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

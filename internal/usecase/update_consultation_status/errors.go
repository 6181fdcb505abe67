package update_consultation_status

import "errors"

var (
	// ErrConsultationNotFound возвращается, когда консультация не найдена
	ErrConsultationNotFound = errors.New("update_consultation_status: consultation not found")

	// ErrInvalidStatus возвращается, когда запрошенный статус вне перечисления
	ErrInvalidStatus = errors.New("update_consultation_status: invalid status")

	// ErrTerminalStatus возвращается при попытке перехода из завершённого состояния
	ErrTerminalStatus = errors.New("update_consultation_status: consultation is in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_consultation_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_consultation_status: internal error")
)

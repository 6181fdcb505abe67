package consultationtype

import "errors"

var (
	// ErrTypeNotFound тип консультации не найден
	ErrTypeNotFound = errors.New("consultationtype.repository: consultation type not found")
	// ErrTypeAlreadyExists тип консультации с таким именем уже существует
	ErrTypeAlreadyExists = errors.New("consultationtype.repository: consultation type already exists")
	// ErrBuildQuery ошибка построения запроса
	ErrBuildQuery = errors.New("consultationtype.repository: build query error")
	// ErrExecQuery ошибка выполнения запроса
	ErrExecQuery = errors.New("consultationtype.repository: execute query error")
	// ErrScanRow ошибка сканирования строки
	ErrScanRow = errors.New("consultationtype.repository: scan row error")
)

package patient

import "errors"

var (
	// ErrPatientNotFound пациент не найден
	ErrPatientNotFound = errors.New("patient.repository: patient not found")
	// ErrPatientAlreadyExists пациент с таким номером телефона уже зарегистрирован
	ErrPatientAlreadyExists = errors.New("patient.repository: patient already exists")
	// ErrBuildQuery ошибка построения запроса
	ErrBuildQuery = errors.New("patient.repository: build query error")
	// ErrExecQuery ошибка выполнения запроса
	ErrExecQuery = errors.New("patient.repository: execute query error")
	// ErrScanRow ошибка сканирования строки
	ErrScanRow = errors.New("patient.repository: scan row error")
)

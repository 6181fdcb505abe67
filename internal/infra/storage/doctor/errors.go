package doctor

import "errors"

var (
	// ErrDoctorNotFound доктор не найден
	ErrDoctorNotFound = errors.New("doctor.repository: doctor not found")
	// ErrDoctorAlreadyExists доктор с таким номером телефона уже зарегистрирован
	ErrDoctorAlreadyExists = errors.New("doctor.repository: doctor already exists")
	// ErrBuildQuery ошибка построения запроса
	ErrBuildQuery = errors.New("doctor.repository: build query error")
	// ErrExecQuery ошибка выполнения запроса
	ErrExecQuery = errors.New("doctor.repository: execute query error")
	// ErrScanRow ошибка сканирования строки
	ErrScanRow = errors.New("doctor.repository: scan row error")
)

package book_consultation

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("book_consultation: patient not found")

	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("book_consultation: doctor not found")

	// ErrTypeNotFound возвращается, когда тип консультации не найден
	ErrTypeNotFound = errors.New("book_consultation: consultation type not found")

	// ErrNoAvailability возвращается, когда у доктора не задан шаблон доступности
	ErrNoAvailability = errors.New("book_consultation: doctor has no availability set")

	// ErrDoctorNotAvailable возвращается, когда доктор не принимает в этот день недели
	ErrDoctorNotAvailable = errors.New("book_consultation: doctor is not available on this day")

	// ErrSlotNotInTemplate возвращается, когда запрошенный слот не входит в расписание доктора
	ErrSlotNotInTemplate = errors.New("book_consultation: slot is not in the doctor's schedule")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другой консультацией
	ErrSlotNotAvailable = errors.New("book_consultation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_consultation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_consultation: internal error")
)

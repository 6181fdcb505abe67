package consultation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/pkg/dbmetrics"
	"github.com/medbridge-ng/consultation-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var consultationColumns = []string{
	"id",
	"patient_id",
	"doctor_id",
	"consultation_type_id",
	"appointment_date",
	"slot_start",
	"slot_end",
	"appointment_time",
	"appointment_end_time",
	"status",
	"payment_status",
	"payment_method",
	"payment_reference",
	"language",
	"symptoms",
	"medical_info",
	"completed_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// StatusUpdate поля, изменяемые при переходе статуса
// Timestamps выставляет usecase; репозиторий пишет их как есть
type StatusUpdate struct {
	Status      domain.ConsultationStatus
	CompletedAt *time.Time
	CancelledAt *time.Time
	MedicalInfo *domain.MedicalInfo
}

// Repository репозиторий для работы с консультациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория консультаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую консультацию
// ID генерируется на стороне приложения (UUID)
// Нарушение уникального индекса по (doctor_id, appointment_date, slot_start)
// возвращается как ErrSlotTaken - это страховка от гонки бронирования на
// уровне хранилища
func (r *Repository) Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	medicalInfo, err := json.Marshal(c.MedicalInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal medical_info: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("consultations").
		Columns(
			"id",
			"patient_id",
			"doctor_id",
			"consultation_type_id",
			"appointment_date",
			"slot_start",
			"slot_end",
			"appointment_time",
			"appointment_end_time",
			"status",
			"payment_status",
			"payment_method",
			"payment_reference",
			"language",
			"symptoms",
			"medical_info",
		).
		Values(
			c.ID,
			c.PatientID,
			c.DoctorID,
			c.ConsultationTypeID,
			c.AppointmentDate,
			c.SlotStart,
			c.SlotEnd,
			c.AppointmentTime,
			c.AppointmentEndTime,
			c.Status,
			c.PaymentStatus,
			c.PaymentMethod,
			c.PaymentReference,
			c.Language,
			c.Symptoms,
			medicalInfo,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает консультацию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(consultationColumns...).
		From("consultations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanConsultation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consultation: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetBookedForDay получает консультации доктора на календарную дату со
// статусом, отличным от cancelled - источник занятых интервалов для
// вычисления доступных слотов
//
// Внутри транзакции строки блокируются через FOR UPDATE: два конкурентных
// бронирования одного слота сериализуются на этой выборке
func (r *Repository) GetBookedForDay(ctx context.Context, doctorID string, date time.Time) ([]*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(consultationColumns...).
		From("consultations").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// List получает консультации по фильтру
// Для пациента сортировка по времени приёма DESC (сначала свежие),
// для доктора - ASC (порядок приёма в течение дня)
func (r *Repository) List(ctx context.Context, filter domain.ConsultationsFilter) ([]*domain.Consultation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(consultationColumns...).
		From("consultations")

	if filter.PatientID != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"patient_id": *filter.PatientID}).
			OrderBy("appointment_time DESC")
	}

	if filter.DoctorID != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"doctor_id": *filter.DoctorID}).
			OrderBy("appointment_time ASC")
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// UpdateStatus применяет переход статуса вместе с его штампами времени
// Валидация перехода выполняется в usecase до вызова
func (r *Repository) UpdateStatus(ctx context.Context, id string, update StatusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("consultations").
		Set("status", update.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.CompletedAt != nil {
		updateBuilder = updateBuilder.Set("completed_at", *update.CompletedAt)
	}
	if update.CancelledAt != nil {
		updateBuilder = updateBuilder.Set("cancelled_at", *update.CancelledAt)
	}
	if update.MedicalInfo != nil {
		medicalInfo, err := json.Marshal(update.MedicalInfo)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - marshal medical_info: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("medical_info", medicalInfo)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConsultationNotFound
	}

	return nil
}

// scanConsultation сканирует одну строку в domain.Consultation
func scanConsultation(scan func(dest ...interface{}) error) (*domain.Consultation, error) {
	var c domain.Consultation
	var medicalInfo []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&c.ID,
		&c.PatientID,
		&c.DoctorID,
		&c.ConsultationTypeID,
		&c.AppointmentDate,
		&c.SlotStart,
		&c.SlotEnd,
		&c.AppointmentTime,
		&c.AppointmentEndTime,
		&c.Status,
		&c.PaymentStatus,
		&c.PaymentMethod,
		&c.PaymentReference,
		&c.Language,
		&c.Symptoms,
		&medicalInfo,
		&c.CompletedAt,
		&c.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(medicalInfo) > 0 {
		if err := json.Unmarshal(medicalInfo, &c.MedicalInfo); err != nil {
			return nil, fmt.Errorf("unmarshal medical_info: %v", err)
		}
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// scanConsultations сканирует результаты запроса в слайс консультаций
func scanConsultations(rows *sql.Rows) ([]*domain.Consultation, error) {
	consultations := make([]*domain.Consultation, 0)

	for rows.Next() {
		c, err := scanConsultation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanConsultations - scan row: %v", ErrScanRow, err)
		}
		consultations = append(consultations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanConsultations - rows error: %v", ErrScanRow, err)
	}

	return consultations, nil
}

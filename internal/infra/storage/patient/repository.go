package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/pkg/dbmetrics"
	"github.com/medbridge-ng/consultation-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var patientColumns = []string{
	"id",
	"phone_number",
	"name",
	"language",
	"referral_source",
	"whatsapp_opt_in",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пациентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пациента
// Уникальность по phone_number; дубликат возвращается как ErrPatientAlreadyExists
func (r *Repository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("patients").
		Columns(
			"id",
			"phone_number",
			"name",
			"language",
			"referral_source",
			"whatsapp_opt_in",
		).
		Values(
			p.ID,
			p.PhoneNumber,
			p.Name,
			p.Language,
			p.ReferralSource,
			p.WhatsappOptIn,
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
			return nil, ErrPatientAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPhone получает пациента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Patient, error) {
	return r.getOne(ctx, squirrel.Eq{"phone_number": phoneNumber})
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patientColumns...).
		From("patients").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Patient
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.PhoneNumber,
		&p.Name,
		&p.Language,
		&p.ReferralSource,
		&p.WhatsappOptIn,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan patient: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

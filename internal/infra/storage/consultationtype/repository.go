package consultationtype

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

var typeColumns = []string{
	"id",
	"name",
	"fee",
	"doctor_earning",
	"platform_fee",
	"is_specialist",
	"is_follow_up",
	"description",
	"created_at",
}

// Repository репозиторий для работы с типами консультаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов консультаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип консультации
func (r *Repository) Create(ctx context.Context, t *domain.ConsultationType) (*domain.ConsultationType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("consultation_types").
		Columns(
			"id",
			"name",
			"fee",
			"doctor_earning",
			"platform_fee",
			"is_specialist",
			"is_follow_up",
			"description",
		).
		Values(
			t.ID,
			t.Name,
			t.Fee,
			t.DoctorEarning,
			t.PlatformFee,
			t.IsSpecialist,
			t.IsFollowUp,
			t.Description,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrTypeAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetByID получает тип консультации по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ConsultationType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(typeColumns...).
		From("consultation_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanType(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consultation type: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает все типы консультаций
func (r *Repository) List(ctx context.Context) ([]*domain.ConsultationType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(typeColumns...).
		From("consultation_types").
		OrderBy("fee ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.ConsultationType, 0)
	for rows.Next() {
		t, err := scanType(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// scanType сканирует строку в domain.ConsultationType
func scanType(scan func(dest ...interface{}) error) (*domain.ConsultationType, error) {
	var t domain.ConsultationType
	var createdAt sql.NullTime

	err := scan(
		&t.ID,
		&t.Name,
		&t.Fee,
		&t.DoctorEarning,
		&t.PlatformFee,
		&t.IsSpecialist,
		&t.IsFollowUp,
		&t.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time

	return &t, nil
}

package doctor

import (
	"context"
	"database/sql"
	"encoding/json"
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

var doctorColumns = []string{
	"id",
	"full_name",
	"phone_number",
	"email",
	"location",
	"specialty",
	"experience_years",
	"languages_spoken",
	"gender",
	"bio",
	"focus",
	"consultation_mode",
	"is_active",
	"availability",
	"mdcn_license_number",
	"mdcn_certificate_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с докторами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория докторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового доктора
// Уникальность по phone_number; дубликат возвращается как ErrDoctorAlreadyExists
func (r *Repository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	languages, err := json.Marshal(d.LanguagesSpoken)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal languages_spoken: %v", ErrBuildQuery, err)
	}

	var availability interface{}
	if d.Availability != nil {
		availability, err = json.Marshal(d.Availability)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - marshal availability: %v", ErrBuildQuery, err)
		}
	}

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"id",
			"full_name",
			"phone_number",
			"email",
			"location",
			"specialty",
			"experience_years",
			"languages_spoken",
			"gender",
			"bio",
			"focus",
			"consultation_mode",
			"is_active",
			"availability",
			"mdcn_license_number",
			"mdcn_certificate_url",
		).
		Values(
			d.ID,
			d.FullName,
			d.PhoneNumber,
			d.Email,
			d.Location,
			d.Specialty,
			d.ExperienceYears,
			languages,
			d.Gender,
			d.Bio,
			d.Focus,
			d.ConsultationMode,
			d.IsActive,
			availability,
			d.MDCNLicenseNumber,
			d.MDCNCertificateURL,
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
			return nil, ErrDoctorAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает доктора по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPhone получает доктора по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Doctor, error) {
	return r.getOne(ctx, squirrel.Eq{"phone_number": phoneNumber})
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	d, err := scanDoctor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan doctor: %v", ErrScanRow, err)
	}

	return d, nil
}

// List получает активных докторов по фильтру каталога
func (r *Repository) List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("full_name ASC")

	if filter.Specialty != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialty": *filter.Specialty})
	}

	if filter.Language != nil {
		language, err := json.Marshal([]string{*filter.Language})
		if err != nil {
			return nil, fmt.Errorf("%w: List - marshal language filter: %v", ErrBuildQuery, err)
		}
		selectBuilder = selectBuilder.Where(squirrel.Expr("languages_spoken @> ?", language))
	}

	if filter.Mode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"consultation_mode": *filter.Mode},
			squirrel.Eq{"consultation_mode": domain.ModeBoth},
		})
	}

	if filter.Gender != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"gender": *filter.Gender})
	}

	if filter.MinExperience != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"experience_years": *filter.MinExperience})
	}

	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"location": "%" + *filter.Location + "%"})
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

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		d, err := scanDoctor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// GetAvailability получает шаблон доступности доктора
// nil без ошибки значит, что шаблон ещё не задан; ErrDoctorNotFound -
// что доктора нет вовсе
func (r *Repository) GetAvailability(ctx context.Context, doctorID string) (*domain.AvailabilityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("availability").
		From("doctors").
		Where(squirrel.Eq{"id": doctorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - scan availability: %v", ErrScanRow, err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var template domain.AvailabilityTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - unmarshal availability: %v", ErrScanRow, err)
	}

	return &template, nil
}

// UpdateAvailability заменяет шаблон доступности целиком
func (r *Repository) UpdateAvailability(ctx context.Context, doctorID string, template *domain.AvailabilityTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availability, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - marshal availability: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("doctors").
		Set("availability", availability).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doctorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// scanDoctor сканирует строку в domain.Doctor
func scanDoctor(scan func(dest ...interface{}) error) (*domain.Doctor, error) {
	var d domain.Doctor
	var languages, availability []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&d.ID,
		&d.FullName,
		&d.PhoneNumber,
		&d.Email,
		&d.Location,
		&d.Specialty,
		&d.ExperienceYears,
		&languages,
		&d.Gender,
		&d.Bio,
		&d.Focus,
		&d.ConsultationMode,
		&d.IsActive,
		&availability,
		&d.MDCNLicenseNumber,
		&d.MDCNCertificateURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(languages) > 0 {
		if err := json.Unmarshal(languages, &d.LanguagesSpoken); err != nil {
			return nil, fmt.Errorf("unmarshal languages_spoken: %v", err)
		}
	}

	if len(availability) > 0 {
		var template domain.AvailabilityTemplate
		if err := json.Unmarshal(availability, &template); err != nil {
			return nil, fmt.Errorf("unmarshal availability: %v", err)
		}
		d.Availability = &template
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/auth"
	alumniDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/alumni"
	departmentDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/department"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(email string) (*auth.Alumni, error) {
	var record alumniDatamodel.Alumni
	err := r.db.Preload("Department").
		Where("email = ?", strings.ToLower(email)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return auth.FromDataModel(&record), nil
}

func (r *Repository) GetByID(alumniID int64) (*auth.Alumni, error) {
	var record alumniDatamodel.Alumni
	err := r.db.Preload("Department").
		Where("id = ?", alumniID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return auth.FromDataModel(&record), nil
}

// Create persists a new account. The unique index on email is the arbiter for
// concurrent registrations; a collision surfaces as ErrDuplicateEmail, never
// as a generic failure.
func (r *Repository) Create(account *auth.Alumni) (*auth.Alumni, error) {
	record := auth.ToDataModel(account)
	record.Email = strings.ToLower(record.Email)

	if err := r.db.Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, internal.ErrDuplicateEmail
		}
		return nil, err
	}
	return r.GetByID(record.ID)
}

// UpdateFields writes only the columns present in the whitelist DTO.
func (r *Repository) UpdateFields(alumniID int64, dto auth.UpdateProfileDTO) (*auth.Alumni, error) {
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Batch != nil {
		updates["batch"] = *dto.Batch
	}
	if dto.Department != nil {
		updates["department_id"] = *dto.Department
	}
	if dto.JobTitle != nil {
		updates["job_title"] = *dto.JobTitle
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}

	if len(updates) > 0 {
		err := r.db.Model(&alumniDatamodel.Alumni{}).
			Where("id = ?", alumniID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.GetByID(alumniID)
}

func (r *Repository) DepartmentExists(departmentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&departmentDatamodel.Department{}).
		Where("id = ?", departmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueViolation recognizes a unique-index collision from either the
// postgres driver (SQLSTATE 23505), gorm's translated error, or the sqlite
// driver used in tests.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

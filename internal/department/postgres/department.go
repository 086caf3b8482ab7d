package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/department"
	departmentDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/department"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAllSortedByName() ([]*department.Department, error) {
	var records []*departmentDatamodel.Department
	if err := r.db.Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	departments := make([]*department.Department, len(records))
	for i, record := range records {
		departments[i] = department.FromDataModel(record)
	}
	return departments, nil
}

// Create persists a department; the unique indexes on name and code decide
// collisions and both surface as the same duplicate-key failure.
func (r *Repository) Create(d *department.Department) (*department.Department, error) {
	record := department.ToDataModel(d)
	if err := r.db.Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, internal.ErrDuplicateKey
		}
		return nil, err
	}
	return department.FromDataModel(record), nil
}

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

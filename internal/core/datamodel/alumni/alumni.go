package alumni

import (
	"time"

	departmentDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/department"
)

type Alumni struct {
	ID           int64                            `gorm:"primaryKey"`
	Name         string                           `gorm:"column:name;not null"`
	Batch        string                           `gorm:"column:batch;not null"`
	DepartmentID int64                            `gorm:"column:department_id;not null"`
	Department   *departmentDatamodel.Department  `gorm:"foreignKey:DepartmentID"`
	JobTitle     string                           `gorm:"column:job_title"`
	Email        string                           `gorm:"column:email;uniqueIndex;not null"`
	Phone        string                           `gorm:"column:phone"`
	PasswordHash string                           `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time                        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time                        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Alumni) TableName() string {
	return "alumni"
}

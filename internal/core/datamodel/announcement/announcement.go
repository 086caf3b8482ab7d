package announcement

import (
	"time"

	alumniDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/alumni"
)

type Announcement struct {
	ID          int64                   `gorm:"primaryKey"`
	Title       string                  `gorm:"column:title;not null"`
	Description string                  `gorm:"column:description;not null"`
	AuthorID    int64                   `gorm:"column:author_id;not null"`
	Author      *alumniDatamodel.Alumni `gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "announcements"
}

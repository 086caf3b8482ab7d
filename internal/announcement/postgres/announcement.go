package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sakshigoud44/back2campus/internal/announcement"
	announcementDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/announcement"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetPage returns one page ordered newest first, with the author and the
// author's department joined in.
func (r *Repository) GetPage(limit, offset int) ([]*announcement.Announcement, error) {
	var records []*announcementDatamodel.Announcement
	err := r.db.Preload("Author.Department").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	announcements := make([]*announcement.Announcement, len(records))
	for i, record := range records {
		announcements[i] = announcement.FromDataModel(record)
	}
	return announcements, nil
}

func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&announcementDatamodel.Announcement{}).Count(&total).Error
	return total, err
}

func (r *Repository) GetByID(announcementID int64) (*announcement.Announcement, error) {
	var record announcementDatamodel.Announcement
	err := r.db.Preload("Author.Department").
		Where("id = ?", announcementID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return announcement.FromDataModel(&record), nil
}

func (r *Repository) Create(title, description string, authorID int64) (*announcement.Announcement, error) {
	record := &announcementDatamodel.Announcement{
		Title:       title,
		Description: description,
		AuthorID:    authorID,
	}
	if err := r.db.Create(record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(record.ID)
}

package announcement

import (
	"time"

	announcementDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/announcement"
)

type Announcement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Author is the populated author reference: the subset of the alumni record
// a public listing exposes, with the department joined one level deeper.
type Author struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Batch      string            `json:"batch"`
	Department *AuthorDepartment `json:"department,omitempty"`
}

type AuthorDepartment struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func FromDataModel(record *announcementDatamodel.Announcement) *Announcement {
	a := &Announcement{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
	if record.Author != nil {
		author := &Author{
			ID:    record.Author.ID,
			Name:  record.Author.Name,
			Batch: record.Author.Batch,
		}
		if record.Author.Department != nil {
			author.Department = &AuthorDepartment{
				Name: record.Author.Department.Name,
				Code: record.Author.Department.Code,
			}
		}
		a.Author = author
	}
	return a
}

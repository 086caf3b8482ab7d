package announcement

import (
	errors "github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/core/common/validation"
)

// CreateAnnouncementDTO deliberately has no author field: the author is always
// the authenticated account, and a client-supplied one has nowhere to land.
type CreateAnnouncementDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (d CreateAnnouncementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required("Title").MaxLength(200, "Title")
	v.Field("description", d.Description).Required("Description").MaxLength(2000, "Description")
	return v.Validate()
}

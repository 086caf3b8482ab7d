package auth

import (
	errors "github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/core/common/validation"
)

// RegisterDTO is the transport shape for registration requests.
type RegisterDTO struct {
	Name       string `json:"name"`
	Batch      string `json:"batch"`
	Department int64  `json:"department"`
	JobTitle   string `json:"job_title"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

func (d RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required("Name").MaxLength(100, "Name")
	v.Field("batch", d.Batch).Required("Batch").MaxLength(20, "Batch")
	v.Field("department", d.Department).Required("Department")
	v.Field("job_title", d.JobTitle).MaxLength(100, "Job title")
	v.Field("email", d.Email).Required("Email").Email()
	v.Field("password", d.Password).Required("Password")
	return v.Validate()
}

// LoginDTO is the transport shape for login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() *errors.AppError {
	if d.Email == "" || d.Password == "" {
		return errors.NewValidationError("Please provide email and password", errors.ErrCodeFieldRequired)
	}
	return nil
}

// UpdateProfileDTO holds exactly the mutable profile fields. Anything else in
// the request body (password included) has no field to land in, so it is
// dropped during decoding instead of being filtered by key at runtime.
type UpdateProfileDTO struct {
	Name       *string `json:"name"`
	Batch      *string `json:"batch"`
	Department *int64  `json:"department"`
	JobTitle   *string `json:"job_title"`
	Phone      *string `json:"phone"`
}

func (d UpdateProfileDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Field("name", *d.Name).Required("Name").MaxLength(100, "Name")
	}
	if d.Batch != nil {
		v.Field("batch", *d.Batch).Required("Batch").MaxLength(20, "Batch")
	}
	if d.JobTitle != nil {
		v.Field("job_title", *d.JobTitle).MaxLength(100, "Job title")
	}
	return v.Validate()
}

// IsEmpty reports whether the update carries no recognized field at all.
func (d UpdateProfileDTO) IsEmpty() bool {
	return d.Name == nil && d.Batch == nil && d.Department == nil && d.JobTitle == nil && d.Phone == nil
}

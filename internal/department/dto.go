package department

import (
	errors "github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (d CreateDepartmentDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required("Name").MaxLength(100, "Name")
	v.Field("code", d.Code).Required("Code").MaxLength(20, "Code")
	return v.Validate()
}

package validation

import (
	"fmt"
	"regexp"

	errors "github.com/sakshigoud44/back2campus/internal"
)

// emailPattern mirrors the permissive local@domain.tld check the mongoose
// schema used; stricter RFC parsing would reject addresses it accepted.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required(label string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if v == "" {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", label), errors.ErrCodeFieldRequired)
			}
		case int64:
			if v == 0 {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", label), errors.ErrCodeFieldRequired)
			}
		case *string:
			if v == nil || *v == "" {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", label), errors.ErrCodeFieldRequired)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int, label string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		s, ok := stringValue(value)
		if !ok {
			return nil
		}
		if len(s) > max {
			message := fmt.Sprintf("%s cannot exceed %d characters", label, max)
			return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeFieldTooLong)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return nil
		}
		if !emailPattern.MatchString(s) {
			return errors.NewValidationFieldError(fv.FieldName, "Please enter a valid email", errors.ErrCodeInvalidEmail)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

// Validate runs every registered check and aggregates all field failures into
// one AppError so a response can report them together.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var fieldErrors []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			err := validator(field.Value)
			if err == nil {
				continue
			}
			if details, ok := err.Details.(errors.ValidationErrors); ok {
				fieldErrors = append(fieldErrors, details.Errors...)
			} else {
				fieldErrors = append(fieldErrors, errors.ValidationError{
					Field:   field.FieldName,
					Message: err.Message,
					Code:    string(err.Code),
				})
			}
		}
	}

	if len(fieldErrors) > 0 {
		return errors.NewValidationError("Validation error", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: fieldErrors})
	}
	return nil
}

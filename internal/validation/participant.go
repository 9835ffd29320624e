package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParticipantPayload is the request body for add and update operations.
// Update ignores Email (the URL carries the lookup key), so it is the only
// field allowed to be empty there.
type ParticipantPayload struct {
	Email     string      `json:"email" validate:"omitempty,email"`
	Firstname string      `json:"firstname" validate:"required"`
	Lastname  string      `json:"lastname" validate:"required"`
	DOB       string      `json:"dob" validate:"required,datetime=2006-01-02"`
	Work      WorkPayload `json:"work"`
	Home      HomePayload `json:"home"`
}

type WorkPayload struct {
	Companyname string   `json:"companyname" validate:"required"`
	Salary      *float64 `json:"salary" validate:"required,gte=0"`
	Currency    string   `json:"currency" validate:"required"`
}

type HomePayload struct {
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// FieldError is a single rule violation, reported per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

// ValidateCreate checks a payload for the add operation, where email is
// mandatory.
func ValidateCreate(p *ParticipantPayload) []FieldError {
	violations := ValidateUpdate(p)
	if p.Email == "" {
		violations = append([]FieldError{{Field: "email", Message: "must not be empty"}}, violations...)
	}
	return nilIfEmpty(violations)
}

// ValidateUpdate checks every rule except email presence. String fields are
// trimmed in place first, so whitespace-only values count as empty. All
// violations are collected rather than stopping at the first.
func ValidateUpdate(p *ParticipantPayload) []FieldError {
	trim(p)

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "payload", Message: "invalid payload"}}
	}

	violations := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldError{Field: fieldName(fe), Message: message(fe)})
	}
	return violations
}

func trim(p *ParticipantPayload) {
	p.Email = strings.TrimSpace(p.Email)
	p.Firstname = strings.TrimSpace(p.Firstname)
	p.Lastname = strings.TrimSpace(p.Lastname)
	p.DOB = strings.TrimSpace(p.DOB)
	p.Work.Companyname = strings.TrimSpace(p.Work.Companyname)
	p.Work.Currency = strings.TrimSpace(p.Work.Currency)
	p.Home.Country = strings.TrimSpace(p.Home.Country)
	p.Home.City = strings.TrimSpace(p.Home.City)
}

// fieldName converts a validator namespace like
// "ParticipantPayload.Work.Salary" into the JSON path "work.salary".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a valid date in YYYY-MM-DD format"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed validation (" + fe.Tag() + ")"
	}
}

func nilIfEmpty(violations []FieldError) []FieldError {
	if len(violations) == 0 {
		return nil
	}
	return violations
}

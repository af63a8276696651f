package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobconnect-backend/pkg/models"
)

// ValidateTrimmedMin enforces a minimum length on the field value after
// trimming surrounding whitespace, e.g. `validate:"trimmed_min=10"`.
func ValidateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= min
}

// ValidateJobType checks membership in the fixed job-type enumeration.
// Callers normalize to lowercase before validation.
func ValidateJobType(fl validator.FieldLevel) bool {
	return models.IsValidJobType(fl.Field().String())
}

// ValidateApplicationStatus checks membership in the application status set.
func ValidateApplicationStatus(fl validator.FieldLevel) bool {
	return models.IsValidApplicationStatus(fl.Field().String())
}

// ValidateUserType checks the realm selector names a known realm.
func ValidateUserType(fl validator.FieldLevel) bool {
	return models.IsValidUserType(fl.Field().String())
}

// RegisterJobBoardValidators registers all custom validators used by the
// request models.
func RegisterJobBoardValidators(v *validator.Validate) {
	v.RegisterValidation("trimmed_min", ValidateTrimmedMin)
	v.RegisterValidation("job_type", ValidateJobType)
	v.RegisterValidation("application_status", ValidateApplicationStatus)
	v.RegisterValidation("user_type", ValidateUserType)
}

// FormatErrors renders a validator error into one message naming every
// offending field and its violated constraint.
func FormatErrors(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "job_type":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.ValidJobTypes, ", "))
	case "application_status":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.ValidApplicationStatuses, ", "))
	case "user_type":
		return fmt.Sprintf("%s must be jobseeker or employer", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

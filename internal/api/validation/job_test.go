package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/pkg/models"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterJobBoardValidators(v)
	return v
}

func TestTrimmedMin(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		Title string `validate:"trimmed_min=3"`
	}

	assert.NoError(t, v.Struct(payload{Title: "abc"}))
	assert.NoError(t, v.Struct(payload{Title: "  abc  "}))
	assert.Error(t, v.Struct(payload{Title: "ab"}))
	assert.Error(t, v.Struct(payload{Title: "  a  "}))
	assert.Error(t, v.Struct(payload{Title: "      "}))
}

func TestJobTypeValidator(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		JobType string `validate:"job_type"`
	}

	for _, jt := range models.ValidJobTypes {
		assert.NoError(t, v.Struct(payload{JobType: jt}), jt)
	}
	assert.Error(t, v.Struct(payload{JobType: "gig"}))
	// Normalization to lowercase happens before validation
	assert.Error(t, v.Struct(payload{JobType: "Full-Time"}))
}

func TestApplicationStatusValidator(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		Status string `validate:"application_status"`
	}

	for _, s := range models.ValidApplicationStatuses {
		assert.NoError(t, v.Struct(payload{Status: s}), s)
	}
	assert.Error(t, v.Struct(payload{Status: "archived"}))
}

func TestUserTypeValidator(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		UserType string `validate:"user_type"`
	}

	assert.NoError(t, v.Struct(payload{UserType: "jobseeker"}))
	assert.NoError(t, v.Struct(payload{UserType: "employer"}))
	assert.Error(t, v.Struct(payload{UserType: "admin"}))
}

func TestFormatErrors(t *testing.T) {
	v := newValidator(t)

	req := models.CreateJobRequest{Title: "Go", JobType: "gig"}
	err := v.Struct(&req)
	require.Error(t, err)

	msg := FormatErrors(err)
	assert.Contains(t, msg, "title must be at least 3 characters")
	assert.Contains(t, msg, "description is required")
	assert.Contains(t, msg, "job_type must be one of: full-time")
}

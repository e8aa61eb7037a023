package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormValidator_Registration(t *testing.T) {
	fv := newFormValidator()

	valid := registrationForm{Name: "Asha", Email: "a@x.com", Phone: "900", Experience: 0, Password: "pw"}
	assert.NoError(t, fv.Validate(valid))

	err := fv.Validate(registrationForm{Email: "bad", Experience: -1})
	assert.EqualError(t, err, "name is required; email must be a valid email; phone is required; experience must be at least 0; password is required")
}

func TestFormValidator_Project(t *testing.T) {
	fv := newFormValidator()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	same := projectForm{Name: "Bridge", StartDate: day, EndDate: day, ClientName: "C", BuilderID: "B1"}
	assert.NoError(t, fv.Validate(same), "end date may equal start date")

	badEmail := same
	badEmail.ClientEmail = "nope"
	assert.EqualError(t, fv.Validate(badEmail), "client email must be a valid email")

	backwards := same
	backwards.EndDate = day.AddDate(0, 0, -1)
	assert.EqualError(t, fv.Validate(backwards), "end date must not be before start date")

	assert.EqualError(t, fv.Validate(projectForm{StartDate: day, EndDate: day}),
		"project name is required; client name is required; builder id is required")
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, "start date", splitWords("StartDate"))
	assert.Equal(t, "name", splitWords("Name"))
}

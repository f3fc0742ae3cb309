package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name       string    `validate:"required,max=10"`
	Email      string    `validate:"omitempty,email"`
	CategoryID uuid.UUID `validate:"uuid_required"`
	Amount     float64   `validate:"gt=0"`
}

func valid() sample {
	return sample{Name: "aspirin", CategoryID: uuid.New(), Amount: 1}
}

func TestValidStructHasNoErrors(t *testing.T) {
	assert.Empty(t, ValidateStruct(valid()))
}

func TestRequiredField(t *testing.T) {
	s := valid()
	s.Name = ""

	errs := ValidateStruct(s)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name", errs[0].Field)
	assert.Equal(t, "Name is required", errs[0].Message())
}

func TestNilUUIDFailsUUIDRequired(t *testing.T) {
	s := valid()
	s.CategoryID = uuid.Nil

	errs := ValidateStruct(s)
	require.Len(t, errs, 1)
	assert.Equal(t, "CategoryID", errs[0].Field)
	assert.Equal(t, "uuid_required", errs[0].Tag)
}

func TestMultipleFailuresReportEveryField(t *testing.T) {
	errs := ValidateStruct(sample{})
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"Name", "CategoryID", "Amount"}, fields)
}

func TestMessages(t *testing.T) {
	s := valid()
	s.Email = "nope"
	s.Amount = 0

	for _, e := range ValidateStruct(s) {
		switch e.Field {
		case "Email":
			assert.Equal(t, "Email must be a valid email address", e.Message())
		case "Amount":
			assert.Equal(t, "Amount must be greater than 0", e.Message())
		}
	}
}

package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromPassesThroughNormalizedErrors(t *testing.T) {
	original := Validation("name", "Name is required")
	got := From(fmt.Errorf("create product: %w", original))

	assert.Same(t, original, got)
}

func TestFromGormSentinels(t *testing.T) {
	notFound := From(gorm.ErrRecordNotFound)
	assert.Equal(t, KindNotFound, notFound.Kind)
	assert.Equal(t, fiber.StatusNotFound, notFound.Status())

	duplicate := From(gorm.ErrDuplicatedKey)
	assert.Equal(t, KindConflict, duplicate.Kind)
	assert.Equal(t, fiber.StatusConflict, duplicate.Status())
}

func TestFromFiberErrors(t *testing.T) {
	got := From(fiber.ErrUnauthorized)
	assert.Equal(t, KindUnauthorized, got.Kind)

	got = From(fiber.NewError(fiber.StatusBadRequest, "bad input"))
	assert.Equal(t, KindValidation, got.Kind)
	assert.Equal(t, "bad input", got.Message)
}

func TestFromUnknownErrorIsInternal(t *testing.T) {
	got := From(errors.New("connection reset"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "connection reset", got.Message)
	assert.Equal(t, fiber.StatusInternalServerError, got.Status())
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestValidationStatus(t *testing.T) {
	err := Validation("amount", "amount must be greater than 0")
	assert.Equal(t, fiber.StatusUnprocessableEntity, err.Status())
	assert.Equal(t, "amount", err.Field)
}

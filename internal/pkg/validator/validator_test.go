package validator

import (
	stderrors "errors"
	"testing"

	"github.com/pharmacy-locator/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Location string `json:"location" validate:"required"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sample{Location: "Paris"}))

	err := Validate(&sample{Limit: 100})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Contains(t, appErr.Details, "location")
	assert.Contains(t, appErr.Details, "limit")
}

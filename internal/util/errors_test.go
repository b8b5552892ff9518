package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	err := Validationf("score must be within [0,100], got %d", 130)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "130")

	err = NotFoundf("candidate %s", "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))

	err = Consistencyf("question %s missing", "q1")
	assert.True(t, errors.Is(err, ErrConsistency))

	wrapped := fmt.Errorf("%w (%d references)", ErrDepartmentReferenced, 3)
	assert.True(t, errors.Is(wrapped, ErrDepartmentReferenced))
}

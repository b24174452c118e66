package crondst

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reugn/go-crondst/internal/assert"
)

func TestInvalidExpressionError(t *testing.T) {
	message := "bad minute"
	err := invalidExpressionError(message)
	if !errors.Is(err, ErrInvalidExpression) {
		t.Fatal("error must match ErrInvalidExpression")
	}
	assert.Equal(t, err.Error(), fmt.Sprintf("%s: %s", ErrInvalidExpression, message))
}

func TestIllegalArgumentError(t *testing.T) {
	message := "location is nil"
	err := illegalArgumentError(message)
	if !errors.Is(err, ErrIllegalArgument) {
		t.Fatal("error must match ErrIllegalArgument")
	}
	assert.Equal(t, err.Error(), fmt.Sprintf("%s: %s", ErrIllegalArgument, message))
}

package crondst

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidExpression = errors.New("invalid cron expression")
	ErrIllegalArgument   = errors.New("illegal argument")
	ErrTriggerExpired    = errors.New("trigger has expired")
)

// invalidExpressionError returns an invalid expression error with a custom
// error message, which unwraps to ErrInvalidExpression.
func invalidExpressionError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidExpression, message)
}

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

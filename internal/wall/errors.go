package wall

import (
	"errors"
	"fmt"
	"math"
)

// ErrInputDomain is matched by every *DomainError through errors.Is
var ErrInputDomain = errors.New("input outside calculation domain")

// DomainError reports an input value that makes a derived quantity undefined
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrInputDomain
}

func requirePositive(field string, v float64) error {
	if err := RequireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &DomainError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if err := RequireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return &DomainError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// RequireFinite rejects NaN and ±Inf with a *DomainError naming field
func RequireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

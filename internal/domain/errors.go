package domain

import "errors"

// Sentinel errors for weight validation and the persistence codec.
// Every failure is surfaced to the caller; nothing at this layer retries or corrects input.
var (
	ErrInvalidPrecision  = errors.New("weight value cannot have more than two decimal places")
	ErrNegativeValue     = errors.New("weight cannot be a negative value")
	ErrZeroValue         = errors.New("weight cannot be zero")
	ErrValueOutOfRange   = errors.New("weight value is too large")
	ErrUnknownUnit       = errors.New("unknown weight unit")
	ErrInconsistentUnits = errors.New("net and tare weights must use the same unit")
	ErrMalformedRecord   = errors.New("malformed weight record")
	ErrGrossMismatch     = errors.New("stored gross weight does not match net + tare")
)

var (
	ErrUnknownFruitType = errors.New("unknown fruit type")
	ErrOrderNotFound    = errors.New("order not found")
	ErrFruitIndex       = errors.New("fruit index out of range")
)

// IsValidation reports whether err was caused by rejected caller input
// rather than an infrastructure failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidPrecision,
		ErrNegativeValue,
		ErrZeroValue,
		ErrValueOutOfRange,
		ErrUnknownUnit,
		ErrInconsistentUnits,
		ErrMalformedRecord,
		ErrUnknownFruitType,
		ErrFruitIndex,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

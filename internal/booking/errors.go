package booking

import "errors"

var (
	ErrMissingField     = errors.New("missing field")
	ErrMalformedNumber  = errors.New("malformed number")
	ErrMalformedDate    = errors.New("malformed date")
	ErrMalformedTime    = errors.New("malformed time")
	ErrDateInPast       = errors.New("date in the past")
	ErrTimeNotAllowed   = errors.New("time not allowed")
	ErrDateOrderInvalid = errors.New("check-in date after check-out date")
	ErrTimeOrderInvalid = errors.New("check-in time after check-out time")
)

const (
	FieldNumberOfGuests = "numberOfGuests"
	FieldCheckInDate    = "checkInDate"
	FieldCheckOutDate   = "checkOutDate"
	FieldCheckInTime    = "checkInTime"
	FieldCheckOutTime   = "checkOutTime"
)

// ValidationError is the first rule a booking request broke.
// Message is shown to the guest as is.
type ValidationError struct {
	Field   string
	Reason  error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func reject(field string, reason error, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

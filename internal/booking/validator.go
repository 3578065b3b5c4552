package booking

import (
	"strconv"
	"time"

	"hotelBooker/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

const (
	MsgGuestsRequired = "Number of guests is required."
	MsgGuestsPositive = "Number of guests must be a positive number."

	MsgCheckInDateRequired  = "Check-in date is required."
	MsgCheckOutDateRequired = "Check-out date is required."
	MsgDateFormat           = "Invalid date format. Please enter date in dd/mm/yyyy format."
	MsgCheckInDatePast      = "Check-in date must be after the current date."
	MsgCheckOutDatePast     = "Check-out date must be after the current date."

	MsgCheckInTimeRequired  = "Check-in time is required."
	MsgCheckOutTimeRequired = "Check-out time is required."
	MsgTimeFormat           = "Invalid time format. Please enter time in HH:mm format."
	MsgCheckInTimeSlot      = "Check-in time must be 13:00 or 19:00."
	MsgCheckOutTimeSlot     = "Check-out time must be 12:00 or 18:00."

	MsgDateOrder = "Check-in date must be before check-out date."
	MsgTimeOrder = "Check-in time must be before check-out time."
)

// validator.Validate caches parsed tags and is safe for concurrent use.
var validate = validator.New()

type dateRule struct {
	field    string
	required string
	inPast   string
}

type slotRule struct {
	field      string
	required   string
	notAllowed string
	slots      string
}

var (
	checkInDateRule  = dateRule{FieldCheckInDate, MsgCheckInDateRequired, MsgCheckInDatePast}
	checkOutDateRule = dateRule{FieldCheckOutDate, MsgCheckOutDateRequired, MsgCheckOutDatePast}

	checkInSlotRule  = slotRule{FieldCheckInTime, MsgCheckInTimeRequired, MsgCheckInTimeSlot, "13:00 19:00"}
	checkOutSlotRule = slotRule{FieldCheckOutTime, MsgCheckOutTimeRequired, MsgCheckOutTimeSlot, "12:00 18:00"}
)

// Validator is the stateless form of Validate, for callers that take it as a dependency.
type Validator struct{}

func (Validator) Validate(req models.BookingRequest, today time.Time) Outcome {
	return Validate(req, today)
}

// Validate checks req field by field and stops at the first broken rule.
// The order is guests, check-in date, check-out date, check-in time,
// check-out time, then date and time ordering. Only the calendar date of
// today is used.
func Validate(req models.BookingRequest, today time.Time) Outcome {
	today = Today(today)

	guests, verr := guestCount(req.NumberOfGuests)
	if verr != nil {
		return rejected(verr)
	}

	checkInDate, verr := stayDate(req.CheckInDate, today, checkInDateRule)
	if verr != nil {
		return rejected(verr)
	}

	checkOutDate, verr := stayDate(req.CheckOutDate, today, checkOutDateRule)
	if verr != nil {
		return rejected(verr)
	}

	checkInTime, verr := slotTime(req.CheckInTime, checkInSlotRule)
	if verr != nil {
		return rejected(verr)
	}

	checkOutTime, verr := slotTime(req.CheckOutTime, checkOutSlotRule)
	if verr != nil {
		return rejected(verr)
	}

	if checkInDate.After(checkOutDate) {
		return rejected(reject(FieldCheckInDate, ErrDateOrderInvalid, MsgDateOrder))
	}

	// Same date with equal times is let through.
	if checkInDate.Equal(checkOutDate) && checkInTime.After(checkOutTime) {
		return rejected(reject(FieldCheckInTime, ErrTimeOrderInvalid, MsgTimeOrder))
	}

	return accepted(models.ValidatedBooking{
		NumberOfGuests: guests,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
	})
}

// Today truncates now to midnight UTC of its calendar date in now's own location.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func guestCount(value string) (int, *ValidationError) {
	if !present(value) {
		return 0, reject(FieldNumberOfGuests, ErrMissingField, MsgGuestsRequired)
	}

	n, err := strconv.Atoi(value)
	if err != nil || validate.Var(n, "gt=0") != nil {
		return 0, reject(FieldNumberOfGuests, ErrMalformedNumber, MsgGuestsPositive)
	}

	return n, nil
}

func stayDate(value string, today time.Time, rule dateRule) (time.Time, *ValidationError) {
	if !present(value) {
		return time.Time{}, reject(rule.field, ErrMissingField, rule.required)
	}

	d, ok := parseDate(value)
	if !ok {
		return time.Time{}, reject(rule.field, ErrMalformedDate, MsgDateFormat)
	}

	if d.Before(today) {
		return time.Time{}, reject(rule.field, ErrDateInPast, rule.inPast)
	}

	return d, nil
}

func slotTime(value string, rule slotRule) (time.Time, *ValidationError) {
	if !present(value) {
		return time.Time{}, reject(rule.field, ErrMissingField, rule.required)
	}

	t, ok := parseTime(value)
	if !ok {
		return time.Time{}, reject(rule.field, ErrMalformedTime, MsgTimeFormat)
	}

	if validate.Var(t.Format(TimeLayout), "oneof="+rule.slots) != nil {
		return time.Time{}, reject(rule.field, ErrTimeNotAllowed, rule.notAllowed)
	}

	return t, nil
}

func present(value string) bool {
	return validate.Var(value, "required") == nil
}

// parseDate reads dd/mm/yyyy. A day of 29 to 31 that the month does not
// have resolves to the month's last day, so 31/02/2025 is 28/02/2025.
// Days outside 1 to 31 are malformed.
func parseDate(value string) (time.Time, bool) {
	if len(value) != len(DateLayout) || value[2] != '/' {
		return time.Time{}, false
	}

	month, ok := parseStrict("01/2006", value[3:])
	if !ok || month.Year() < 1 {
		return time.Time{}, false
	}

	day, ok := twoDigits(value[:2])
	if !ok || day < 1 || day > 31 {
		return time.Time{}, false
	}

	if last := month.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}

	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC), true
}

// parseTime reads HH:mm. 24:00 is midnight.
func parseTime(value string) (time.Time, bool) {
	if value == "24:00" {
		value = "00:00"
	}
	return parseStrict(TimeLayout, value)
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// parseStrict rejects input that time.Parse tolerates but that does not
// print back identically, such as a single-digit hour.
func parseStrict(layout, value string) (time.Time, bool) {
	t, err := time.Parse(layout, value)
	if err != nil || t.Format(layout) != value {
		return time.Time{}, false
	}
	return t, true
}

package booking

import "hotelBooker/internal/models"

const MsgBooked = "Room is booked successfully. We will contact you soon to confirm the room number."

// Outcome is the result of one validation pass. Exactly one of Booking and Err is set.
type Outcome struct {
	Message string
	Booking *models.ValidatedBooking
	Err     error
}

func (o Outcome) Accepted() bool {
	return o.Booking != nil
}

func accepted(b models.ValidatedBooking) Outcome {
	return Outcome{Message: MsgBooked, Booking: &b}
}

func rejected(err *ValidationError) Outcome {
	return Outcome{Message: err.Message, Err: err}
}

package models

// BookingRequest is a room booking request as submitted by the guest.
// Every field is free text; an empty string means the field was not sent.
type BookingRequest struct {
	NumberOfGuests string `json:"numberOfGuests"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	CheckInTime    string `json:"checkInTime"`
	CheckOutTime   string `json:"checkOutTime"`
}

// ValidatedBooking echoes a request that passed validation.
// Dates and times are kept exactly as submitted.
type ValidatedBooking struct {
	NumberOfGuests int    `json:"numberOfGuests"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	CheckInTime    string `json:"checkInTime"`
	CheckOutTime   string `json:"checkOutTime"`
}

package bookRoom

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

var errNotScalar = errors.New("expected a string, number or boolean")

// Scalar is a request field that takes the literal text of any JSON scalar,
// so numberOfGuests may arrive as 2 or "2". null leaves it empty.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
	case data[0] == '{' || data[0] == '[':
		return errNotScalar
	default:
		*s = Scalar(data)
	}

	return nil
}

type Request struct {
	NumberOfGuests Scalar `json:"numberOfGuests"`
	CheckInDate    Scalar `json:"checkInDate"`
	CheckOutDate   Scalar `json:"checkOutDate"`
	CheckInTime    Scalar `json:"checkInTime"`
	CheckOutTime   Scalar `json:"checkOutTime"`
}

func (r Request) toModel() models.BookingRequest {
	return models.BookingRequest{
		NumberOfGuests: string(r.NumberOfGuests),
		CheckInDate:    string(r.CheckInDate),
		CheckOutDate:   string(r.CheckOutDate),
		CheckInTime:    string(r.CheckInTime),
		CheckOutTime:   string(r.CheckOutTime),
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingValidator
type BookingValidator interface {
	Validate(req models.BookingRequest, today time.Time) booking.Outcome
}

// New answers 200 with the validated booking or 400 with the first validation message.
// now supplies the wall clock whose calendar date is today.
func New(log *slog.Logger, validator BookingValidator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotel.bookRoom.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		out := validator.Validate(req.toModel(), now())
		if !out.Accepted() {
			log.Info("booking rejected", slog.String("reason", out.Message))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(out.Message))
			return
		}

		log.Info("room booked", slog.Int("guests", out.Booking.NumberOfGuests))

		render.JSON(w, r, response.OK(out.Message, out.Booking))
	}
}

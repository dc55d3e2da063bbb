package booking

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"jetset/internal/flight"
	"jetset/pkg/idgen"
	"jetset/pkg/logger"
)

const statusConfirmed = "confirmed"

type Service struct {
	store  *Store
	ids    idgen.Generator
	logger logger.Client
	now    func() time.Time
}

func NewService(store *Store, ids idgen.Generator, log logger.Client) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		logger: log,
		now:    time.Now,
	}
}

// CreateBooking validates the request, assigns the booking reference, and
// stores the record. The payment reference from the widget callback is kept
// opaque; no verification against the payment provider happens here.
func (s *Service) CreateBooking(req CreateRequest) (*Booking, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	booking := Booking{
		Reference:        s.ids.BookingReference(),
		Flight:           req.Flight,
		Passenger:        req.Passenger,
		PaymentReference: req.PaymentReference,
		Status:           statusConfirmed,
		CreatedAt:        s.now().UTC(),
	}

	s.store.Put(booking)

	s.logger.Info("booking created",
		logger.Field{Key: "reference", Value: booking.Reference},
		logger.Field{Key: "flight_id", Value: booking.Flight.ID},
	)

	return &booking, nil
}

func (s *Service) GetBooking(reference string) (*Booking, error) {
	booking, ok := s.store.Get(reference)
	if !ok {
		return nil, flight.NewAppError(http.StatusNotFound, flight.ErrorCodeNotFound,
			fmt.Sprintf("no booking with reference %s", reference))
	}
	return &booking, nil
}

// PaymentOrderFor builds the widget handoff config for a selected flight.
// Amount is the display price converted to minor units.
func (s *Service) PaymentOrderFor(req PaymentOrderRequest) (*PaymentOrder, error) {
	f := req.Flight
	if f.Price <= 0 {
		return nil, flight.NewAppError(http.StatusBadRequest, flight.ErrorCodeValidation, "flight price must be positive")
	}

	currency := f.Currency
	if currency == "" {
		currency = "INR"
	}

	return &PaymentOrder{
		OrderID:     "order_" + uuid.NewString(),
		Amount:      f.Price * 100,
		Currency:    currency,
		Description: fmt.Sprintf("%s %s to %s", f.FlightNumber, f.Origin, f.Destination),
	}, nil
}

func validateCreate(req CreateRequest) error {
	var missing []string

	if req.Flight.ID == "" {
		missing = append(missing, "flight.id")
	}
	if req.Passenger.FirstName == "" {
		missing = append(missing, "passenger.first_name")
	}
	if req.Passenger.LastName == "" {
		missing = append(missing, "passenger.last_name")
	}
	if req.Passenger.Email == "" {
		missing = append(missing, "passenger.email")
	}

	if len(missing) > 0 {
		return flight.NewAppError(http.StatusBadRequest, flight.ErrorCodeValidation,
			"missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

package booking

import (
	"time"

	"jetset/internal/flight"
)

type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Booking is a confirmed reservation. Reference is assigned exactly once at
// creation and never regenerated; the confirmation view reads the same value
// the creation response returned.
type Booking struct {
	Reference        string        `json:"reference"`
	Flight           flight.Flight `json:"flight"`
	Passenger        Passenger     `json:"passenger"`
	PaymentReference string        `json:"payment_reference"`
	Status           string        `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

type CreateRequest struct {
	Flight           flight.Flight `json:"flight"`
	Passenger        Passenger     `json:"passenger"`
	PaymentReference string        `json:"payment_reference"`
}

// PaymentOrder is the handoff config for the external payment widget. Amount
// is in minor units of the currency.
type PaymentOrder struct {
	OrderID     string `json:"order_id"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type PaymentOrderRequest struct {
	Flight flight.Flight `json:"flight"`
}

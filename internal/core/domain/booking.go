package domain

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

// BookingID is the composite identity of a booking: the room plus its
// check-in date.
type BookingID struct {
	StartDate string `json:"startDate"`
	RoomNr    string `json:"roomNr"`
}

// Booking is a confirmed reservation as returned by the upstream API,
// including a snapshot of the booked room.
type Booking struct {
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	RoomNr      string  `json:"roomNr"`
	Price       float64 `json:"price"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	Room        Room    `json:"room"`
}

package handler

// createBookingRequest identifies the stay being booked. Price is the
// room's base price snapshot taken when the guest picked the room.
type createBookingRequest struct {
	RoomNr    string  `json:"roomNr"    validate:"required"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate"   validate:"required"`
	Price     float64 `json:"price"     validate:"required,gt=0"`
}

// checkoutResponse carries the external payment URL the browser must be
// redirected to. The booking is only final once payment completes there.
type checkoutResponse struct {
	CheckoutLink string `json:"checkoutLink"`
}

// confirmationResponse is what the post-payment success page shows.
type confirmationResponse struct {
	RoomNr      string `json:"roomNr"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	AmountTotal int64  `json:"amountTotal"`
}

package handler

import "github.com/grandhorizon/booking-gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// roomRequest is the admin create/update payload. Field names mirror the
// upstream API so records round-trip unchanged.
type roomRequest struct {
	RoomNr             string  `json:"roomNr"             validate:"required"`
	Floor              int     `json:"floor"`
	MaxOccupancy       int     `json:"maxOccupancy"       validate:"required,gt=0"`
	RoomType           string  `json:"roomType"           validate:"required"`
	HasSeaView         bool    `json:"hasSeaView"`
	HasBalcony         bool    `json:"hasBalcony"`
	HasWifi            bool    `json:"hasWifi"`
	HasAirConditioning bool    `json:"hasAirConditioning"`
	PetFriendly        bool    `json:"petFriendly"`
	Amenities          string  `json:"amenities"`
	Rating             float64 `json:"rating"             validate:"gte=0,lte=5"`
	BasePrice          float64 `json:"basePrice"          validate:"required,gt=0"`
	PreferredFor       string  `json:"preferredFor"`
	Available          bool    `json:"available"`
}

func (r roomRequest) toDomain() domain.Room {
	return domain.Room{
		RoomNr:             r.RoomNr,
		Floor:              r.Floor,
		MaxOccupancy:       r.MaxOccupancy,
		RoomType:           r.RoomType,
		HasSeaView:         r.HasSeaView,
		HasBalcony:         r.HasBalcony,
		HasWifi:            r.HasWifi,
		HasAirConditioning: r.HasAirConditioning,
		PetFriendly:        r.PetFriendly,
		Amenities:          r.Amenities,
		Rating:             r.Rating,
		BasePrice:          r.BasePrice,
		PreferredFor:       r.PreferredFor,
		Available:          r.Available,
	}
}

// recommendRequest carries the AI search form: the availability fields
// plus free-text preferences.
type recommendRequest struct {
	StartDate    string `json:"startDate"    validate:"required"`
	EndDate      string `json:"endDate"      validate:"required"`
	MinOccupancy int    `json:"minOccupancy" validate:"omitempty,gt=0"`
	Preferences  string `json:"preferences"  validate:"required"`
}

package domain

import "errors"

var ErrRoomNotFound = errors.New("room not found")

// Room is a bookable hotel room. Records are owned by the upstream hotel
// API; the gateway only reads and writes whole records through it.
type Room struct {
	RoomNr             string  `json:"roomNr"`
	Floor              int     `json:"floor"`
	MaxOccupancy       int     `json:"maxOccupancy"`
	RoomType           string  `json:"roomType"`
	HasSeaView         bool    `json:"hasSeaView"`
	HasBalcony         bool    `json:"hasBalcony"`
	HasWifi            bool    `json:"hasWifi"`
	HasAirConditioning bool    `json:"hasAirConditioning"`
	PetFriendly        bool    `json:"petFriendly"`
	Amenities          string  `json:"amenities,omitempty"`
	Rating             float64 `json:"rating"`
	BasePrice          float64 `json:"basePrice"`
	PreferredFor       string  `json:"preferredFor,omitempty"`
	Available          bool    `json:"available"`
}

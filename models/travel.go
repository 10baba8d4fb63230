package models

import "strconv"

// CurrencyUnknown is used whenever a provider response omits the currency.
const CurrencyUnknown = "N/A"

// HotelSuggestion is a normalized hotel offer as produced by one search
// pipeline run. Immutable once built.
type HotelSuggestion struct {
	Destination  string   `json:"destination" bson:"destination"`
	Name         string   `json:"name" bson:"name"`
	Summary      string   `json:"summary,omitempty" bson:"summary,omitempty"`
	Price        float64  `json:"price" bson:"price"`
	Currency     string   `json:"currency" bson:"currency"`
	Rating       float64  `json:"rating" bson:"rating"`
	HotelID      int64    `json:"hotelId" bson:"hotelId"`
	PhotoURLs    []string `json:"photoUrls,omitempty" bson:"photoUrls,omitempty"`
	RoomPhotoURL string   `json:"roomPhotoUrl,omitempty" bson:"roomPhotoUrl,omitempty"`
}

// BookingURL builds the fallback detail link from the provider identifier.
func (h HotelSuggestion) BookingURL() string {
	if h.HotelID == 0 {
		return ""
	}
	return "https://www.booking.com/hotel/" + strconv.FormatInt(h.HotelID, 10)
}

// FlightOption is a normalized flight offer summary.
type FlightOption struct {
	Airline       string  `json:"airline"`
	AirlineCode   string  `json:"airlineCode,omitempty"`
	FlightNumber  string  `json:"flightNumber,omitempty"`
	FromAirport   string  `json:"fromAirport"`
	ToAirport     string  `json:"toAirport"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`
	Stops         int     `json:"stops"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Token         string  `json:"token,omitempty"`
}

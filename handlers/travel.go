// File: handlers/travel.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tripwise/services/travel"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

// TravelHandler exposes direct hotel and flight lookups, independent of any
// conversation.
type TravelHandler struct {
	Client *travel.Client
}

func NewTravelHandler(client *travel.Client) *TravelHandler {
	return &TravelHandler{Client: client}
}

// HotelSearchHandler runs the hotel pipeline for explicit query parameters.
func (h *TravelHandler) HotelSearchHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter", "city is required")
		return
	}

	q := travel.HotelQuery{
		CityQuery:     city,
		ArrivalDate:   c.Query("checkin"),
		DepartureDate: c.Query("checkout"),
		Adults:        intQuery(c, "adults"),
		RoomQty:       intQuery(c, "rooms"),
		PriceMax:      intQuery(c, "price_max"),
		CurrencyCode:  c.Query("currency"),
	}

	suggestion, err := h.Client.SearchHotel(c.Request.Context(), q)
	if err != nil {
		h.writeSearchError(c, err, "No hotel offers found for "+city)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// FlightSearchHandler runs the flight pipeline for explicit query parameters.
func (h *TravelHandler) FlightSearchHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	date := c.Query("date")
	if from == "" || to == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter", "from, to and date are required")
		return
	}

	q := travel.FlightQuery{
		FromQuery:    from,
		ToQuery:      to,
		DepartDate:   date,
		Stops:        c.Query("stops"),
		Adults:       intQuery(c, "adults"),
		CabinClass:   c.Query("cabin"),
		Sort:         c.Query("sort"),
		CurrencyCode: c.Query("currency"),
	}

	options, err := h.Client.SearchFlights(c.Request.Context(), q)
	if err != nil {
		h.writeSearchError(c, err, "No flights found from "+from+" to "+to)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": options})
}

func (h *TravelHandler) writeSearchError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, travel.ErrNoResults):
		// Expected negative outcome, not a failure.
		utils.JSONError(c, http.StatusNotFound, notFoundMsg, "")
	case errors.Is(err, travel.ErrMissingCredentials):
		utils.JSONError(c, http.StatusInternalServerError, "Travel search is not configured", "RAPIDAPI_KEY is missing.")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Travel search failed", err.Error())
	}
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// File: services/travel/hotels.go
package travel

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"tripwise/models"

	"go.uber.org/zap"
)

// Display parameters sent with every hotel call.
const (
	hotelUnits        = "metric"
	hotelTempUnit     = "c"
	hotelLanguageCode = "en-us"
	hotelLocation     = "NL"
)

// SearchHotel runs the four-step hotel pipeline: resolve the city query to a
// destination id, fetch the filter aggregate (diagnostics only), search for
// offers and take the first, then fetch details for a room photo. Any step
// that cannot produce an id or an offer ends the pipeline with ErrNoResults;
// transport errors are logged and degrade to the same outcome.
func (c *Client) SearchHotel(ctx context.Context, q HotelQuery) (*models.HotelSuggestion, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	q = q.withDefaults()

	dest, err := c.resolveDestination(ctx, q.CityQuery)
	if err != nil {
		return nil, err
	}

	// Aggregate counts are diagnostics only; a failure here never blocks.
	c.fetchFilterCount(ctx, q, dest)

	suggestion, err := c.searchHotels(ctx, q, dest)
	if err != nil {
		return nil, err
	}

	// Best effort: a secondary room photo from the details endpoint.
	if photo := c.fetchRoomPhoto(ctx, q, suggestion.HotelID); photo != "" {
		suggestion.RoomPhotoURL = photo
	}

	return suggestion, nil
}

// resolveDestination converts a free-text place query into the provider's
// destination id, taking the first match. Resolutions are memoized in Redis
// keyed by the lowercased query.
func (c *Client) resolveDestination(ctx context.Context, cityQuery string) (resolvedDestination, error) {
	if dest, ok := c.cachedDestination(ctx, cityQuery); ok {
		return dest, nil
	}

	params := url.Values{}
	params.Set("query", cityQuery)

	var resp destinationResponse
	if err := c.call(ctx, "/api/v1/hotels/searchDestination", params, &resp); err != nil {
		c.logger().Warn("Destination search failed", zap.String("query", cityQuery), zap.Error(err))
		return resolvedDestination{}, ErrNoResults
	}
	if len(resp.Data) == 0 {
		c.logger().Info("No destination match", zap.String("query", cityQuery))
		return resolvedDestination{}, ErrNoResults
	}

	first := resp.Data[0]
	dest := resolvedDestination{
		DestID:     first.DestID,
		Label:      first.Label,
		SearchType: strings.ToUpper(first.SearchType),
	}
	c.storeDestination(ctx, cityQuery, dest)
	return dest, nil
}

// fetchFilterCount retrieves the aggregate result count for the resolved
// destination. Used only for diagnostics.
func (c *Client) fetchFilterCount(ctx context.Context, q HotelQuery, dest resolvedDestination) {
	params := url.Values{}
	params.Set("dest_id", dest.DestID)
	params.Set("search_type", dest.SearchType)
	params.Set("arrival_date", q.ArrivalDate)
	params.Set("departure_date", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children_age", q.ChildrenAges)
	params.Set("room_qty", strconv.Itoa(q.RoomQty))

	var resp filterResponse
	if err := c.call(ctx, "/api/v1/hotels/getFilter", params, &resp); err != nil {
		c.logger().Debug("Filter lookup failed", zap.String("destId", dest.DestID), zap.Error(err))
		return
	}
	c.logger().Info("Hotel availability",
		zap.String("destination", dest.Label),
		zap.Int("totalResults", resp.Data.Pagination.NbResultsTotal))
}

func (c *Client) searchHotels(ctx context.Context, q HotelQuery, dest resolvedDestination) (*models.HotelSuggestion, error) {
	params := url.Values{}
	params.Set("dest_id", dest.DestID)
	params.Set("search_type", dest.SearchType)
	params.Set("arrival_date", q.ArrivalDate)
	params.Set("departure_date", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children_age", q.ChildrenAges)
	params.Set("room_qty", strconv.Itoa(q.RoomQty))
	params.Set("page_number", "1")
	params.Set("price_min", strconv.Itoa(q.PriceMin))
	params.Set("price_max", strconv.Itoa(q.PriceMax))
	params.Set("units", hotelUnits)
	params.Set("temperature_unit", hotelTempUnit)
	params.Set("languagecode", hotelLanguageCode)
	params.Set("currency_code", q.CurrencyCode)
	params.Set("location", hotelLocation)

	var resp hotelSearchResponse
	if err := c.call(ctx, "/api/v1/hotels/searchHotels", params, &resp); err != nil {
		c.logger().Warn("Hotel search failed", zap.String("destId", dest.DestID), zap.Error(err))
		return nil, ErrNoResults
	}
	if len(resp.Data.Hotels) == 0 {
		c.logger().Info("No hotel offers", zap.String("destination", dest.Label))
		return nil, ErrNoResults
	}

	first := resp.Data.Hotels[0]
	currency := first.Property.PriceBreakdown.GrossPrice.Currency
	if currency == "" {
		currency = models.CurrencyUnknown
	}
	return &models.HotelSuggestion{
		Destination: dest.Label,
		Name:        first.Property.Name,
		Summary:     first.AccessibilityLabel,
		Price:       first.Property.PriceBreakdown.GrossPrice.Value,
		Currency:    currency,
		Rating:      first.Property.ReviewScore,
		HotelID:     first.HotelID,
		PhotoURLs:   first.Property.PhotoURLs,
	}, nil
}

// fetchRoomPhoto pulls the first high-res room photo from the details
// endpoint. Any failure or missing field leaves the photo at its default.
func (c *Client) fetchRoomPhoto(ctx context.Context, q HotelQuery, hotelID int64) string {
	params := url.Values{}
	params.Set("hotel_id", strconv.FormatInt(hotelID, 10))
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children_age", q.ChildrenAges)
	params.Set("room_qty", strconv.Itoa(q.RoomQty))
	params.Set("units", hotelUnits)
	params.Set("arrival_date", q.ArrivalDate)
	params.Set("departure_date", q.DepartureDate)
	params.Set("temperature_unit", hotelTempUnit)
	params.Set("languagecode", hotelLanguageCode)
	params.Set("currency_code", q.CurrencyCode)

	var resp hotelDetailsResponse
	if err := c.call(ctx, "/api/v1/hotels/getHotelDetails", params, &resp); err != nil {
		c.logger().Debug("Hotel details lookup failed", zap.Int64("hotelId", hotelID), zap.Error(err))
		return ""
	}
	for _, room := range resp.Data.Rooms {
		for _, photo := range room.Photos {
			if photo.URLMax1280 != "" {
				return photo.URLMax1280
			}
		}
	}
	return ""
}

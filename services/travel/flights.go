// File: services/travel/flights.go
package travel

import (
	"context"
	"net/url"
	"strconv"

	"tripwise/models"

	"go.uber.org/zap"
)

// SearchFlights resolves both endpoints to airport ids and fetches offer
// summaries. Like the hotel pipeline, every negative outcome is ErrNoResults.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightOption, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	q = q.withDefaults()

	from, err := c.resolveAirport(ctx, q.FromQuery)
	if err != nil {
		return nil, err
	}
	to, err := c.resolveAirport(ctx, q.ToQuery)
	if err != nil {
		return nil, err
	}

	return c.searchFlights(ctx, q, from, to)
}

// resolveAirport finds the first result tagged AIRPORT for the query.
// Results of other types (cities, regions) are skipped.
func (c *Client) resolveAirport(ctx context.Context, query string) (resolvedAirport, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp destinationResponse
	if err := c.call(ctx, "/api/v1/flights/searchDestination", params, &resp); err != nil {
		c.logger().Warn("Airport search failed", zap.String("query", query), zap.Error(err))
		return resolvedAirport{}, ErrNoResults
	}
	for _, item := range resp.Data {
		if item.Type == "AIRPORT" {
			return resolvedAirport{ID: item.ID, Name: item.Name}, nil
		}
	}
	c.logger().Info("No airport match", zap.String("query", query))
	return resolvedAirport{}, ErrNoResults
}

func (c *Client) searchFlights(ctx context.Context, q FlightQuery, from, to resolvedAirport) ([]models.FlightOption, error) {
	params := url.Values{}
	params.Set("fromId", from.ID)
	params.Set("toId", to.ID)
	params.Set("stops", q.Stops)
	params.Set("pageNo", strconv.Itoa(q.PageNo))
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children", q.ChildrenAges)
	params.Set("sort", q.Sort)
	params.Set("cabinClass", q.CabinClass)
	params.Set("currency_code", q.CurrencyCode)
	params.Set("departDate", q.DepartDate)

	var resp flightSearchResponse
	if err := c.call(ctx, "/api/v1/flights/searchFlights", params, &resp); err != nil {
		c.logger().Warn("Flight search failed",
			zap.String("from", from.Name), zap.String("to", to.Name), zap.Error(err))
		return nil, ErrNoResults
	}
	if len(resp.Data.FlightOffers) == 0 {
		c.logger().Info("No flight offers",
			zap.String("from", from.Name), zap.String("to", to.Name))
		return nil, ErrNoResults
	}
	c.logger().Info("Flight offers found",
		zap.Int("totalCount", resp.Data.Aggregation.TotalCount))

	// Carrier names live in the aggregation section, keyed by IATA code.
	carriers := make(map[string]string, len(resp.Data.Aggregation.Airlines))
	for _, a := range resp.Data.Aggregation.Airlines {
		carriers[a.IataCode] = a.Name
	}

	options := make([]models.FlightOption, 0, len(resp.Data.FlightOffers))
	for _, offer := range resp.Data.FlightOffers {
		if len(offer.Segments) == 0 || len(offer.Segments[0].Legs) == 0 {
			continue
		}
		legs := offer.Segments[0].Legs
		firstLeg := legs[0]

		currency := offer.PriceBreakdown.TotalRounded.CurrencyCode
		if currency == "" {
			currency = models.CurrencyUnknown
		}

		code := firstLeg.FlightInfo.CarrierInfo.MarketingCarrier
		opt := models.FlightOption{
			Airline:       carriers[code],
			AirlineCode:   code,
			FlightNumber:  strconv.FormatInt(firstLeg.FlightInfo.FlightNumber, 10),
			FromAirport:   firstLeg.DepartureAirport.Code,
			ToAirport:     firstLeg.ArrivalAirport.Code,
			DepartureTime: firstLeg.DepartureTime,
			ArrivalTime:   firstLeg.ArrivalTime,
			Stops:         len(legs) - 1,
			Price:         offer.PriceBreakdown.TotalRounded.Value(),
			Currency:      currency,
			Token:         offer.Token,
		}
		if opt.Airline == "" {
			opt.Airline = "Unknown Airline"
		}
		options = append(options, opt)
	}
	if len(options) == 0 {
		return nil, ErrNoResults
	}
	return options, nil
}

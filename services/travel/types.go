// File: services/travel/types.go
package travel

import "math"

// HotelQuery carries every parameter of one hotel search. It is immutable:
// each pipeline step receives it by value alongside the previous step's
// output, so a resolved destination id never leaks into an unrelated search.
type HotelQuery struct {
	CityQuery     string
	ArrivalDate   string // YYYY-MM-DD
	DepartureDate string // YYYY-MM-DD
	Adults        int
	ChildrenAges  string // comma-separated ages, e.g. "0,17"
	RoomQty       int
	PriceMin      int
	PriceMax      int
	CurrencyCode  string
}

// withDefaults fills the provider's mandatory parameters. Every parameter is
// always sent, even when using defaults.
func (q HotelQuery) withDefaults() HotelQuery {
	if q.Adults == 0 {
		q.Adults = 2
	}
	if q.ChildrenAges == "" {
		q.ChildrenAges = "0,17"
	}
	if q.RoomQty == 0 {
		q.RoomQty = 1
	}
	if q.PriceMax == 0 {
		q.PriceMax = 1000
	}
	if q.CurrencyCode == "" {
		q.CurrencyCode = "EUR"
	}
	return q
}

// FlightQuery carries every parameter of one flight search.
type FlightQuery struct {
	FromQuery    string
	ToQuery      string
	DepartDate   string // YYYY-MM-DD
	Stops        string // "none", "one", "two", "all"
	PageNo       int
	Adults       int
	ChildrenAges string
	Sort         string // "BEST", "CHEAPEST", "DURATION"
	CabinClass   string // "ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"
	CurrencyCode string
}

func (q FlightQuery) withDefaults() FlightQuery {
	if q.Stops == "" {
		q.Stops = "none"
	}
	if q.PageNo == 0 {
		q.PageNo = 1
	}
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.ChildrenAges == "" {
		q.ChildrenAges = "0,17"
	}
	if q.Sort == "" {
		q.Sort = "BEST"
	}
	if q.CabinClass == "" {
		q.CabinClass = "ECONOMY"
	}
	if q.CurrencyCode == "" {
		q.CurrencyCode = "EUR"
	}
	return q
}

// resolvedDestination is the output of the hotel resolve step.
type resolvedDestination struct {
	DestID     string `json:"destId"`
	Label      string `json:"label"`
	SearchType string `json:"searchType"`
}

// resolvedAirport is the output of the flight resolve step.
type resolvedAirport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// --- raw provider payloads ---

type destinationResponse struct {
	Data []struct {
		DestID     string `json:"dest_id"`
		Label      string `json:"label"`
		SearchType string `json:"search_type"`
		ID         string `json:"id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
	} `json:"data"`
}

type filterResponse struct {
	Data struct {
		Pagination struct {
			NbResultsTotal int `json:"nbResultsTotal"`
		} `json:"pagination"`
	} `json:"data"`
}

type hotelSearchResponse struct {
	Data struct {
		Hotels []struct {
			HotelID            int64  `json:"hotel_id"`
			AccessibilityLabel string `json:"accessibilityLabel"`
			Property           struct {
				Name           string   `json:"name"`
				ReviewScore    float64  `json:"reviewScore"`
				PhotoURLs      []string `json:"photoUrls"`
				PriceBreakdown struct {
					GrossPrice struct {
						Value    float64 `json:"value"`
						Currency string  `json:"currency"`
					} `json:"grossPrice"`
				} `json:"priceBreakdown"`
			} `json:"property"`
		} `json:"hotels"`
	} `json:"data"`
}

type hotelDetailsResponse struct {
	Data struct {
		Rooms map[string]struct {
			Photos []struct {
				URLMax1280 string `json:"url_max1280"`
			} `json:"photos"`
		} `json:"rooms"`
	} `json:"data"`
}

// priceAmount is the provider's integer/fractional-nano pair.
type priceAmount struct {
	Units        int64  `json:"units"`
	Nanos        int64  `json:"nanos"`
	CurrencyCode string `json:"currencyCode"`
}

// Value reconstitutes the pair into a single decimal number, rounded to two
// decimal places.
func (p priceAmount) Value() float64 {
	return math.Round((float64(p.Units)+float64(p.Nanos)/1e9)*100) / 100
}

type flightSearchResponse struct {
	Data struct {
		FlightOffers []struct {
			Token          string `json:"token"`
			TripType       string `json:"tripType"`
			PriceBreakdown struct {
				TotalRounded priceAmount `json:"totalRounded"`
			} `json:"priceBreakdown"`
			Segments []struct {
				Legs []struct {
					DepartureAirport struct {
						Code string `json:"code"`
					} `json:"departureAirport"`
					ArrivalAirport struct {
						Code string `json:"code"`
					} `json:"arrivalAirport"`
					DepartureTime string `json:"departureTime"`
					ArrivalTime   string `json:"arrivalTime"`
					FlightInfo    struct {
						FlightNumber int64 `json:"flightNumber"`
						CarrierInfo  struct {
							MarketingCarrier string `json:"marketingCarrier"`
						} `json:"carrierInfo"`
					} `json:"flightInfo"`
				} `json:"legs"`
			} `json:"segments"`
		} `json:"flightOffers"`
		Aggregation struct {
			TotalCount int `json:"totalCount"`
			Airlines   []struct {
				IataCode string `json:"iataCode"`
				Name     string `json:"name"`
			} `json:"airlines"`
		} `json:"aggregation"`
	} `json:"data"`
}

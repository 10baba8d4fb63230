package travel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider simulates the four RapidAPI hotel endpoints. Handlers can be
// swapped per test; unset paths return 404.
type fakeProvider struct {
	mux    *http.ServeMux
	server *httptest.Server
	// query params seen per path, in call order
	seen map[string][]url.Values
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{mux: http.NewServeMux(), seen: make(map[string][]url.Values)}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.seen[r.URL.Path] = append(p.seen[r.URL.Path], r.URL.Query())
		p.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) respond(path, body string) {
	p.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func (p *fakeProvider) fail(path string, status int) {
	p.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func (p *fakeProvider) client() *Client {
	return &Client{
		BaseURL:    p.server.URL,
		Host:       "test.example",
		APIKey:     "test-key",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Logger:     zap.NewNop(),
	}
}

const destinationBody = `{"data":[{"dest_id":"-2167973","label":"Lisbon, Portugal","search_type":"city"}]}`

const hotelSearchBody = `{"data":{"hotels":[
	{"hotel_id":42,"accessibilityLabel":"Hotel Avenida, 4 stars",
	 "property":{"name":"Hotel Avenida","reviewScore":8.6,
	   "photoUrls":["https://cf.example/a.jpg"],
	   "priceBreakdown":{"grossPrice":{"value":840.5,"currency":"EUR"}}}},
	{"hotel_id":99,"property":{"name":"Second Hotel"}}
]}}`

const hotelDetailsBody = `{"data":{"rooms":{
	"4200001":{"photos":[{"url_max1280":""},{"url_max1280":"https://cf.example/room.jpg"}]}
}}}`

func TestSearchHotel_FullPipeline(t *testing.T) {
	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", destinationBody)
	p.respond("/api/v1/hotels/getFilter", `{"data":{"pagination":{"nbResultsTotal":120}}}`)
	p.respond("/api/v1/hotels/searchHotels", hotelSearchBody)
	p.respond("/api/v1/hotels/getHotelDetails", hotelDetailsBody)

	suggestion, err := p.client().SearchHotel(context.Background(), HotelQuery{
		CityQuery:   "Lisbon",
		ArrivalDate: "2026-09-10", DepartureDate: "2026-09-17",
		PriceMax: 900,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hotel Avenida", suggestion.Name)
	assert.Equal(t, "Lisbon, Portugal", suggestion.Destination)
	assert.Equal(t, 840.5, suggestion.Price)
	assert.Equal(t, "EUR", suggestion.Currency)
	assert.Equal(t, 8.6, suggestion.Rating)
	assert.Equal(t, int64(42), suggestion.HotelID)
	assert.Equal(t, "https://cf.example/room.jpg", suggestion.RoomPhotoURL)

	// Defaults and fixed display parameters are always sent.
	require.Len(t, p.seen["/api/v1/hotels/searchHotels"], 1)
	q := p.seen["/api/v1/hotels/searchHotels"][0]
	assert.Equal(t, "-2167973", q.Get("dest_id"))
	assert.Equal(t, "CITY", q.Get("search_type"))
	assert.Equal(t, "2", q.Get("adults"))
	assert.Equal(t, "0,17", q.Get("children_age"))
	assert.Equal(t, "1", q.Get("room_qty"))
	assert.Equal(t, "0", q.Get("price_min"))
	assert.Equal(t, "900", q.Get("price_max"))
	assert.Equal(t, "metric", q.Get("units"))
	assert.Equal(t, "c", q.Get("temperature_unit"))
	assert.Equal(t, "en-us", q.Get("languagecode"))
	assert.Equal(t, "EUR", q.Get("currency_code"))
	assert.Equal(t, "NL", q.Get("location"))
}

func TestSearchHotel_NoDestinationMatch(t *testing.T) {
	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", `{"data":[]}`)

	_, err := p.client().SearchHotel(context.Background(), HotelQuery{CityQuery: "Atlantis"})
	assert.ErrorIs(t, err, ErrNoResults)
	// The pipeline stops before the search step.
	assert.Empty(t, p.seen["/api/v1/hotels/searchHotels"])
}

func TestSearchHotel_ProviderErrorDegradesToNoResults(t *testing.T) {
	p := newFakeProvider(t)
	p.fail("/api/v1/hotels/searchDestination", http.StatusBadGateway)

	_, err := p.client().SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchHotel_NoOffers(t *testing.T) {
	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", destinationBody)
	p.respond("/api/v1/hotels/getFilter", `{"data":{"pagination":{"nbResultsTotal":0}}}`)
	p.respond("/api/v1/hotels/searchHotels", `{"data":{"hotels":[]}}`)

	_, err := p.client().SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchHotel_FilterAndDetailsFailuresDoNotBlock(t *testing.T) {
	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", destinationBody)
	p.fail("/api/v1/hotels/getFilter", http.StatusInternalServerError)
	p.respond("/api/v1/hotels/searchHotels", hotelSearchBody)
	p.fail("/api/v1/hotels/getHotelDetails", http.StatusInternalServerError)

	suggestion, err := p.client().SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	require.NoError(t, err)
	assert.Equal(t, "Hotel Avenida", suggestion.Name)
	assert.Empty(t, suggestion.RoomPhotoURL)
}

func TestSearchHotel_MissingCurrencyFallsBack(t *testing.T) {
	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", destinationBody)
	p.respond("/api/v1/hotels/getFilter", `{"data":{}}`)
	p.respond("/api/v1/hotels/searchHotels",
		`{"data":{"hotels":[{"hotel_id":7,"property":{"name":"Bare Hotel","priceBreakdown":{"grossPrice":{"value":100}}}}]}}`)
	p.respond("/api/v1/hotels/getHotelDetails", `{"data":{}}`)

	suggestion, err := p.client().SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	require.NoError(t, err)
	assert.Equal(t, "N/A", suggestion.Currency)
}

func TestSearchHotel_MissingCredentials(t *testing.T) {
	c := &Client{BaseURL: "http://unused", HTTPClient: http.DefaultClient, Logger: zap.NewNop()}
	_, err := c.SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestSearchHotel_DestinationResolutionCached(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	p := newFakeProvider(t)
	p.respond("/api/v1/hotels/searchDestination", destinationBody)
	p.respond("/api/v1/hotels/getFilter", `{"data":{}}`)
	p.respond("/api/v1/hotels/searchHotels", hotelSearchBody)
	p.respond("/api/v1/hotels/getHotelDetails", `{"data":{}}`)

	c := p.client()
	c.Cache = cache

	_, err := c.SearchHotel(context.Background(), HotelQuery{CityQuery: "Lisbon"})
	require.NoError(t, err)
	require.Len(t, p.seen["/api/v1/hotels/searchDestination"], 1)

	// Case and whitespace variants of the query hit the same cache entry.
	_, err = c.SearchHotel(context.Background(), HotelQuery{CityQuery: "  LISBON "})
	require.NoError(t, err)
	assert.Len(t, p.seen["/api/v1/hotels/searchDestination"], 1)

	assert.True(t, mr.Exists("travel:dest:lisbon"))
}

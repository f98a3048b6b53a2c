package forecast

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"current": {
		"time": "2025-04-15T09:00",
		"temperature_2m": 3.2,
		"relative_humidity_2m": 88,
		"apparent_temperature": 0.9,
		"precipitation": 0.1,
		"weather_code": 61,
		"cloud_cover": 100,
		"pressure_msl": 1001.2,
		"wind_speed_10m": 12.4,
		"wind_gusts_10m": 25.9
	},
	"hourly": {
		"time": ["2025-04-15T00:00", "2025-04-15T01:00"],
		"temperature_2m": [2.1, 2.4],
		"precipitation_probability": [40, 55],
		"weather_code": [61, 63]
	},
	"daily": {
		"time": ["2025-04-15"],
		"temperature_2m_max": [5.0],
		"temperature_2m_min": [1.0],
		"precipitation_sum": [3.4],
		"weather_code": [63]
	}
}`

func TestClientFetch(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleBody)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), 60.45, 22.27, "Europe/Helsinki", 7, 3)
	c.baseURL = srv.URL

	p, err := c.Fetch(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, "60.45", gotQuery.Get("latitude"))
	assert.Equal(t, "22.27", gotQuery.Get("longitude"))
	assert.Equal(t, "Europe/Helsinki", gotQuery.Get("timezone"))
	assert.Equal(t, "7", gotQuery.Get("forecast_days"))
	assert.Equal(t, "3", gotQuery.Get("past_days"))
	assert.Contains(t, gotQuery.Get("current"), "wind_gusts_10m")
	assert.Contains(t, gotQuery.Get("hourly"), "precipitation_probability")
	assert.Contains(t, gotQuery.Get("daily"), "temperature_2m_max")

	assert.Equal(t, 3.2, p.Current.Temperature)
	assert.Equal(t, 61, p.Current.WeatherCode)
	assert.Len(t, p.Hourly.Time, 2)
	assert.Equal(t, 55.0, p.Hourly.PrecipProbability[1])
	assert.Equal(t, []float64{3.4}, p.Daily.PrecipSum)
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), 60.45, 22.27, "Europe/Helsinki", 7, 3)
	c.baseURL = srv.URL

	_, err := c.Fetch(context.Background(), 0)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestClientFetchUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), 60.45, 22.27, "Europe/Helsinki", 7, 3)
	c.baseURL = srv.URL

	_, err := c.Fetch(context.Background(), 0)
	assert.ErrorIs(t, err, ErrFetch)
}

type countingFetcher struct {
	calls int
	err   error
}

func (c *countingFetcher) Fetch(ctx context.Context, offset int) (Payload, error) {
	c.calls++
	return Payload{}, c.err
}

func TestRateLimitedFetcherForwards(t *testing.T) {
	inner := &countingFetcher{}
	rl := NewRateLimitedFetcher(inner, 100, 1)

	_, err := rl.Fetch(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedFetcherCanceledContext(t *testing.T) {
	inner := &countingFetcher{}
	rl := NewRateLimitedFetcher(inner, 0.001, 1)

	ctx, cancel := context.WithCancel(context.Background())
	// Drain the initial burst token, then cancel the waiting call.
	_, err := rl.Fetch(ctx, 0)
	require.NoError(t, err)
	cancel()

	_, err = rl.Fetch(ctx, 0)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, 1, inner.calls)
}

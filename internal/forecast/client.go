package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
)

// ErrFetch covers every way a forecast retrieval can fail: transport error,
// non-success status, or an undecodable body. The cause is carried in the
// wrapped message.
var ErrFetch = errors.New("weather data fetch failed")

// Fetcher abstracts the forecast store. The offset identifies the requested
// day for the caller; implementations may ignore it since the upstream
// delivers the whole window per call.
type Fetcher interface {
	Fetch(ctx context.Context, offset int) (Payload, error)
}

// Field selectors sent to Open-Meteo. The current block is the only source
// of humidity, wind, pressure, and cloud cover.
const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,cloud_cover,pressure_msl,wind_speed_10m,wind_gusts_10m"
	hourlyFields  = "temperature_2m,precipitation_probability,weather_code"
	dailyFields   = "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code"
)

// Client fetches forecasts from Open-Meteo for a single fixed point.
// One outbound call per Fetch, no caching, no retries; the circuit breaker
// sheds calls while the upstream is failing.
type Client struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker

	lat, lon     float64
	timezone     string
	forecastDays int
	pastDays     int
}

func NewClient(client *http.Client, lat, lon float64, timezone string, forecastDays, pastDays int) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:      "https://api.open-meteo.com/v1/forecast",
		client:       client,
		circuit:      cb,
		lat:          lat,
		lon:          lon,
		timezone:     timezone,
		forecastDays: forecastDays,
		pastDays:     pastDays,
	}
}

// Fetch retrieves one full forecast window.
func (c *Client) Fetch(ctx context.Context, offset int) (Payload, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(c.lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(c.lon, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("hourly", hourlyFields)
	values.Set("daily", dailyFields)
	values.Set("timezone", c.timezone)
	values.Set("forecast_days", strconv.Itoa(c.forecastDays))
	values.Set("past_days", strconv.Itoa(c.pastDays))

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var payload Payload
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr != nil {
			return nil, decErr
		}
		return payload, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return result.(Payload), nil
}

var _ Fetcher = (*Client)(nil)

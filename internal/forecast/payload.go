package forecast

// Payload is one decoded Open-Meteo forecast response: an instant block plus
// hourly and daily series carried as parallel arrays keyed by timestamp.
type Payload struct {
	Current Current `json:"current"`
	Hourly  Hourly  `json:"hourly"`
	Daily   Daily   `json:"daily"`
}

// Current holds the instant conditions block. It applies to day offset 0 only.
type Current struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	ApparentTemp  float64 `json:"apparent_temperature"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
	CloudCover    float64 `json:"cloud_cover"`
	Pressure      float64 `json:"pressure_msl"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	WindGusts     float64 `json:"wind_gusts_10m"`
}

// Hourly holds the hour-resolution series, one entry per hour across the
// whole requested window, timestamps ascending.
type Hourly struct {
	Time              []string  `json:"time"`
	Temperature       []float64 `json:"temperature_2m"`
	PrecipProbability []float64 `json:"precipitation_probability"`
	WeatherCode       []int     `json:"weather_code"`
}

// Daily holds the per-calendar-date aggregates.
type Daily struct {
	Time        []string  `json:"time"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
	PrecipSum   []float64 `json:"precipitation_sum"`
	WeatherCode []int     `json:"weather_code"`
}

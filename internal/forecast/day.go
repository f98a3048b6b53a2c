package forecast

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	hourLayout = "2006-01-02T15:04"
)

// maxDisplayRows caps how many hourly rows a rendered table shows before
// decimation kicks in.
const maxDisplayRows = 12

// Day is the normalized view of one forecast day. The optional pointer
// fields are set only at offset 0, where the instant block applies; other
// offsets carry daily aggregates and leave them nil rather than zero-filled.
type Day struct {
	Date        time.Time
	Offset      int
	Available   bool
	WeatherCode int
	Temperature float64

	ApparentTemp  *float64
	Humidity      *float64
	WindSpeed     *float64
	WindGusts     *float64
	Pressure      *float64
	CloudCover    *float64
	Precipitation *float64

	// Hours is the full-resolution hourly series for this date.
	Hours []HourRow
}

// HourRow is one hourly entry restricted to the day's date.
type HourRow struct {
	Hour              int
	Temperature       float64
	PrecipProbability float64
	WeatherCode       int
}

// ForDay projects a payload onto a single day offset relative to now.
// Offset 0 reads the instant block; any other offset reads the daily
// aggregate for the target date, averaging max and min for the display
// temperature. A daily lookup miss yields Available=false instead of fake
// zero readings.
func ForDay(p Payload, offset int, now time.Time) Day {
	target := now.AddDate(0, 0, offset)
	day := Day{
		Date:   target,
		Offset: offset,
	}

	if offset == 0 {
		day.Available = true
		day.WeatherCode = p.Current.WeatherCode
		day.Temperature = p.Current.Temperature
		day.ApparentTemp = ptr(p.Current.ApparentTemp)
		day.Humidity = ptr(p.Current.Humidity)
		day.WindSpeed = ptr(p.Current.WindSpeed)
		day.WindGusts = ptr(p.Current.WindGusts)
		day.Pressure = ptr(p.Current.Pressure)
		day.CloudCover = ptr(p.Current.CloudCover)
		day.Precipitation = ptr(p.Current.Precipitation)
	} else {
		dateStr := target.Format(dateLayout)
		for i, d := range p.Daily.Time {
			if d != dateStr {
				continue
			}
			day.Available = true
			day.WeatherCode = intAt(p.Daily.WeatherCode, i)
			day.Temperature = (floatAt(p.Daily.TempMax, i) + floatAt(p.Daily.TempMin, i)) / 2
			day.Precipitation = ptr(floatAt(p.Daily.PrecipSum, i))
			break
		}
	}

	day.Hours = hoursFor(p.Hourly, target)
	return day
}

// DisplayHours returns the rows a rendered table should show: every 2nd hour
// once the day has more than maxDisplayRows entries. The full series stays
// on the Day for callers needing it.
func (d Day) DisplayHours() []HourRow {
	if len(d.Hours) <= maxDisplayRows {
		return d.Hours
	}
	rows := make([]HourRow, 0, (len(d.Hours)+1)/2)
	for i := 0; i < len(d.Hours); i += 2 {
		rows = append(rows, d.Hours[i])
	}
	return rows
}

func hoursFor(h Hourly, target time.Time) []HourRow {
	prefix := target.Format(dateLayout)

	var rows []HourRow
	for i, ts := range h.Time {
		if !strings.HasPrefix(ts, prefix) {
			continue
		}
		t, err := time.Parse(hourLayout, ts)
		if err != nil {
			continue
		}
		rows = append(rows, HourRow{
			Hour:              t.Hour(),
			Temperature:       floatAt(h.Temperature, i),
			PrecipProbability: floatAt(h.PrecipProbability, i),
			WeatherCode:       intAt(h.WeatherCode, i),
		})
	}
	return rows
}

// The parallel arrays are not guaranteed to be equally long; a short series
// reads as zero rather than panicking.
func floatAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func intAt(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func ptr(v float64) *float64 {
	return &v
}

package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/forecast"
)

// Embed colors per temperature band, lower bound inclusive.
const (
	colorCold   = 0x9EC9FF // below 0
	colorCool   = 0x33A1FD // 0 to 10
	colorMild   = 0x66BB6A // 10 to 20
	colorWarm   = 0xFFA726 // 20 to 30
	colorHot    = 0xFF5722 // 30 and up
	colorNoData = 0x95A5A6
)

const (
	footerText  = "Tiedot: Open-Meteo API"
	noDataText  = "Ennustetietoja ei saatavilla tälle päivälle"
	tableHeader = "Sääennuste tunneittain:\nAika  | Lämpötila | Sade% | Sää\n------+-----------+-------+-----\n"
)

// Table attachment window. One day of history, the full forecast ahead.
const (
	tableMinOffset = -1
	tableMaxOffset = 6
)

var weekdays = [...]string{
	"maanantai", "tiistai", "keskiviikko", "torstai",
	"perjantai", "lauantai", "sunnuntai",
}

var months = [...]string{
	"tammikuuta", "helmikuuta", "maaliskuuta", "huhtikuuta",
	"toukokuuta", "kesäkuuta", "heinäkuuta", "elokuuta",
	"syyskuuta", "lokakuuta", "marraskuuta", "joulukuuta",
}

var titleCaser = cases.Title(language.Finnish)

// Field is one labeled report value.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Report is the rendered, locale-formatted view of one forecast day,
// shaped so a chat shell can map it straight onto a message embed.
type Report struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       int       `json:"color"`
	Fields      []Field   `json:"fields,omitempty"`
	Table       string    `json:"table,omitempty"`
	Footer      string    `json:"footer"`
	Timestamp   time.Time `json:"timestamp"`
}

// Render produces the Finnish report for one forecast day. Deterministic:
// the same day and clock reading always render the same report.
func Render(day forecast.Day, now time.Time) Report {
	rep := Report{
		Title:     title(day),
		Footer:    footerText,
		Timestamp: now.UTC(),
	}

	if day.Available {
		rep.Description = Describe(day.WeatherCode)
		rep.Color = colorForTemperature(day.Temperature)
		rep.Fields = fields(day)
	} else {
		rep.Description = noDataText
		rep.Color = colorNoData
	}

	if day.Offset >= tableMinOffset && day.Offset <= tableMaxOffset {
		rep.Table = forecastTable(day)
	}

	return rep
}

func title(day forecast.Day) string {
	weekday := titleCaser.String(weekdays[mondayIndex(day.Date.Weekday())])
	date := fmt.Sprintf("%s, %d. %s %d",
		weekday, day.Date.Day(), months[day.Date.Month()-1], day.Date.Year())

	switch {
	case day.Offset == 0:
		return fmt.Sprintf("Sää Turussa - %s (Tänään)", date)
	case day.Offset < 0:
		return fmt.Sprintf("Sää Turussa - %s (%d päivää sitten)", date, -day.Offset)
	default:
		return fmt.Sprintf("Sää Turussa - %s (%d päivää eteenpäin)", date, day.Offset)
	}
}

// mondayIndex converts time.Weekday (Sunday = 0) to the Monday-first table.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func colorForTemperature(t float64) int {
	switch {
	case t < 0:
		return colorCold
	case t < 10:
		return colorCool
	case t < 20:
		return colorMild
	case t < 30:
		return colorWarm
	default:
		return colorHot
	}
}

// fields lists temperature always and each optional reading only when the
// day actually carries it; absent readings are never rendered as zeros.
func fields(day forecast.Day) []Field {
	fs := []Field{
		{Name: "Lämpötila", Value: fmt.Sprintf("%.1f°C", day.Temperature), Inline: true},
	}

	if day.ApparentTemp != nil {
		fs = append(fs, Field{Name: "Tuntuu kuin", Value: fmt.Sprintf("%.1f°C", *day.ApparentTemp), Inline: true})
	}
	if day.Humidity != nil {
		fs = append(fs, Field{Name: "Kosteus", Value: fmt.Sprintf("%.0f%%", *day.Humidity), Inline: true})
	}
	if day.WindSpeed != nil {
		fs = append(fs, Field{Name: "Tuuli", Value: fmt.Sprintf("%.1f km/h", *day.WindSpeed), Inline: true})
	}
	if day.WindGusts != nil {
		fs = append(fs, Field{Name: "Tuulenpuuskat", Value: fmt.Sprintf("%.1f km/h", *day.WindGusts), Inline: true})
	}
	if day.Pressure != nil {
		fs = append(fs, Field{Name: "Ilmanpaine", Value: fmt.Sprintf("%.1f hPa", *day.Pressure), Inline: true})
	}
	if day.CloudCover != nil {
		fs = append(fs, Field{Name: "Pilvisyys", Value: fmt.Sprintf("%.0f%%", *day.CloudCover), Inline: true})
	}
	if day.Precipitation != nil {
		name := "Sademäärä"
		if day.Offset != 0 {
			name = "Sademäärä (päivä)"
		}
		fs = append(fs, Field{Name: name, Value: fmt.Sprintf("%.1f mm", *day.Precipitation), Inline: true})
	}

	return fs
}

func forecastTable(day forecast.Day) string {
	rows := day.DisplayHours()
	if len(rows) == 0 {
		return "```\n" + noDataText + "\n```"
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(tableHeader)
	for _, r := range rows {
		fmt.Fprintf(&b, "%02d:00 | %5.1f°C  | %3.0f%%  | %s\n",
			r.Hour, r.Temperature, r.PrecipProbability, Symbol(r.WeatherCode))
	}
	b.WriteString("```")
	return b.String()
}

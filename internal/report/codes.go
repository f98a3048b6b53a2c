package report

// WMO weather interpretation codes as delivered by Open-Meteo, described in
// Finnish. The set is closed; anything else renders as unknown.
var weatherDescriptions = map[int]string{
	0:  "Selkeää",
	1:  "Enimmäkseen selkeää",
	2:  "Osittain pilvistä",
	3:  "Pilvistä",
	45: "Sumua",
	48: "Huurresumua",
	51: "Kevyttä tihkua",
	53: "Kohtalaista tihkua",
	55: "Tiheää tihkua",
	56: "Kevyttä jäätävää tihkua",
	57: "Tiheää jäätävää tihkua",
	61: "Kevyttä sadetta",
	63: "Kohtalaista sadetta",
	65: "Rankkaa sadetta",
	66: "Kevyttä jäätävää sadetta",
	67: "Rankkaa jäätävää sadetta",
	71: "Kevyttä lumisadetta",
	73: "Kohtalaista lumisadetta",
	75: "Rankkaa lumisadetta",
	77: "Lumijyväsiä",
	80: "Kevyitä sadekuuroja",
	81: "Kohtalaisia sadekuuroja",
	82: "Voimakkaita sadekuuroja",
	85: "Kevyitä lumikuuroja",
	86: "Voimakkaita lumikuuroja",
	95: "Ukkosmyrsky",
	96: "Ukkosmyrsky ja kevyitä rakeita",
	99: "Ukkosmyrsky ja voimakkaita rakeita",
}

var weatherSymbols = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌧️",
	53: "🌧️",
	55: "🌧️",
	56: "🌧️",
	57: "🌧️",
	61: "🌧️",
	63: "🌧️",
	65: "🌧️",
	66: "🌧️",
	67: "🌧️",
	71: "❄️",
	73: "❄️",
	75: "❄️",
	77: "❄️",
	80: "🌦️",
	81: "🌦️",
	82: "🌦️",
	85: "🌨️",
	86: "🌨️",
	95: "⛈️",
	96: "⛈️",
	99: "⛈️",
}

const (
	unknownDescription = "Tuntematon sää"
	unknownSymbol      = "?"
)

// Describe returns the Finnish description for a weather code.
func Describe(code int) string {
	if d, ok := weatherDescriptions[code]; ok {
		return d
	}
	return unknownDescription
}

// Symbol returns the display symbol for a weather code.
func Symbol(code int) string {
	if s, ok := weatherSymbols[code]; ok {
		return s
	}
	return unknownSymbol
}

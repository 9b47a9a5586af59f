package domain

// WeatherSnapshot is the weather picture for a destination at trip-creation
// time, as stored on the trip. Temperature is °C, Humidity is a percentage.
// The field set mirrors what the weather provider returns; the packing
// advisor only reads Temperature, Condition, and the first forecast entry.
type WeatherSnapshot struct {
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Description string        `json:"description,omitempty"`
	Humidity    int           `json:"humidity"`
	WindSpeed   float64       `json:"wind_speed,omitempty"`
	Pressure    int           `json:"pressure,omitempty"`
	Forecast    []ForecastDay `json:"forecast,omitempty"`
}

// ForecastDay is one daily record in the snapshot's forecast sequence.
// The first entry represents the day of arrival; its Precipitation
// probability (percent) feeds the rain-gear recommendation.
type ForecastDay struct {
	Date          string  `json:"date"` // "2006-01-02"
	Temperature   float64 `json:"temperature"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description,omitempty"`
	Precipitation int     `json:"precipitation"`
	Humidity      int     `json:"humidity,omitempty"`
	WindSpeed     float64 `json:"wind_speed,omitempty"`
}

package domain

// DestinationInfo is the country/destination card attached to a trip for
// display purposes. It is sourced from the geography provider, or from the
// static fallback dataset when the provider is unreachable.
type DestinationInfo struct {
	Name               string           `json:"name"`
	OfficialName       string           `json:"official_name,omitempty"`
	Capital            string           `json:"capital,omitempty"`
	Region             string           `json:"region,omitempty"`
	Subregion          string           `json:"subregion,omitempty"`
	Population         int64            `json:"population,omitempty"`
	Currencies         []string         `json:"currencies,omitempty"`
	Languages          []string         `json:"languages,omitempty"`
	Flag               string           `json:"flag,omitempty"`
	CountryCode        string           `json:"country_code,omitempty"` // ISO 3166-1 alpha-2
	Timezones          []string         `json:"timezones,omitempty"`
	Coordinates        []float64        `json:"coordinates,omitempty"` // [lat, lng]
	EmergencyNumbers   EmergencyNumbers `json:"emergency_numbers,omitempty"`
	Description        string           `json:"description,omitempty"`
	WeatherDescription string           `json:"weather_description,omitempty"`
	PopularCities      []string         `json:"popular_cities,omitempty"`
}

// EmergencyNumbers holds the local emergency phone numbers for a country.
type EmergencyNumbers struct {
	Police    string `json:"police,omitempty"`
	Ambulance string `json:"ambulance,omitempty"`
	Fire      string `json:"fire,omitempty"`
}

// City is a single result from destination city search.
type City struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region,omitempty"`
	Population  int64   `json:"population,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone,omitempty"`
	FullName    string  `json:"full_name"`
}

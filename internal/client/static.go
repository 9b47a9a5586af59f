package client

import "github.com/mehak-2/packpal-app-be/internal/domain"

// Static fallback datasets served when the geography provider is not
// configured or unreachable. Popular destinations only — enough for the
// product to stay usable offline, not a gazetteer.

// emergencyOverrides lists countries whose emergency numbers differ from the
// GSM default of 112.
var emergencyOverrides = map[string]domain.EmergencyNumbers{
	"US": {Police: "911", Ambulance: "911", Fire: "911"},
	"CA": {Police: "911", Ambulance: "911", Fire: "911"},
	"GB": {Police: "999", Ambulance: "999", Fire: "999"},
	"AU": {Police: "000", Ambulance: "000", Fire: "000"},
	"JP": {Police: "110", Ambulance: "119", Fire: "119"},
	"FR": {Police: "17", Ambulance: "15", Fire: "18"},
}

func emergencyNumbers(countryCode string) domain.EmergencyNumbers {
	if nums, ok := emergencyOverrides[countryCode]; ok {
		return nums
	}
	return domain.EmergencyNumbers{Police: "112", Ambulance: "112", Fire: "112"}
}

// fallbackCountries returns a fresh copy of the static country dataset so
// callers can't mutate the canonical data.
func fallbackCountries() []domain.DestinationInfo {
	return []domain.DestinationInfo{
		{
			Name:               "United States",
			OfficialName:       "United States of America",
			Capital:            "Washington, D.C.",
			Region:             "Americas",
			Subregion:          "North America",
			Population:         331002651,
			Currencies:         []string{"USD"},
			Languages:          []string{"English"},
			Flag:               "https://flagcdn.com/us.svg",
			CountryCode:        "US",
			Timezones:          []string{"UTC-05:00", "UTC-06:00", "UTC-07:00", "UTC-08:00"},
			Coordinates:        []float64{38, -97},
			EmergencyNumbers:   emergencyNumbers("US"),
			Description:        "Explore the diverse landscapes and vibrant cities of the United States. From the bustling streets of New York to the natural wonders of the Grand Canyon.",
			WeatherDescription: "The United States experiences diverse weather patterns. Check local forecasts for your specific destination and pack accordingly.",
			PopularCities:      []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"},
		},
		{
			Name:               "United Kingdom",
			OfficialName:       "United Kingdom of Great Britain and Northern Ireland",
			Capital:            "London",
			Region:             "Europe",
			Subregion:          "Northern Europe",
			Population:         67215293,
			Currencies:         []string{"GBP"},
			Languages:          []string{"English"},
			Flag:               "https://flagcdn.com/gb.svg",
			CountryCode:        "GB",
			Timezones:          []string{"UTC+00:00"},
			Coordinates:        []float64{54, -2},
			EmergencyNumbers:   emergencyNumbers("GB"),
			Description:        "Discover the rich history and culture of the United Kingdom. From the historic streets of London to the scenic landscapes of Scotland.",
			WeatherDescription: "The UK has a temperate maritime climate with frequent rain. Pack waterproof clothing and layers for variable weather.",
			PopularCities:      []string{"London", "Manchester", "Birmingham", "Leeds", "Liverpool"},
		},
		{
			Name:               "Japan",
			OfficialName:       "Japan",
			Capital:            "Tokyo",
			Region:             "Asia",
			Subregion:          "Eastern Asia",
			Population:         125836021,
			Currencies:         []string{"JPY"},
			Languages:          []string{"Japanese"},
			Flag:               "https://flagcdn.com/jp.svg",
			CountryCode:        "JP",
			Timezones:          []string{"UTC+09:00"},
			Coordinates:        []float64{36, 138},
			EmergencyNumbers:   emergencyNumbers("JP"),
			Description:        "Experience the perfect blend of tradition and modernity in Japan. From ancient temples to cutting-edge technology.",
			WeatherDescription: "Japan has four distinct seasons. Spring brings cherry blossoms, summer is hot and humid, autumn is mild, and winter can be cold with snow.",
			PopularCities:      []string{"Tokyo", "Osaka", "Nagoya", "Sapporo", "Fukuoka"},
		},
		{
			Name:               "France",
			OfficialName:       "French Republic",
			Capital:            "Paris",
			Region:             "Europe",
			Subregion:          "Western Europe",
			Population:         67391582,
			Currencies:         []string{"EUR"},
			Languages:          []string{"French"},
			Flag:               "https://flagcdn.com/fr.svg",
			CountryCode:        "FR",
			Timezones:          []string{"UTC+01:00"},
			Coordinates:        []float64{46, 2},
			EmergencyNumbers:   emergencyNumbers("FR"),
			Description:        "Immerse yourself in the art, culture, and cuisine of France. From the romantic streets of Paris to the beautiful French Riviera.",
			WeatherDescription: "France has a varied climate. Northern regions are cooler, while the south enjoys a Mediterranean climate with hot summers.",
			PopularCities:      []string{"Paris", "Marseille", "Lyon", "Toulouse", "Nice"},
		},
		{
			Name:               "Australia",
			OfficialName:       "Commonwealth of Australia",
			Capital:            "Canberra",
			Region:             "Oceania",
			Subregion:          "Australia and New Zealand",
			Population:         25499884,
			Currencies:         []string{"AUD"},
			Languages:          []string{"English"},
			Flag:               "https://flagcdn.com/au.svg",
			CountryCode:        "AU",
			Timezones:          []string{"UTC+08:00", "UTC+09:30", "UTC+10:00"},
			Coordinates:        []float64{-27, 133},
			EmergencyNumbers:   emergencyNumbers("AU"),
			Description:        "Explore the vast landscapes and unique wildlife of Australia. From the iconic Sydney Opera House to the stunning Great Barrier Reef.",
			WeatherDescription: "Australia has diverse climates. The north is tropical, the center is arid, and the south has temperate weather. Seasons are opposite to the Northern Hemisphere.",
			PopularCities:      []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"},
		},
	}
}

// fallbackCities returns a fresh copy of the static city dataset.
func fallbackCities() []domain.City {
	return []domain.City{
		{Name: "New York", Country: "United States", CountryCode: "US", Region: "New York", Population: 8336817, Latitude: 40.7128, Longitude: -74.0060, Timezone: "America/New_York", FullName: "New York, New York, United States"},
		{Name: "London", Country: "United Kingdom", CountryCode: "GB", Region: "England", Population: 8982000, Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London", FullName: "London, England, United Kingdom"},
		{Name: "Tokyo", Country: "Japan", CountryCode: "JP", Region: "Tokyo", Population: 13929286, Latitude: 35.6762, Longitude: 139.6503, Timezone: "Asia/Tokyo", FullName: "Tokyo, Tokyo, Japan"},
		{Name: "Paris", Country: "France", CountryCode: "FR", Region: "Île-de-France", Population: 2161000, Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris", FullName: "Paris, Île-de-France, France"},
		{Name: "Sydney", Country: "Australia", CountryCode: "AU", Region: "New South Wales", Population: 5312000, Latitude: -33.8688, Longitude: 151.2093, Timezone: "Australia/Sydney", FullName: "Sydney, New South Wales, Australia"},
		{Name: "Toronto", Country: "Canada", CountryCode: "CA", Region: "Ontario", Population: 2930000, Latitude: 43.6532, Longitude: -79.3832, Timezone: "America/Toronto", FullName: "Toronto, Ontario, Canada"},
		{Name: "Berlin", Country: "Germany", CountryCode: "DE", Region: "Berlin", Population: 3669491, Latitude: 52.5200, Longitude: 13.4050, Timezone: "Europe/Berlin", FullName: "Berlin, Berlin, Germany"},
		{Name: "Mumbai", Country: "India", CountryCode: "IN", Region: "Maharashtra", Population: 20411274, Latitude: 19.0760, Longitude: 72.8777, Timezone: "Asia/Kolkata", FullName: "Mumbai, Maharashtra, India"},
		{Name: "São Paulo", Country: "Brazil", CountryCode: "BR", Region: "São Paulo", Population: 12325232, Latitude: -23.5505, Longitude: -46.6333, Timezone: "America/Sao_Paulo", FullName: "São Paulo, São Paulo, Brazil"},
		{Name: "Cairo", Country: "Egypt", CountryCode: "EG", Region: "Cairo", Population: 9539000, Latitude: 30.0444, Longitude: 31.2357, Timezone: "Africa/Cairo", FullName: "Cairo, Cairo, Egypt"},
	}
}

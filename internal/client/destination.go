package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// DestinationClient looks up country cards and searches cities via GeoNames,
// with a static dataset as fallback. Like the weather client, it never
// returns an error — geography data degrades, it does not fail.
type DestinationClient struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	base     *baseClient
	username string
	logger   *slog.Logger
}

// NewDestinationClient constructs a DestinationClient. An empty GeoNames
// username disables the remote lookup entirely and serves static data.
func NewDestinationClient(username string, cfg Config, logger *slog.Logger) *DestinationClient {
	return &DestinationClient{
		BaseURL:  "http://api.geonames.org",
		base:     newBaseClient("geonames", cfg, logger),
		username: username,
		logger:   logger,
	}
}

// geoCountries is the GeoNames countryInfoJSON response shape. GeoNames
// returns numbers as strings; parsing is tolerant of that.
type geoCountries struct {
	Geonames []struct {
		CountryName  string `json:"countryName"`
		Capital      string `json:"capital"`
		Continent    string `json:"continent"`
		Population   string `json:"population"`
		CurrencyCode string `json:"currencyCode"`
		CountryCode  string `json:"countryCode"`
		IsoAlpha3    string `json:"isoAlpha3"`
		AreaInSqKm   string `json:"areaInSqKm"`
	} `json:"geonames"`
}

// geoCities is the GeoNames searchJSON response shape.
type geoCities struct {
	Geonames []struct {
		GeonameID   int64   `json:"geonameId"`
		Name        string  `json:"name"`
		CountryName string  `json:"countryName"`
		CountryCode string  `json:"countryCode"`
		AdminName1  string  `json:"adminName1"`
		Population  int64   `json:"population"`
		Lat         string  `json:"lat"`
		Lng         string  `json:"lng"`
		Timezone    tzField `json:"timezone"`
	} `json:"geonames"`
}

type tzField struct {
	TimeZoneID string `json:"timeZoneId"`
}

// Countries lists all known countries, from GeoNames when configured and
// reachable, otherwise from the static fallback dataset.
func (c *DestinationClient) Countries(ctx context.Context) []domain.DestinationInfo {
	if c.username == "" {
		return fallbackCountries()
	}

	var parsed geoCountries
	u := fmt.Sprintf("%s/countryInfoJSON?username=%s&maxRows=300", c.BaseURL, url.QueryEscape(c.username))
	if err := c.base.getJSON(ctx, u, &parsed); err != nil || len(parsed.Geonames) == 0 {
		c.logger.Warn("geonames country lookup failed, using static dataset", "error", err)
		return fallbackCountries()
	}

	out := make([]domain.DestinationInfo, 0, len(parsed.Geonames))
	for _, g := range parsed.Geonames {
		population, _ := strconv.ParseInt(g.Population, 10, 64)
		code := strings.ToLower(g.CountryCode)
		info := domain.DestinationInfo{
			Name:             g.CountryName,
			OfficialName:     g.CountryName,
			Capital:          g.Capital,
			Region:           regionForContinent(g.Continent),
			Subregion:        g.Continent,
			Population:       population,
			Flag:             "https://flagcdn.com/" + code + ".svg",
			CountryCode:      g.CountryCode,
			EmergencyNumbers: emergencyNumbers(g.CountryCode),
		}
		if g.CurrencyCode != "" {
			info.Currencies = []string{g.CurrencyCode}
		}
		out = append(out, info)
	}
	return out
}

// CountryInfo returns the destination card for a single country by name,
// case-insensitively. Unknown countries yield nil — trips tolerate a
// missing card.
func (c *DestinationClient) CountryInfo(ctx context.Context, country string) *domain.DestinationInfo {
	for _, info := range c.Countries(ctx) {
		if strings.EqualFold(info.Name, country) || strings.EqualFold(info.OfficialName, country) {
			return &info
		}
	}
	return nil
}

// SearchCities searches for cities matching the query, from GeoNames when
// configured, otherwise by filtering the static city list on name, country,
// or region. An empty query returns the static list as-is.
func (c *DestinationClient) SearchCities(ctx context.Context, query string, limit int) []domain.City {
	if limit < 1 {
		limit = 10
	}

	if c.username != "" && query != "" {
		var parsed geoCities
		u := fmt.Sprintf("%s/searchJSON?name_startsWith=%s&cities=cities15000&maxRows=%d&username=%s",
			c.BaseURL, url.QueryEscape(query), limit, url.QueryEscape(c.username))
		if err := c.base.getJSON(ctx, u, &parsed); err != nil {
			c.logger.Warn("geonames city search failed, using static dataset",
				"query", query, "error", err)
		} else if len(parsed.Geonames) > 0 {
			out := make([]domain.City, 0, len(parsed.Geonames))
			for _, g := range parsed.Geonames {
				lat, _ := strconv.ParseFloat(g.Lat, 64)
				lng, _ := strconv.ParseFloat(g.Lng, 64)
				out = append(out, domain.City{
					Name:        g.Name,
					Country:     g.CountryName,
					CountryCode: g.CountryCode,
					Region:      g.AdminName1,
					Population:  g.Population,
					Latitude:    lat,
					Longitude:   lng,
					Timezone:    g.Timezone.TimeZoneID,
					FullName:    joinNonEmpty(g.Name, g.AdminName1, g.CountryName),
				})
			}
			return out
		}
	}

	return filterCities(fallbackCities(), query, limit)
}

// filterCities filters the static city list on a case-insensitive substring
// match against name, country, and region.
func filterCities(cities []domain.City, query string, limit int) []domain.City {
	if query == "" {
		if len(cities) > limit {
			return cities[:limit]
		}
		return cities
	}

	q := strings.ToLower(query)
	var out []domain.City
	for _, city := range cities {
		if strings.Contains(strings.ToLower(city.Name), q) ||
			strings.Contains(strings.ToLower(city.Country), q) ||
			strings.Contains(strings.ToLower(city.Region), q) {
			out = append(out, city)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// regionForContinent maps GeoNames continent codes to display regions.
func regionForContinent(code string) string {
	switch code {
	case "EU":
		return "Europe"
	case "AS":
		return "Asia"
	case "NA", "SA":
		return "Americas"
	case "AF":
		return "Africa"
	case "OC":
		return "Oceania"
	default:
		return code
	}
}

package client

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// WeatherClient fetches current weather and a daily forecast from
// OpenWeatherMap. It never returns an error: with a missing API key or a
// failing provider it returns DefaultSnapshot, so trip creation and packing
// generation always have a snapshot to work with.
type WeatherClient struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	base   *baseClient
	apiKey string
	logger *slog.Logger
	now    func() time.Time
}

// NewWeatherClient constructs a WeatherClient. An empty apiKey is allowed;
// Fetch then always returns the default snapshot.
func NewWeatherClient(apiKey string, cfg Config, logger *slog.Logger) *WeatherClient {
	return &WeatherClient{
		BaseURL: "https://api.openweathermap.org/data/2.5",
		base:    newBaseClient("openweathermap", cfg, logger),
		apiKey:  apiKey,
		logger:  logger,
		now:     time.Now,
	}
}

// owmCurrent is the slice of the OpenWeatherMap current-weather response
// this client reads.
type owmCurrent struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// owmForecast is the slice of the 5-day/3-hour forecast response this
// client reads.
type owmForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"` // precipitation probability, 0..1
	} `json:"list"`
}

// Fetch returns the weather snapshot for a destination city. Failures are
// logged and replaced by the default snapshot — callers never branch on
// weather availability.
func (c *WeatherClient) Fetch(ctx context.Context, city, country string) *domain.WeatherSnapshot {
	if c.apiKey == "" {
		c.logger.Info("weather API key not configured, using default weather data")
		return DefaultSnapshot(c.now())
	}

	q := url.QueryEscape(city + "," + country)

	var current owmCurrent
	currentURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", c.BaseURL, q, c.apiKey)
	if err := c.base.getJSON(ctx, currentURL, &current); err != nil {
		c.logger.Warn("weather fetch failed, using default weather data",
			"city", city, "country", country, "error", err)
		return DefaultSnapshot(c.now())
	}
	if len(current.Weather) == 0 {
		c.logger.Warn("weather response missing condition, using default weather data",
			"city", city)
		return DefaultSnapshot(c.now())
	}

	snapshot := &domain.WeatherSnapshot{
		Temperature: math.Round(current.Main.Temp),
		Condition:   current.Weather[0].Main,
		Description: current.Weather[0].Description,
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		Pressure:    current.Main.Pressure,
	}

	// The forecast is best-effort: a current snapshot without forecast is
	// still usable (rain gear then keys off the condition alone).
	var forecast owmForecast
	forecastURL := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric", c.BaseURL, q, c.apiKey)
	if err := c.base.getJSON(ctx, forecastURL, &forecast); err != nil {
		c.logger.Warn("forecast fetch failed", "city", city, "error", err)
		return snapshot
	}

	snapshot.Forecast = collapseDaily(forecast)
	return snapshot
}

// collapseDaily reduces the 3-hourly forecast list to one record per day
// (the first entry of each day), capped at 7 days.
func collapseDaily(f owmForecast) []domain.ForecastDay {
	var days []domain.ForecastDay
	seen := make(map[string]bool)

	for _, entry := range f.List {
		if len(entry.Weather) == 0 {
			continue
		}
		date := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		if seen[date] {
			continue
		}
		seen[date] = true

		days = append(days, domain.ForecastDay{
			Date:          date,
			Temperature:   math.Round(entry.Main.Temp),
			Condition:     entry.Weather[0].Main,
			Description:   entry.Weather[0].Description,
			Precipitation: int(math.Round(entry.Pop * 100)),
			Humidity:      entry.Main.Humidity,
			WindSpeed:     entry.Wind.Speed,
		})
		if len(days) == 7 {
			break
		}
	}

	return days
}

// DefaultSnapshot is the deterministic stand-in used when weather data is
// unavailable: mild, clear, with a flat 7-day forecast starting at now.
// Deterministic values keep packing generation reproducible in tests and in
// degraded operation.
func DefaultSnapshot(now time.Time) *domain.WeatherSnapshot {
	forecast := make([]domain.ForecastDay, 0, 7)
	for i := 0; i < 7; i++ {
		forecast = append(forecast, domain.ForecastDay{
			Date:          now.AddDate(0, 0, i).Format("2006-01-02"),
			Temperature:   20,
			Condition:     "Clear",
			Description:   "Clear sky",
			Precipitation: 10,
			Humidity:      60,
			WindSpeed:     5,
		})
	}

	return &domain.WeatherSnapshot{
		Temperature: 20,
		Condition:   "Clear",
		Description: "Weather data unavailable",
		Humidity:    60,
		WindSpeed:   5,
		Pressure:    1013,
		Forecast:    forecast,
	}
}

package ai

import (
	"fmt"
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// listPrompt builds the structured prompt for full packing list generation.
// It embeds destination, country, computed duration, activities, and a
// weather summary, and documents the exact JSON shape expected back.
func listPrompt(attrs domain.TripAttributes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a comprehensive packing list for a %d-day trip to %s, %s.\n\n",
		attrs.DurationDays(), attrs.Destination, attrs.Country)

	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "- Destination: %s, %s\n", attrs.Destination, attrs.Country)
	fmt.Fprintf(&b, "- Duration: %d days\n", attrs.DurationDays())
	fmt.Fprintf(&b, "- Activities: %s\n", activitySummary(attrs.Activities))
	b.WriteString(weatherSummary(attrs.Weather))

	b.WriteString(`
Please provide a detailed packing list organized by categories. For each item, specify if it's essential or optional. Consider the destination, weather, activities, and trip duration.

Return the response as a JSON object with the following structure:
{
  "clothing": [{"name": "item name", "quantity": number, "essential": boolean, "reason": "why this item is needed"}],
  "accessories": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}],
  "essentials": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}],
  "electronics": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}],
  "toiletries": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}],
  "documents": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}],
  "activities": [{"name": "item name", "essential": boolean, "reason": "why this item is needed"}]
}

Focus on practical items that travelers commonly forget or need for this specific destination and activities.`)

	return b.String()
}

// suggestPrompt builds the smaller prompt for the suggestions endpoint.
func suggestPrompt(attrs domain.TripAttributes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggest a packing list for a %d-day trip to %s, %s.\n\n",
		attrs.DurationDays(), attrs.Destination, attrs.Country)
	fmt.Fprintf(&b, "Activities: %s\n", activitySummary(attrs.Activities))

	b.WriteString(`
Provide 3-5 key items that are commonly forgotten or essential for this type of trip. Return as JSON:
{
  "suggestions": [{"name": "item name", "category": "category", "reason": "why this is important"}]
}`)

	return b.String()
}

func activitySummary(activities []string) string {
	if len(activities) == 0 {
		return "General travel"
	}
	return strings.Join(activities, ", ")
}

func weatherSummary(w *domain.WeatherSnapshot) string {
	if w == nil {
		return "Weather information not available\n"
	}
	return fmt.Sprintf("Weather: %s, %.0f°C\nHumidity: %d%%\nWind Speed: %.1f m/s\n",
		w.Description, w.Temperature, w.Humidity, w.WindSpeed)
}

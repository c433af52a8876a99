package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const metersPerMile = 1609.34

// emojiByIcon maps OpenWeatherMap icon codes to Discord emoji.
var emojiByIcon = map[string]string{
	"01d": ":sunny:",
	"01n": ":new_moon_with_face:",
	"02d": ":white_sun_small_cloud:",
	"02n": ":cloud:",
	"03d": ":cloud:",
	"03n": ":cloud:",
	"04d": ":cloud:",
	"04n": ":cloud:",
	"09d": ":cloud_rain:",
	"09n": ":cloud_rain:",
	"10d": ":white_sun_rain_cloud:",
	"10n": ":cloud_rain:",
	"11d": ":thunder_cloud_rain:",
	"11n": ":thunder_cloud_rain:",
	"13d": ":cloud_snow:",
	"13n": ":cloud_snow:",
	"50d": ":fog:",
	"50n": ":fog:",
}

// Report holds the current conditions for a location.
type Report struct {
	Location        string
	Status          string
	Icon            string
	TempF           float64
	FeelsLikeF      float64
	WindSpeedMPH    float64
	WindDegrees     int
	Humidity        int
	VisibilityMiles float64
	RainLastHourMM  float64
}

// Emoji returns the Discord emoji for the report's icon code, or an empty
// string for unknown codes.
func (r *Report) Emoji() string {
	return emojiByIcon[r.Icon]
}

// WindCardinal returns the nearest cardinal direction for the wind angle.
func (r *Report) WindCardinal() string {
	return degreesToCardinal(r.WindDegrees)
}

// degreesToCardinal converts an angle in degrees to the nearest of 16
// cardinal directions, 0 being North.
func degreesToCardinal(degrees int) string {
	directions := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	// Each direction spans 22.5 degrees.
	index := int(float64(degrees)/22.5+0.5) % 16
	return directions[index]
}

type apiResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
}

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new Client.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL creates a Client against a custom endpoint, which lets
// tests point it at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Current fetches the current conditions for a location given as
// "City,CountryCode". Imperial units are requested so temperatures come back
// in Fahrenheit and wind speed in mph.
func (c *Client) Current(ctx context.Context, location string) (*Report, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request for %q returned status %d", location, resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &Report{
		Location:        location,
		TempF:           data.Main.Temp,
		FeelsLikeF:      data.Main.FeelsLike,
		WindSpeedMPH:    data.Wind.Speed,
		WindDegrees:     data.Wind.Deg,
		Humidity:        data.Main.Humidity,
		VisibilityMiles: float64(data.Visibility) / metersPerMile,
		RainLastHourMM:  data.Rain.OneHour,
	}
	if len(data.Weather) > 0 {
		report.Status = data.Weather[0].Description
		report.Icon = data.Weather[0].Icon
	}

	return report, nil
}

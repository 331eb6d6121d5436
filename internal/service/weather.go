package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// ErrCityNotFound means geocoding returned no match for the city name.
var ErrCityNotFound = errors.New("city not found")

// WeatherReport is the enrichment payload injected into the chat prompt.
type WeatherReport struct {
	City        string `json:"city"`
	Temp        int    `json:"temp"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
}

// WeatherClient talks to the OpenWeatherMap geocoding and current-weather
// endpoints.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherClient creates a new WeatherClient. baseURL should point at the
// API root (e.g. https://api.openweathermap.org).
func NewWeatherClient(apiKey, baseURL string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResult struct {
	Name       string            `json:"name"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	LocalNames map[string]string `json:"local_names"`
}

type currentWeatherResult struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Lookup resolves the city name to coordinates and fetches current
// conditions in metric units with Turkish descriptions. The Turkish local
// name is preferred when the geocoder knows one.
func (c *WeatherClient) Lookup(ctx context.Context, city string) (*WeatherReport, error) {
	geoURL := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	var geoResults []geocodeResult
	if err := c.getJSON(ctx, geoURL, &geoResults); err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(geoResults) == 0 {
		return nil, fmt.Errorf("%q: %w", city, ErrCityNotFound)
	}

	geo := geoResults[0]
	cityName := geo.Name
	if tr, ok := geo.LocalNames["tr"]; ok && tr != "" {
		cityName = tr
	}

	weatherURL := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&appid=%s&units=metric&lang=tr",
		c.baseURL, geo.Lat, geo.Lon, c.apiKey)

	var current currentWeatherResult
	if err := c.getJSON(ctx, weatherURL, &current); err != nil {
		return nil, fmt.Errorf("weather fetch failed: %w", err)
	}
	if len(current.Weather) == 0 {
		return nil, fmt.Errorf("weather fetch returned no conditions for %q", city)
	}

	return &WeatherReport{
		City:        cityName,
		Temp:        int(math.Round(current.Main.Temp)),
		Description: current.Weather[0].Description,
		Humidity:    current.Main.Humidity,
	}, nil
}

func (c *WeatherClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

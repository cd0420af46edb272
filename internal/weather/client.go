package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// DefaultBaseURL is the Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// Weather codes at or above this value indicate thunderstorm conditions.
const thunderstormCode = 95

// HTTPClient implements Source against an Open-Meteo style forecast API.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

var _ Source = (*HTTPClient)(nil)

// forecast response types.
type forecastResponse struct {
	Current currentConditions `json:"current"`
}

type currentConditions struct {
	Temperature float64 `json:"temperature_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	Visibility  float64 `json:"visibility"`
	WeatherCode int     `json:"weather_code"`
}

// NewHTTPClient creates a weather client for the given endpoint. An empty
// baseURL selects the default provider.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves one current-conditions sample per port. Ports that fail to
// respond are logged and skipped; if no port yields a sample the fetch fails,
// since the risk aggregation downstream cannot proceed without data.
func (c *HTTPClient) Fetch(ctx context.Context, ports []Port) ([]model.PortWeatherSample, error) {
	samples := make([]model.PortWeatherSample, 0, len(ports))

	for _, port := range ports {
		sample, err := c.FetchPort(ctx, port)
		if err != nil {
			slog.Warn("failed to fetch weather for port",
				"port", port.ID,
				"error", err)
			continue
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no monitored port returned a sample", common.ErrWeatherConnection)
	}

	return samples, nil
}

// FetchPort retrieves the current-conditions sample for a single port.
func (c *HTTPClient) FetchPort(ctx context.Context, port Port) (model.PortWeatherSample, error) {
	endpoint, err := c.forecastURL(port)
	if err != nil {
		return model.PortWeatherSample{}, fmt.Errorf("failed to build forecast URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return model.PortWeatherSample{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PortWeatherSample{}, fmt.Errorf("%w: %v", common.ErrWeatherConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.PortWeatherSample{}, fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, string(body))
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return model.PortWeatherSample{}, fmt.Errorf("failed to decode forecast: %w", err)
	}

	return model.PortWeatherSample{
		PortID:             port.ID,
		WindSpeedKnots:     forecast.Current.WindSpeed,
		VisibilityMeters:   forecast.Current.Visibility,
		TemperatureCelsius: forecast.Current.Temperature,
		HasStormAlert:      forecast.Current.WeatherCode >= thunderstormCode,
	}, nil
}

func (c *HTTPClient) forecastURL(port Port) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	u.Path = "/v1/forecast"

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", port.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", port.Longitude))
	q.Set("current", "temperature_2m,wind_speed_10m,visibility,weather_code")
	q.Set("wind_speed_unit", "kn")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stormyForecast = `{
	"current": {
		"temperature_2m": 19.4,
		"wind_speed_10m": 27.5,
		"visibility": 800,
		"weather_code": 95
	}
}`

const calmForecast = `{
	"current": {
		"temperature_2m": 24.1,
		"wind_speed_10m": 8.2,
		"visibility": 24140,
		"weather_code": 1
	}
}`

func TestFetchPort(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stormyForecast))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	port := Port{ID: "tanger-med", Name: "Tanger Med", Latitude: 35.8885, Longitude: -5.5067}

	sample, err := client.FetchPort(context.Background(), port)
	require.NoError(t, err)

	assert.Equal(t, "tanger-med", sample.PortID)
	assert.Equal(t, 27.5, sample.WindSpeedKnots)
	assert.Equal(t, 800.0, sample.VisibilityMeters)
	assert.Equal(t, 19.4, sample.TemperatureCelsius)
	assert.True(t, sample.HasStormAlert)

	// Wind speed must be requested in knots, matching the risk thresholds.
	assert.Contains(t, gotQuery, "wind_speed_unit=kn")
	assert.Contains(t, gotQuery, "latitude=35.8885")
}

func TestFetchPort_NoStormBelowThunderstormCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(calmForecast))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	sample, err := client.FetchPort(context.Background(), DefaultPorts[0])
	require.NoError(t, err)

	assert.False(t, sample.HasStormAlert)
	assert.Equal(t, 8.2, sample.WindSpeedKnots)
}

func TestFetchPort_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.FetchPort(context.Background(), DefaultPorts[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetch_SkipsFailedPorts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail requests for the first port's coordinates, serve the rest.
		if r.URL.Query().Get("latitude") == "33.6000" {
			http.Error(w, "timeout", http.StatusGatewayTimeout)
			return
		}
		_, _ = w.Write([]byte(calmForecast))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	samples, err := client.Fetch(context.Background(), DefaultPorts)
	require.NoError(t, err)

	assert.Len(t, samples, len(DefaultPorts)-1)
	for _, sample := range samples {
		assert.NotEqual(t, "casablanca", sample.PortID)
	}
}

func TestFetch_AllPortsFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.Fetch(context.Background(), DefaultPorts)
	assert.ErrorIs(t, err, common.ErrWeatherConnection)
}

func TestNewHTTPClient_DefaultBaseURL(t *testing.T) {
	client := NewHTTPClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestStaticSource(t *testing.T) {
	source := NewStaticSource([]model.PortWeatherSample{
		{PortID: "casablanca", WindSpeedKnots: 14, VisibilityMeters: 9000},
		{PortID: "agadir", WindSpeedKnots: 6, VisibilityMeters: 20000},
	})

	samples, err := source.Fetch(context.Background(), DefaultPorts)
	require.NoError(t, err)
	assert.Len(t, samples, 2)

	_, err = source.Fetch(context.Background(), []Port{{ID: "nador"}})
	assert.ErrorIs(t, err, common.ErrNoWeatherSamples)
}

func TestPortByID(t *testing.T) {
	port := PortByID(DefaultPorts, "agadir")
	require.NotNil(t, port)
	assert.Equal(t, "Agadir", port.Name)

	assert.Nil(t, PortByID(DefaultPorts, "dakhla"))
}

// Package weather acquires point-in-time weather samples for the monitored
// ports. The risk engine itself never performs I/O; a Source is invoked by
// the caller before aggregation runs.
package weather

import (
	"context"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// Source supplies one weather sample per requested port.
type Source interface {
	Fetch(ctx context.Context, ports []Port) ([]model.PortWeatherSample, error)
}

// Port is a monitored port with the coordinates used for weather queries.
type Port struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// DefaultPorts are the ports monitored when none are configured.
var DefaultPorts = []Port{
	{ID: "casablanca", Name: "Casablanca", Latitude: 33.60, Longitude: -7.62},
	{ID: "tanger-med", Name: "Tanger Med", Latitude: 35.88, Longitude: -5.50},
	{ID: "agadir", Name: "Agadir", Latitude: 30.42, Longitude: -9.62},
}

// PortByID looks up a monitored port in the given set. Returns nil when the
// ID is unknown.
func PortByID(ports []Port, id string) *Port {
	for i := range ports {
		if ports[i].ID == id {
			return &ports[i]
		}
	}
	return nil
}

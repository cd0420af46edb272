package weather

import (
	"context"

	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// StaticSource serves fixed samples keyed by port ID. Used offline and in
// tests.
type StaticSource struct {
	samples map[string]model.PortWeatherSample
}

var _ Source = (*StaticSource)(nil)

// NewStaticSource creates a source returning the given samples.
func NewStaticSource(samples []model.PortWeatherSample) *StaticSource {
	byPort := make(map[string]model.PortWeatherSample, len(samples))
	for _, sample := range samples {
		byPort[sample.PortID] = sample
	}
	return &StaticSource{samples: byPort}
}

// Fetch returns the configured sample for each requested port. Ports without
// a configured sample are skipped; zero matches is an error, mirroring the
// live client.
func (s *StaticSource) Fetch(_ context.Context, ports []Port) ([]model.PortWeatherSample, error) {
	samples := make([]model.PortWeatherSample, 0, len(ports))
	for _, port := range ports {
		if sample, ok := s.samples[port.ID]; ok {
			samples = append(samples, sample)
		}
	}

	if len(samples) == 0 {
		return nil, common.ErrNoWeatherSamples
	}

	return samples, nil
}

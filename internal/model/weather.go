package model

import (
	"fmt"
	"time"
)

// PortWeatherSample is a point-in-time weather observation for one monitored
// port. One sample per port per aggregation call; no history is retained.
type PortWeatherSample struct {
	PortID             string
	WindSpeedKnots     float64
	VisibilityMeters   float64
	TemperatureCelsius float64
	HasStormAlert      bool
}

// Validate ensures the sample has valid data.
func (s *PortWeatherSample) Validate() error {
	if s.PortID == "" {
		return fmt.Errorf("port id is required")
	}

	if s.WindSpeedKnots < 0 {
		return fmt.Errorf("wind speed must be non-negative for %s", s.PortID)
	}

	if s.VisibilityMeters < 0 {
		return fmt.Errorf("visibility must be non-negative for %s", s.PortID)
	}

	return nil
}

// CongestionTier classifies expected port congestion.
type CongestionTier string

// Congestion tier constants.
const (
	CongestionLow      CongestionTier = "low"
	CongestionMedium   CongestionTier = "medium"
	CongestionHigh     CongestionTier = "high"
	CongestionCritical CongestionTier = "critical"
)

// StormTier classifies storm exposure across the monitored ports.
type StormTier string

// Storm tier constants.
const (
	StormNone     StormTier = "none"
	StormLow      StormTier = "low"
	StormModerate StormTier = "moderate"
	StormSevere   StormTier = "severe"
)

// RiskBreakdown is the auditable decomposition of a risk multiplier.
// Multiplier = BaseCoefficient + WindContribution + CongestionContribution,
// rounded to 4 decimal places.
type RiskBreakdown struct {
	BaseCoefficient        float64
	WindContribution       float64
	CongestionContribution float64
	EstimatedDelayDays     float64
}

// RiskAssessment is the output of one weather risk aggregation: the cost
// multiplier, its tier classifications, the contribution breakdown, and the
// raw samples used, kept for audit. ComputedAt is stamped by the persistence
// layer when an assessment is recorded; the aggregation itself is pure.
type RiskAssessment struct {
	ComputedAt         time.Time
	PortCongestionTier CongestionTier
	StormRiskTier      StormTier
	Samples            []PortWeatherSample
	Breakdown          RiskBreakdown
	Multiplier         float64
}

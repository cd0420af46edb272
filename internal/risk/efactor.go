// Package risk computes the E-Factor: a multiplicative shipping-cost risk
// coefficient aggregated from point-in-time weather samples across the
// monitored ports, with an auditable contribution breakdown.
package risk

import (
	"math"

	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// Aggregation thresholds.
const (
	baseCoefficient = 1.0

	windSevereKnots   = 25.0
	windModerateKnots = 18.0
	windLightKnots    = 12.0

	windSevereContribution   = 0.20
	windModerateContribution = 0.08
	windLightContribution    = 0.03

	lowVisibilityMeters = 1000.0
	delayDayCoefficient = 0.05
)

// ComputeRisk aggregates the given port weather samples into a single risk
// assessment. The aggregation is order-independent: only max, count and sum
// over the sample set feed the result, so identical sample sets in any order
// produce identical assessments.
//
// At least one sample is required; an empty set is a hard failure, never a
// default multiplier.
func ComputeRisk(samples []model.PortWeatherSample) (model.RiskAssessment, error) {
	if len(samples) == 0 {
		return model.RiskAssessment{}, common.ErrNoWeatherSamples
	}

	var maxWind float64
	stormCount := 0
	lowVisCount := 0

	for _, sample := range samples {
		if sample.WindSpeedKnots > maxWind {
			maxWind = sample.WindSpeedKnots
		}
		if sample.HasStormAlert {
			stormCount++
		}
		if sample.VisibilityMeters < lowVisibilityMeters {
			lowVisCount++
		}
	}

	windContribution := 0.0
	windDelayDays := 0.0
	switch {
	case maxWind > windSevereKnots:
		windContribution = windSevereContribution
		windDelayDays = 2
	case maxWind > windModerateKnots:
		windContribution = windModerateContribution
		windDelayDays = 1
	case maxWind > windLightKnots:
		windContribution = windLightContribution
	}

	estimatedDelayDays := windDelayDays + float64(stormCount) + 0.5*float64(lowVisCount)
	congestionContribution := round4(estimatedDelayDays * delayDayCoefficient)
	multiplier := round4(baseCoefficient + windContribution + congestionContribution)

	return model.RiskAssessment{
		Multiplier:         multiplier,
		PortCongestionTier: congestionTier(estimatedDelayDays),
		StormRiskTier:      stormTier(stormCount, maxWind),
		Breakdown: model.RiskBreakdown{
			BaseCoefficient:        baseCoefficient,
			WindContribution:       windContribution,
			CongestionContribution: congestionContribution,
			EstimatedDelayDays:     estimatedDelayDays,
		},
		Samples: samples,
	}, nil
}

func congestionTier(delayDays float64) model.CongestionTier {
	switch {
	case delayDays >= 4:
		return model.CongestionCritical
	case delayDays >= 2:
		return model.CongestionHigh
	case delayDays >= 1:
		return model.CongestionMedium
	default:
		return model.CongestionLow
	}
}

func stormTier(stormCount int, maxWind float64) model.StormTier {
	switch {
	case stormCount >= 2 || maxWind > windSevereKnots:
		return model.StormSevere
	case stormCount >= 1 || maxWind > windModerateKnots:
		return model.StormModerate
	case maxWind > windLightKnots:
		return model.StormLow
	default:
		return model.StormNone
	}
}

// round4 rounds to 4 decimal places, half away from zero. The same rule is
// used for every rounded value so assessments reproduce exactly.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

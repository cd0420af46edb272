// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// RiskTag is a qualitative risk classification for a tariff entry.
type RiskTag string

// Risk tag constants.
const (
	RiskLow    RiskTag = "low"
	RiskMedium RiskTag = "medium"
	RiskHigh   RiskTag = "high"
)

// TariffEntry is an immutable catalog record mapping an HS code to its
// descriptive and fiscal reference data. Identity is the HSCode; entries are
// created at build time and never mutated.
type TariffEntry struct {
	HSCode            string
	ShortDescription  string
	LongDescription   string
	Category          string
	Subcategory       string
	RiskTag           RiskTag
	Keywords          []string
	LikelyOriginPorts []string
	DutyRatePercent   float64
	TaxRatePercent    float64
}

// Validate ensures the tariff entry has valid data.
func (e *TariffEntry) Validate() error {
	if e.HSCode == "" {
		return fmt.Errorf("hs code is required")
	}

	if e.ShortDescription == "" {
		return fmt.Errorf("short description is required for %s", e.HSCode)
	}

	if e.DutyRatePercent < 0 {
		return fmt.Errorf("duty rate must be non-negative for %s", e.HSCode)
	}

	if e.TaxRatePercent < 0 {
		return fmt.Errorf("tax rate must be non-negative for %s", e.HSCode)
	}

	switch e.RiskTag {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return fmt.Errorf("invalid risk tag %q for %s", e.RiskTag, e.HSCode)
	}

	return nil
}

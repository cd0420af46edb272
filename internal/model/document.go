package model

import "fmt"

// Urgency indicates how time-critical a compliance document is.
type Urgency string

// Urgency constants.
const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
)

// DocumentDefinition is an immutable catalog record describing one compliance
// document type. Identity is the DocumentID.
type DocumentDefinition struct {
	DocumentID              string
	Label                   string
	Abbreviation            string
	IssuingAuthority        string
	Urgency                 Urgency
	EstimatedProcessingDays int
}

// Validate ensures the document definition has valid data.
func (d *DocumentDefinition) Validate() error {
	if d.DocumentID == "" {
		return fmt.Errorf("document id is required")
	}

	if d.Label == "" {
		return fmt.Errorf("label is required for %s", d.DocumentID)
	}

	if d.EstimatedProcessingDays <= 0 {
		return fmt.Errorf("estimated processing days must be positive for %s", d.DocumentID)
	}

	switch d.Urgency {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium:
	default:
		return fmt.Errorf("invalid urgency %q for %s", d.Urgency, d.DocumentID)
	}

	return nil
}

// RequiredDocument is a DocumentDefinition contextualized for one
// classification/market pair. Reason explains why the document applies and is
// always non-empty; SectorNote carries optional sector-specific guidance.
type RequiredDocument struct {
	Definition DocumentDefinition
	Reason     string
	SectorNote string
}

// DocumentStatus is the lifecycle state of a compliance document.
type DocumentStatus string

// Document status constants, ordered by completeness. Filed is reachable only
// by an explicit caller action, never by field completion alone.
const (
	StatusMissing DocumentStatus = "MISSING"
	StatusDraft   DocumentStatus = "DRAFT"
	StatusReady   DocumentStatus = "READY"
	StatusFiled   DocumentStatus = "FILED"
)

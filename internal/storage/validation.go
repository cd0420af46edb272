// Package storage provides the SQLite persistence layer: shipments, sticky
// per-document filed flags, and the risk-assessment audit history.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidShipmentID = errors.New("shipment id must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateShipmentID ensures a shipment ID is positive.
func validateShipmentID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidShipmentID, id)
	}
	return nil
}

// validateShipment validates a shipment before persisting it.
func validateShipment(shipment *model.Shipment) error {
	if shipment == nil {
		return fmt.Errorf("%w: shipment", ErrNilParameter)
	}
	if err := validateString(shipment.Description, "description"); err != nil {
		return err
	}
	return nil
}

// validateAssessment validates a risk assessment before persisting it.
func validateAssessment(assessment *model.RiskAssessment) error {
	if assessment == nil {
		return fmt.Errorf("%w: assessment", ErrNilParameter)
	}
	if assessment.Multiplier < 1.0 {
		return fmt.Errorf("multiplier must be at least 1.0, got %v", assessment.Multiplier)
	}
	if len(assessment.Samples) == 0 {
		return fmt.Errorf("%w: samples", ErrNilParameter)
	}
	return nil
}

// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// Storage defines the contract for our persistence layer. The rules engine
// itself never touches storage; the CLI composes the two.
type Storage interface {
	// Shipment operations
	SaveShipment(ctx context.Context, shipment *model.Shipment) (int64, error)
	GetShipment(ctx context.Context, id int64) (*model.Shipment, error)
	ListShipments(ctx context.Context) ([]model.Shipment, error)
	UpdateShipmentFields(ctx context.Context, id int64, fields model.FieldCompletionContext) error

	// Filed-flag operations. Filed is sticky: once marked, field edits never
	// clear it.
	MarkFiled(ctx context.Context, shipmentID int64, documentID string) error
	IsFiled(ctx context.Context, shipmentID int64, documentID string) (bool, error)
	FiledDocuments(ctx context.Context, shipmentID int64) (map[string]bool, error)

	// Risk assessment audit history
	SaveRiskAssessment(ctx context.Context, assessment *model.RiskAssessment) error
	ListRiskAssessments(ctx context.Context, limit int) ([]model.RiskAssessment, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ReportWriter exports a shipment's compliance checklist to an external
// report surface.
type ReportWriter interface {
	Write(ctx context.Context, shipment *model.Shipment, checklist []model.RequiredDocument, statuses map[string]model.DocumentStatus) error
}

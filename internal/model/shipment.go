package model

import "time"

// Party identifies one side of a shipment (exporter or consignee).
type Party struct {
	Name    string
	Address string
	City    string
	Country string
}

// FieldCompletionContext carries the live form values the document completion
// state machine reads. The engine only reads it; the form layer owns it.
type FieldCompletionContext struct {
	Exporter  Party
	Consignee Party
	Quantity  float64
	UnitPrice float64
}

// Shipment is a persisted export shipment: the user's description, the chosen
// classification, the destination market, and the form fields the completion
// state machine reads.
type Shipment struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Description string
	HSCode      string
	Market      string
	Fields      FieldCompletionContext
	ID          int64
}

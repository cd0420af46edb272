package compliance

import (
	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// requiredFieldsByDocument maps a document type to the form-field paths that
// must be filled before the document counts as Ready. Documents not listed
// fall back to defaultRequiredFields.
var requiredFieldsByDocument = map[string][]string{
	catalog.DocCommercialInvoice: {
		"exporter.name", "exporter.address",
		"consignee.name", "consignee.country",
		"shipment.quantity", "shipment.unit_price",
	},
	catalog.DocPackingList: {
		"exporter.name", "consignee.name", "shipment.quantity",
	},
	catalog.DocBillOfLading: {
		"exporter.name", "exporter.city",
		"consignee.name", "consignee.country",
	},
	catalog.DocCertificateOfOrigin: {
		"exporter.name", "exporter.country", "consignee.country",
	},
	catalog.DocEUR1Movement: {
		"exporter.name", "exporter.address",
		"consignee.name", "consignee.country",
	},
}

var defaultRequiredFields = []string{"exporter.name", "consignee.name"}

// RequiredFields returns the field paths a document needs before it is Ready.
// Unknown document IDs get the minimal default set rather than an error.
func RequiredFields(documentID string) []string {
	if fields, ok := requiredFieldsByDocument[documentID]; ok {
		return fields
	}
	return defaultRequiredFields
}

// fieldFilled reports whether one field path is non-empty/non-zero in the
// completion context.
func fieldFilled(ctx model.FieldCompletionContext, path string) bool {
	switch path {
	case "exporter.name":
		return ctx.Exporter.Name != ""
	case "exporter.address":
		return ctx.Exporter.Address != ""
	case "exporter.city":
		return ctx.Exporter.City != ""
	case "exporter.country":
		return ctx.Exporter.Country != ""
	case "consignee.name":
		return ctx.Consignee.Name != ""
	case "consignee.address":
		return ctx.Consignee.Address != ""
	case "consignee.city":
		return ctx.Consignee.City != ""
	case "consignee.country":
		return ctx.Consignee.Country != ""
	case "shipment.quantity":
		return ctx.Quantity != 0
	case "shipment.unit_price":
		return ctx.UnitPrice != 0
	}
	return false
}

// ComputeStatus derives a document's lifecycle status from form-field
// completeness: Missing with zero filled fields, Ready with all of them,
// Draft anywhere between. The filed flag, supplied and persisted by the caller,
// overrides the computed value to Filed; field edits never demote a Filed
// document. The function holds no state and is safe to call concurrently.
func ComputeStatus(documentID string, ctx model.FieldCompletionContext, filed bool) model.DocumentStatus {
	if filed {
		return model.StatusFiled
	}

	fields := RequiredFields(documentID)

	completed := 0
	for _, path := range fields {
		if fieldFilled(ctx, path) {
			completed++
		}
	}

	switch {
	case completed == 0:
		return model.StatusMissing
	case completed == len(fields):
		return model.StatusReady
	default:
		return model.StatusDraft
	}
}

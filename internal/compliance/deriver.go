package compliance

import (
	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// baseDocument is one of the documents every shipment needs regardless of
// chapter or market.
type baseDocument struct {
	DocumentID string
	Reason     string
}

var baseDocuments = []baseDocument{
	{
		DocumentID: catalog.DocCommercialInvoice,
		Reason:     "Universal customs requirement for every commercial export.",
	},
	{
		DocumentID: catalog.DocPackingList,
		Reason:     "Required by carriers and customs for cargo verification.",
	},
	{
		DocumentID: catalog.DocBillOfLading,
		Reason:     "Contract of carriage and proof of shipment for ocean freight.",
	},
	{
		DocumentID: catalog.DocCertificateOfOrigin,
		Reason:     "Establishes the goods' origin for customs clearance.",
	},
}

// DeriveChecklist returns the compliance documents required for one HS
// code/destination market pair, each with a non-empty reason. Malformed HS
// codes never error: they yield chapter 0, so only the four base documents
// are produced, which is a valid conservative checklist. Output order is
// fixed (base documents, then rule declaration order) and deterministic for
// identical inputs.
func DeriveChecklist(hsCode, market string) []model.RequiredDocument {
	chapter := Chapter(hsCode)
	heading := headingPrefix(hsCode)

	checklist := make([]model.RequiredDocument, 0, len(baseDocuments)+len(conditionalRules))

	for _, base := range baseDocuments {
		if def := catalog.DocumentByID(base.DocumentID); def != nil {
			checklist = append(checklist, model.RequiredDocument{
				Definition: *def,
				Reason:     base.Reason,
			})
		}
	}

	for _, rule := range conditionalRules {
		if !rule.Applies(chapter, heading, market) {
			continue
		}
		def := catalog.DocumentByID(rule.DocumentID)
		if def == nil {
			continue
		}
		checklist = append(checklist, model.RequiredDocument{
			Definition: *def,
			Reason:     rule.Reason,
			SectorNote: rule.SectorNote,
		})
	}

	return checklist
}
